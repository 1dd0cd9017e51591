package rest

import (
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

func withCORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
		ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		next(ctx)
	}
}

func preflight(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func notFound(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNotFound)
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"error":"route not found"}`)
}

func (s *Server) logRequests(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		next(ctx)

		statusCode := ctx.Response.StatusCode()
		event := s.logger.Info()
		if statusCode >= fasthttp.StatusInternalServerError {
			event = s.logger.Error()
		}

		event.
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", statusCode).
			Dur("latency", time.Since(start)).
			Msg("handled request")
	}
}

func (s *Server) recoverPanic(ctx *fasthttp.RequestCtx, recovered any) {
	s.logger.Error().
		Str("panic", fmt.Sprint(recovered)).
		Str("path", string(ctx.Path())).
		Msg("recovered from panic")

	s.writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
