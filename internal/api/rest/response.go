package rest

import (
	"encoding/json"
	"errors"

	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"github.com/valyala/fasthttp"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshal response body")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"error":"internal server error"}`)
		return
	}

	ctx.SetStatusCode(statusCode)
	ctx.SetContentType("application/json")
	ctx.SetBody(encoded)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, err error) {
	s.writeJSON(ctx, statusCodeFromError(err), errorResponse{Error: errorMessage(err)})
}

// statusCodeFromError maps the error kind to the HTTP status code.
func statusCodeFromError(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return fasthttp.StatusBadRequest
	case errs.KindNotFound:
		return fasthttp.StatusNotFound
	default:
		return fasthttp.StatusInternalServerError
	}
}

// errorMessage returns the message of the tagged error without the wrapping context.
func errorMessage(err error) string {
	var e *errs.Err
	if errors.As(err, &e) {
		return e.Message
	}

	return err.Error()
}
