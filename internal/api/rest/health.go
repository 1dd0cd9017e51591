package rest

import (
	"github.com/valyala/fasthttp"
)

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) health(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := s.requestContext()
	defer cancel()

	err := s.db.Ping(reqCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("ping database")
		s.writeJSON(ctx, fasthttp.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, healthResponse{Status: "ok"})
}
