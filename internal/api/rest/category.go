package rest

import (
	"encoding/json"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"github.com/valyala/fasthttp"
)

type addCategoryRequest struct {
	Name string `json:"name"`
}

type addCategoryResponse struct {
	Message  string           `json:"message"`
	Category *models.Category `json:"category"`
}

func (s *Server) addCategory(ctx *fasthttp.RequestCtx) {
	var req addCategoryRequest
	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		s.writeError(ctx, errs.NewValidation("invalid request body: "+err.Error()))
		return
	}

	reqCtx, cancel := s.requestContext()
	defer cancel()

	category, err := s.services.Category.CreateCategory(reqCtx, service.CreateCategoryOptions{
		Name: req.Name,
	})
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusCreated, addCategoryResponse{
		Message:  "Category added successfully",
		Category: category,
	})
}

func (s *Server) listCategories(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := s.requestContext()
	defer cancel()

	categories, err := s.services.Category.ListCategories(reqCtx)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, categories)
}
