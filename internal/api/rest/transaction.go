package rest

import (
	"encoding/json"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"github.com/VladPetriv/finance_tracker/pkg/money"
	"github.com/valyala/fasthttp"
)

type addTransactionRequest struct {
	Title  string                 `json:"title"`
	Amount *money.Money           `json:"amount"`
	Type   models.TransactionType `json:"type"`
	// Category may be omitted or null.
	Category *string    `json:"category"`
	Date     *time.Time `json:"date"`
}

type addTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction *models.Transaction `json:"transaction"`
}

func (s *Server) addTransaction(ctx *fasthttp.RequestCtx) {
	var req addTransactionRequest
	err := json.Unmarshal(ctx.PostBody(), &req)
	if err != nil {
		s.writeError(ctx, errs.NewValidation("invalid request body: "+err.Error()))
		return
	}

	opts := service.CreateTransactionOptions{
		Title:  req.Title,
		Amount: req.Amount,
		Type:   req.Type,
		Date:   req.Date,
	}
	if req.Category != nil {
		opts.CategoryID = *req.Category
	}

	reqCtx, cancel := s.requestContext()
	defer cancel()

	transaction, err := s.services.Transaction.CreateTransaction(reqCtx, opts)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusCreated, addTransactionResponse{
		Message:     "Transaction added successfully",
		Transaction: transaction,
	})
}

func (s *Server) listTransactions(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := s.requestContext()
	defer cancel()

	transactions, err := s.services.Transaction.ListTransactions(reqCtx)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, transactions)
}

func (s *Server) deleteTransaction(ctx *fasthttp.RequestCtx) {
	transactionID, _ := ctx.UserValue("id").(string)

	reqCtx, cancel := s.requestContext()
	defer cancel()

	err := s.services.Transaction.DeleteTransaction(reqCtx, transactionID)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, messageResponse{Message: "Transaction deleted"})
}
