// Package server exposes the projection engine over HTTP. Every request is
// self-contained; nothing is kept between calls.
package server

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/export"
	"github.com/valyala/fasthttp"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// LoanRequest is the body of POST /v1/loan.
type LoanRequest struct {
	Loan           domain.Loan `json:"loan"`
	PeriodsPerYear int         `json:"periods_per_year,omitempty"`
}

// ExpensesRequest is the body of POST /v1/expenses.
type ExpensesRequest struct {
	Expenses []domain.ExpenseCategory `json:"expenses"`
}

// Server routes requests to the calculation engine.
type Server struct {
	engine *calculation.CalculationEngine
	logger calculation.Logger
}

// New creates a server around engine, logging through the engine's logger.
func New(engine *calculation.CalculationEngine) *Server {
	return &Server{engine: engine, logger: engine.Logger}
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "finplan",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       30 * time.Second,
		MaxRequestBodySize: 1 << 20,
	}
	s.logger.Infof("listening on %s", addr)
	return srv.ListenAndServe(addr)
}

// Handler is the fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	if path == "/healthz" {
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", "")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		return
	}

	var handler fasthttp.RequestHandler
	switch path {
	case "/v1/projection":
		handler = s.handleProjection
	case "/v1/projection/xlsx":
		handler = s.handleProjectionXLSX
	case "/v1/loan":
		handler = s.handleLoan
	case "/v1/expenses":
		handler = s.handleExpenses
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found: "+path, "")
		return
	}
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	handler(ctx)
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var input domain.ProjectionInput
	if !decode(ctx, &input) {
		return
	}
	result, err := s.engine.ProjectWealth(input)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleProjectionXLSX(ctx *fasthttp.RequestCtx) {
	var input domain.ProjectionInput
	if !decode(ctx, &input) {
		return
	}
	result, err := s.engine.ProjectWealth(input)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	name := string(ctx.QueryArgs().Peek("sheet"))
	if name == "" {
		name = "Projection"
	}
	data, err := export.Bytes([]export.Sheet{{Name: name, Table: export.ProjectionTable(result, time.Time{})}})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeXLSX)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="projection.xlsx"`)
	ctx.SetBody(data)
}

func (s *Server) handleLoan(ctx *fasthttp.RequestCtx) {
	var req LoanRequest
	if !decode(ctx, &req) {
		return
	}
	if req.PeriodsPerYear == 0 {
		req.PeriodsPerYear = domain.DefaultPeriodsPerYear
	}
	schedule, err := calculation.AmortizeLoan(req.Loan, req.PeriodsPerYear)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, schedule)
}

func (s *Server) handleExpenses(ctx *fasthttp.RequestCtx) {
	var req ExpensesRequest
	if !decode(ctx, &req) {
		return
	}
	breakdown, err := calculation.BreakdownExpenses(req.Expenses)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, breakdown)
}

// fail maps engine and export errors onto status codes.
func (s *Server) fail(ctx *fasthttp.RequestCtx, err error) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error(), invalid.Field)
		return
	}
	s.logger.Errorf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	writeError(ctx, fasthttp.StatusInternalServerError, err.Error(), "")
}

func decode(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error(), "")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message, field string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message, Field: field})
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}
