package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
	"github.com/DjordjeVuckovic/addsub/internal/calc"
	"github.com/DjordjeVuckovic/addsub/internal/dto"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxExpressionLength = 4096

type CalcRouter struct {
	e    *echo.Echo
	calc *calc.Calculator
}

func NewCalcRouter(e *echo.Echo, c *calc.Calculator) *CalcRouter {
	return &CalcRouter{
		e:    e,
		calc: c,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/tokenize", r.tokenizeHandler)
	g.GET("/evaluations", r.listHandler)
	g.GET("/evaluations/:id", r.getHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Tokenizes and reduces an addition/subtraction expression
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	expr, err := bindExpression(c)
	if err != nil {
		return err
	}

	rec, err := r.calc.Record(c.Request().Context(), expr)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluationResponse(rec))
}

// tokenizeHandler godoc
// @Summary Tokenize an expression
// @Description Returns the canonical token sequence: values first, then operators
// @Tags tokenize
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/tokenize [post]
func (r *CalcRouter) tokenizeHandler(c echo.Context) error {
	expr, err := bindExpression(c)
	if err != nil {
		return err
	}

	tokens, err := r.calc.Tokenize(expr)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTokenizeResponse(tokens))
}

// listHandler godoc
// @Summary List recent evaluations
// @Tags history
// @Produce json
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} dto.EvaluationListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/evaluations [get]
func (r *CalcRouter) listHandler(c echo.Context) error {
	store := r.calc.History()
	if store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "evaluation history is disabled")
	}

	limit := history.DefaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		limit = n
	}

	items, err := store.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	resp := dto.EvaluationListResponse{Items: make([]dto.EvaluationResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.NewEvaluationResponse(it))
	}
	resp.Count = len(resp.Items)

	return c.JSON(http.StatusOK, resp)
}

// getHandler godoc
// @Summary Get an evaluation by ID
// @Tags history
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/evaluations/{id} [get]
func (r *CalcRouter) getHandler(c echo.Context) error {
	store := r.calc.History()
	if store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "evaluation history is disabled")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid evaluation id", err)
	}

	rec, err := store.Get(c.Request().Context(), id)
	if errors.Is(err, history.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "evaluation not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluationResponse(*rec))
}

func bindExpression(c echo.Context) (string, error) {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return "", apperr.NewValidation("invalid request body")
	}

	if len(req.Expression) > maxExpressionLength {
		return "", apperr.NewValidation("expression is too long")
	}

	return req.Expression, nil
}
