// Package calc ties the tokenizer and the evaluator together and records
// every evaluation in an optional history store.
package calc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/eval"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/DjordjeVuckovic/addsub/internal/token"
)

var timeNow = time.Now

type Option func(*Calculator)

func WithHistory(store history.Store) Option {
	return func(c *Calculator) {
		c.history = store
	}
}

// WithTokenizer replaces the per-call ArithTokenizer. The tokenizer is shared
// by every call, so it must be safe for concurrent use if the Calculator is.
func WithTokenizer(t token.Tokenizer) Option {
	return func(c *Calculator) {
		c.tokenizer = t
	}
}

func WithEvaluator(e *eval.Evaluator) Option {
	return func(c *Calculator) {
		c.evaluator = e
	}
}

type Calculator struct {
	tokenizer token.Tokenizer
	evaluator *eval.Evaluator
	history   history.Store
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		evaluator: eval.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokenize returns the canonical token sequence of expr.
// A fresh ArithTokenizer is used per call unless one was injected.
func (c *Calculator) Tokenize(expr string) ([]token.Token, error) {
	t := c.tokenizer
	if t == nil {
		t = token.NewArithTokenizer()
	}
	return t.Tokenize(expr)
}

// Evaluate tokenizes and reduces expr. On failure the error is an
// *apperr.OverflowError or *apperr.MalformedExpressionError.
func (c *Calculator) Evaluate(expr string) (int32, error) {
	_, result, err := c.run(expr)
	return result, err
}

// EvaluateTokens reduces an already canonical token sequence.
func (c *Calculator) EvaluateTokens(tokens []token.Token) (int32, error) {
	return c.evaluator.Evaluate(tokens)
}

// Record evaluates expr and stores the outcome in the history store when one
// is configured. Expression errors are kept in the record and also returned;
// a failing store is reported as a wrapped error alongside the record.
func (c *Calculator) Record(ctx context.Context, expr string) (domain.Evaluation, error) {
	tokens, result, evalErr := c.run(expr)

	rec := domain.Evaluation{
		Expression: expr,
		Canonical:  token.Format(tokens),
		Strict:     c.evaluator.Strict(),
	}
	if evalErr != nil {
		rec.Error = evalErr.Error()
	} else {
		rec.Result = &result
	}

	history.Prepare(&rec, timeNow)
	if c.history == nil {
		return rec, evalErr
	}

	if _, err := c.history.Save(ctx, rec); err != nil {
		slog.Error("Failed to save evaluation", "id", rec.ID, "error", err)
		return rec, fmt.Errorf("save evaluation: %w", err)
	}

	return rec, evalErr
}

// History returns the configured store, or nil when history is disabled.
func (c *Calculator) History() history.Store {
	return c.history
}

func (c *Calculator) run(expr string) ([]token.Token, int32, error) {
	tokens, err := c.Tokenize(expr)
	if err != nil {
		slog.Debug("Tokenize failed", "expression", expr, "error", err)
		return nil, 0, err
	}

	result, err := c.evaluator.Evaluate(tokens)
	if err != nil {
		slog.Debug("Evaluate failed", "expression", expr, "canonical", token.Format(tokens), "error", err)
		return tokens, 0, err
	}

	slog.Debug("Evaluated expression", "expression", expr, "result", result)
	return tokens, result, nil
}
