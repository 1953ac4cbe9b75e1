package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid request body", inner)

	if err.Error() != "invalid request body: parse failed" {
		t.Errorf("expected 'invalid request body: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("expression is required")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("storage error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "expression is required" {
		t.Errorf("expected 'empty parentheses', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("history store unavailable")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestOverflowError(t *testing.T) {
	err := apperr.NewOverflow(apperr.StageEvaluate, "+", 2147483647, 1, 2)

	if err.Error() != "evaluate: integer overflow at 2: 2147483647 + 1" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, apperr.ErrOverflow) {
		t.Error("expected OverflowError to match ErrOverflow")
	}
	if errors.Is(err, apperr.ErrMalformed) {
		t.Error("OverflowError should not match ErrMalformed")
	}
}

func TestMalformedExpressionError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewMalformed("missing operand for +", 1)
	wrapped := fmt.Errorf("evaluate %q: %w", "1+", original)

	if !errors.Is(wrapped, apperr.ErrMalformed) {
		t.Fatal("errors.Is should find ErrMalformed through wrapping")
	}

	var me *apperr.MalformedExpressionError
	if !errors.As(wrapped, &me) {
		t.Fatal("errors.As should find MalformedExpressionError through wrapping")
	}
	if me.Position != 1 {
		t.Errorf("expected position 1, got %d", me.Position)
	}
	if me.Error() != "malformed expression at token 1: missing operand for +" {
		t.Errorf("unexpected message %q", me.Error())
	}
}

func TestIsExpressionError(t *testing.T) {
	if !apperr.IsExpressionError(apperr.NewMalformed("x", 0)) {
		t.Error("malformed should be an expression error")
	}
	if !apperr.IsExpressionError(fmt.Errorf("wrap: %w", apperr.NewOverflow(apperr.StageTokenize, "*", 1, 10, 0))) {
		t.Error("wrapped overflow should be an expression error")
	}
	if apperr.IsExpressionError(apperr.NewValidation("bad")) {
		t.Error("validation error is not an expression error")
	}
}
