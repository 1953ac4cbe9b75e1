package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow  = errors.New("integer overflow")
	ErrMalformed = errors.New("malformed expression")
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageEvaluate Stage = "evaluate"
)

// OverflowError reports an operation whose result does not fit the 32-bit
// integer width. During tokenization Offset is the rune offset of the digit
// that overflowed; during evaluation it is the index of the operator token.
type OverflowError struct {
	Stage  Stage
	Op     string
	Left   int64
	Right  int64
	Offset int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: integer overflow at %d: %d %s %d", e.Stage, e.Offset, e.Left, e.Op, e.Right)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

func NewOverflow(stage Stage, op string, left, right int64, offset int) *OverflowError {
	return &OverflowError{Stage: stage, Op: op, Left: left, Right: right, Offset: offset}
}

// MalformedExpressionError reports a token sequence that cannot be reduced.
// Position is the token index where reduction stopped.
type MalformedExpressionError struct {
	Reason   string
	Position int
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression at token %d: %s", e.Position, e.Reason)
}

func (e *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformed
}

func NewMalformed(reason string, position int) *MalformedExpressionError {
	return &MalformedExpressionError{Reason: reason, Position: position}
}

// IsExpressionError reports whether err comes from tokenizing or evaluating
// an expression rather than from the surrounding infrastructure.
func IsExpressionError(err error) bool {
	return errors.Is(err, ErrOverflow) || errors.Is(err, ErrMalformed)
}
