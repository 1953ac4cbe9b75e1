package eval

import (
	"math"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
	"github.com/DjordjeVuckovic/addsub/internal/token"
)

type Option func(*Evaluator)

// WithStrict rejects sequences that carry more values than their operators
// consume instead of dropping the trailing values.
func WithStrict() Option {
	return func(e *Evaluator) {
		e.strict = true
	}
}

type Evaluator struct {
	strict bool
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Strict() bool {
	return e.strict
}

// Evaluate reduces a canonical token sequence to a single integer.
// The first operator consumes two values, every later operator consumes one
// more value against the running result.
func (e *Evaluator) Evaluate(tokens []token.Token) (int32, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	boundary := firstOperator(tokens)
	if boundary == len(tokens) {
		if boundary == 1 {
			return tokens[0].Value(), nil
		}
		return 0, apperr.NewMalformed("values without an operator", boundary)
	}

	var result int32
	v := 0
	for i := boundary; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind() {
		case token.KindValue:
			return 0, apperr.NewMalformed("value after the first operator", i)
		case token.KindOperator:
			if v+1 >= boundary {
				return 0, apperr.NewMalformed("missing operand for "+tok.Operation().String(), i)
			}

			left := result
			if i == boundary {
				left = tokens[v].Value()
			}

			r, err := apply(tok.Operation(), left, tokens[v+1].Value(), i)
			if err != nil {
				return 0, err
			}
			result = r
			v++
		}
	}

	if e.strict && v+1 < boundary {
		return 0, apperr.NewMalformed("unconsumed values", v+1)
	}

	return result, nil
}

// Evaluate reduces tokens with the default, non-strict evaluator.
func Evaluate(tokens []token.Token) (int32, error) {
	return New().Evaluate(tokens)
}

func firstOperator(tokens []token.Token) int {
	for i, tok := range tokens {
		if tok.IsOperator() {
			return i
		}
	}
	return len(tokens)
}

func apply(op token.OperationKind, a, b int32, pos int) (int32, error) {
	var r int64
	switch op {
	case token.Addition:
		r = int64(a) + int64(b)
	case token.Subtraction:
		r = int64(a) - int64(b)
	default:
		return 0, apperr.NewMalformed("unknown operation "+op.String(), pos)
	}

	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, apperr.NewOverflow(apperr.StageEvaluate, op.String(), int64(a), int64(b), pos)
	}
	return int32(r), nil
}
