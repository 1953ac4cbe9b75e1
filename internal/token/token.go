package token

import (
	"fmt"
	"strconv"
	"strings"
)

type OperationKind int

const (
	Addition OperationKind = iota
	Subtraction
)

func (o OperationKind) String() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(o))
	}
}

// Name returns the long form used in JSON payloads and logs.
func (o OperationKind) Name() string {
	switch o {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	default:
		return "unknown"
	}
}

type Kind int

const (
	KindValue Kind = iota
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "VALUE"
	case KindOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is either a Value carrying an integer or an Operator carrying an
// OperationKind. The zero Token is Value(0).
type Token struct {
	kind  Kind
	value int32
	op    OperationKind
}

func NewValue(v int32) Token {
	return Token{kind: KindValue, value: v}
}

func NewOperator(op OperationKind) Token {
	return Token{kind: KindOperator, op: op}
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) IsValue() bool {
	return t.kind == KindValue
}

func (t Token) IsOperator() bool {
	return t.kind == KindOperator
}

// Value returns the carried integer. It is 0 for operator tokens.
func (t Token) Value() int32 {
	return t.value
}

// Operation returns the carried operation. Only meaningful for operator tokens.
func (t Token) Operation() OperationKind {
	return t.op
}

// String returns the literal textual form of the token.
func (t Token) String() string {
	if t.kind == KindOperator {
		return t.op.String()
	}
	return strconv.FormatInt(int64(t.value), 10)
}

// Format renders tokens as their literal text separated by single spaces.
// Tokenizing the result yields the same canonical sequence again.
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
