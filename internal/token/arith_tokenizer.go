package token

import (
	"math"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
)

type ArithTokenizer struct {
	input []rune
	pos   int
}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize scans the input and returns the canonical sequence: every value in
// input order followed by every operator in input order.
// Example: Input: `5 - 2 - 1` Output: `5 2 1 - -`
func (t *ArithTokenizer) Tokenize(input string) ([]Token, error) {
	tokens, err := t.Scan(input)
	if err != nil {
		return nil, err
	}
	return Partition(tokens), nil
}

// Scan converts the input into tokens in the order they appear. Characters
// other than ASCII digits, '+' and '-' are skipped.
func (t *ArithTokenizer) Scan(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '+':
			tokens = append(tokens, NewOperator(Addition))
			t.pos++
		case ch == '-':
			tokens = append(tokens, NewOperator(Subtraction))
			t.pos++
		case isDigit(ch):
			tok, err := t.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			t.pos++
		}
	}

	return tokens, nil
}

func (t *ArithTokenizer) readNumber() (Token, error) {
	var n int32
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		d := int32(t.input[t.pos] - '0')
		if n > math.MaxInt32/10 {
			return Token{}, apperr.NewOverflow(apperr.StageTokenize, "*", int64(n), 10, t.pos)
		}
		n *= 10
		if n > math.MaxInt32-d {
			return Token{}, apperr.NewOverflow(apperr.StageTokenize, "+", int64(n), int64(d), t.pos)
		}
		n += d
		t.pos++
	}
	return NewValue(n), nil
}

// Partition moves every value ahead of every operator. The relative order
// within each group is preserved.
func Partition(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsValue() {
			out = append(out, tok)
		}
	}
	for _, tok := range tokens {
		if tok.IsOperator() {
			out = append(out, tok)
		}
	}
	return out
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
