package dto

import (
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/token"
	"github.com/google/uuid"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"5-2-1"`
}

type EvaluationResponse struct {
	ID         uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Expression string    `json:"expression"`
	Canonical  string    `json:"canonical"`
	Result     *int32    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	Strict     bool      `json:"strict"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewEvaluationResponse(e domain.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:         e.ID,
		Expression: e.Expression,
		Canonical:  e.Canonical,
		Result:     e.Result,
		Error:      e.Error,
		Strict:     e.Strict,
		CreatedAt:  e.CreatedAt,
	}
}

type EvaluationListResponse struct {
	Items []EvaluationResponse `json:"items"`
	Count int                  `json:"count"`
}

type TokenDTO struct {
	Kind      string `json:"kind" example:"value"`
	Value     *int32 `json:"value,omitempty"`
	Operation string `json:"operation,omitempty" example:"addition"`
	Literal   string `json:"literal"`
}

type TokenizeResponse struct {
	Tokens    []TokenDTO `json:"tokens"`
	Canonical string     `json:"canonical"`
}

func NewTokenizeResponse(tokens []token.Token) TokenizeResponse {
	out := make([]TokenDTO, 0, len(tokens))
	for _, t := range tokens {
		d := TokenDTO{Literal: t.String()}
		switch t.Kind() {
		case token.KindValue:
			v := t.Value()
			d.Kind = "value"
			d.Value = &v
		case token.KindOperator:
			d.Kind = "operator"
			d.Operation = t.Operation().Name()
		}
		out = append(out, d)
	}
	return TokenizeResponse{Tokens: out, Canonical: token.Format(tokens)}
}
