package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one expression run through the tokenizer and evaluator.
// Result is nil when evaluation failed; Error then holds the reason.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Canonical  string    `json:"canonical"`
	Result     *int32    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	Strict     bool      `json:"strict"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e Evaluation) Succeeded() bool {
	return e.Result != nil
}
