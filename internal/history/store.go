package history

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/google/uuid"
)

// Store persists evaluation records.
type Store interface {
	Save(ctx context.Context, e domain.Evaluation) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	// List returns at most limit records, most recent first.
	List(ctx context.Context, limit int) ([]domain.Evaluation, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	None  Type = "none"
)

var ErrNotFound = errors.New("evaluation not found")

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported history store type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ClampLimit maps a requested page size into [1, MaxListLimit], using
// DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}

// Prepare fills the ID and CreatedAt of a record about to be stored.
func Prepare(e *domain.Evaluation, now func() time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now().UTC()
	}
}
