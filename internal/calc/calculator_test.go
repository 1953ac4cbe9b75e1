package calc

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/eval"
	"github.com/DjordjeVuckovic/addsub/internal/history/in_mem"
	"github.com/DjordjeVuckovic/addsub/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    int32
		wantErr error
	}{
		{name: "empty", expr: "", want: 0},
		{name: "single value", expr: "17", want: 17},
		{name: "addition", expr: "1+2", want: 3},
		{name: "chained subtraction", expr: "5-2-1", want: 2},
		{name: "noise ignored", expr: "1a+2b", want: 3},
		{name: "dangling operator", expr: "1+", wantErr: apperr.ErrMalformed},
		{name: "two values no operator", expr: "1 2", wantErr: apperr.ErrMalformed},
		{name: "sum overflow", expr: "2147483647+2147483647", wantErr: apperr.ErrOverflow},
		{name: "difference overflow", expr: "0-2147483647-2", wantErr: apperr.ErrOverflow},
		{name: "literal overflow", expr: "2147483648", wantErr: apperr.ErrOverflow},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Evaluate(tt.expr)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_Strict(t *testing.T) {
	c := New(WithEvaluator(eval.New(eval.WithStrict())))

	_, err := c.Evaluate("1 2 3 +")
	assert.ErrorIs(t, err, apperr.ErrMalformed)

	got, err := c.Evaluate("1+2+3")
	require.NoError(t, err)
	assert.Equal(t, int32(6), got)
}

func TestCalculator_Tokenize(t *testing.T) {
	tokens, err := New().Tokenize("5-2-1")
	require.NoError(t, err)
	assert.Equal(t, "5 2 1 - -", token.Format(tokens))
}

func TestCalculator_Record(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStore()
	c := New(WithHistory(store))

	t.Run("success is stored", func(t *testing.T) {
		rec, err := c.Record(ctx, "5-2-1")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rec.ID)
		require.NotNil(t, rec.Result)
		assert.Equal(t, int32(2), *rec.Result)
		assert.Equal(t, "5 2 1 - -", rec.Canonical)

		stored, err := store.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.Expression, stored.Expression)
	})

	t.Run("failure is stored with reason", func(t *testing.T) {
		rec, err := c.Record(ctx, "1+")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrMalformed)
		assert.Nil(t, rec.Result)
		assert.NotEmpty(t, rec.Error)

		stored, err := store.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.False(t, stored.Succeeded())
	})

	t.Run("tokenizer overflow has empty canonical form", func(t *testing.T) {
		rec, err := c.Record(ctx, "99999999999")
		assert.ErrorIs(t, err, apperr.ErrOverflow)
		assert.Empty(t, rec.Canonical)
	})
}

type failingStore struct{ *in_mem.InMemStore }

func (f *failingStore) Save(context.Context, domain.Evaluation) (uuid.UUID, error) {
	return uuid.Nil, errors.New("connection refused")
}

func TestCalculator_Record_StoreFailure(t *testing.T) {
	c := New(WithHistory(&failingStore{in_mem.NewInMemStore()}))

	rec, err := c.Record(context.Background(), "1+2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save evaluation")
	assert.False(t, apperr.IsExpressionError(err))
	require.NotNil(t, rec.Result)
	assert.Equal(t, int32(3), *rec.Result)
}

func TestCalculator_Record_WithoutHistory(t *testing.T) {
	c := New()
	assert.Nil(t, c.History())

	rec, err := c.Record(context.Background(), "4+4")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, int32(8), *rec.Result)
}
