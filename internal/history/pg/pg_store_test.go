package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	pkgtesting "github.com/DjordjeVuckovic/addsub/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	pkgtesting.RequireIntegration(t)

	ctx := context.Background()
	container := pkgtesting.NewPGContainer(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	defer pool.Close()

	s := NewStore(pool)
	require.NoError(t, s.Ping(ctx))

	result := int32(2)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	id, err := s.Save(ctx, domain.Evaluation{
		Expression: "5-2-1",
		Canonical:  "5 2 1 - -",
		Result:     &result,
		CreatedAt:  base,
	})
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "5-2-1", got.Expression)
		require.NotNil(t, got.Result)
		assert.Equal(t, int32(2), *got.Result)
		assert.True(t, base.Equal(got.CreatedAt))
	})

	t.Run("failed evaluation has null result", func(t *testing.T) {
		failedID, err := s.Save(ctx, domain.Evaluation{
			Expression: "1+",
			Canonical:  "1 +",
			Error:      "malformed expression at token 1: missing operand for +",
			CreatedAt:  base.Add(time.Minute),
		})
		require.NoError(t, err)

		got, err := s.Get(ctx, failedID)
		require.NoError(t, err)
		assert.Nil(t, got.Result)
		assert.NotEmpty(t, got.Error)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, history.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := s.Save(ctx, domain.Evaluation{
				Expression: fmt.Sprintf("%d+0", i),
				CreatedAt:  base.Add(time.Duration(i+2) * time.Minute),
			})
			require.NoError(t, err)
		}

		got, err := s.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2+0", got[0].Expression)
		assert.Equal(t, "1+0", got[1].Expression)
	})
}
