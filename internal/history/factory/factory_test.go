package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/DjordjeVuckovic/addsub/internal/history/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, history.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
		assert.Nil(t, cfg.Es)
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "redis")
		_, err := LoadEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid HISTORY_TYPE")
	})

	t.Run("pg requires connection string", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		require.Error(t, err)
	})

	t.Run("pg", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgresql://localhost/addsub")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg.Pg)
		assert.Equal(t, "postgresql://localhost/addsub", cfg.Pg.ConnStr)
	})

	t.Run("es requires addresses", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "es")
		t.Setenv("ES_ADDRESSES", " , ")
		_, err := LoadEnv()
		require.Error(t, err)
	})

	t.Run("es with default index", func(t *testing.T) {
		t.Setenv("HISTORY_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "http://a:9200, http://b:9200")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg.Es)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "evaluations", cfg.Es.IndexName)
	})
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	s, cleanup, err := NewStore(ctx, &StoreConfig{Type: history.InMem})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &in_mem.InMemStore{}, s)

	s, cleanup, err = NewStore(ctx, &StoreConfig{Type: history.None})
	require.NoError(t, err)
	cleanup()
	assert.Nil(t, s)

	_, cleanup, err = NewStore(ctx, &StoreConfig{Type: "mongo"})
	require.Error(t, err)
	cleanup()

	_, _, err = NewStore(ctx, &StoreConfig{Type: history.PG})
	require.Error(t, err)
}
