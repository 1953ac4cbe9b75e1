package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/DjordjeVuckovic/addsub/internal/history/es"
	"github.com/DjordjeVuckovic/addsub/internal/history/pg"
	"github.com/DjordjeVuckovic/addsub/pkg/utils"
)

type StoreConfig struct {
	history.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the history store configuration. An unset HISTORY_TYPE
// selects the in-memory store.
func LoadEnv() (*StoreConfig, error) {
	storeType := history.Type(strings.TrimSpace(os.Getenv("HISTORY_TYPE")))
	if storeType == "" {
		slog.Info("HISTORY_TYPE is not set, using in-memory history")
		storeType = history.InMem
	}

	switch storeType {
	case history.ES, history.PG, history.InMem, history.None:
	default:
		slog.Error("Invalid HISTORY_TYPE environment variable value", "value", storeType)
		return nil, fmt.Errorf(
			"invalid HISTORY_TYPE environment variable value: %s, expected one of %v",
			storeType,
			[]history.Type{history.ES, history.PG, history.InMem, history.None})
	}

	var esCfg *es.ClientConfig
	if storeType == history.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(utils.SplitTrim(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			esCfg.IndexName = "evaluations"
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storeType == history.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StoreConfig{
		Type: storeType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
