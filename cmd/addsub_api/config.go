package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/addsub/internal/history/factory"
)

type AppConfig struct {
	HistoryConfig *factory.StoreConfig
	Strict        bool
}

func LoadAppConfig() (*AppConfig, error) {
	historyCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("load history config: %w", err)
	}

	strict := false
	if raw := os.Getenv("EVAL_STRICT"); raw != "" {
		strict, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid EVAL_STRICT value %q: %w", raw, err)
		}
	}

	return &AppConfig{
		HistoryConfig: historyCfg,
		Strict:        strict,
	}, nil
}
