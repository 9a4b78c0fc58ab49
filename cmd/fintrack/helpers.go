package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Antonio-Naoki/fintrack/internal/config"
	"github.com/Antonio-Naoki/fintrack/internal/ledger"
	"github.com/Antonio-Naoki/fintrack/internal/service"
	"github.com/Antonio-Naoki/fintrack/internal/storage"
)

// initStore opens the key-value store at the configured path.
func initStore() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return store, nil
}

// initLedger opens storage and rehydrates the ledger from it.
func initLedger(ctx context.Context, store *storage.SQLiteStore) (*ledger.Ledger, error) {
	led := ledger.New(store, service.SystemClock{})
	if err := led.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return led, nil
}
