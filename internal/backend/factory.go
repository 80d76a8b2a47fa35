package backend

import (
	"context"
	"fmt"
	"log/slog"

	"invoiceflash/internal/draft/file"
	"invoiceflash/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case FileBackend:
		return f.createFileStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*Result, error) {
	store, err := storage.NewSQLiteStore(config.SQLiteDBPath, config.DraftKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Info("Initialized SQLite draft backend",
		"db_path", config.SQLiteDBPath,
		"draft_key", config.DraftKey)

	return &Result{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createFileStore(config Config) (*Result, error) {
	store, err := file.New(config.DraftFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	f.logger.Info("Initialized file draft backend", "path", config.DraftFilePath)

	return &Result{Store: store, Cleanup: nil}, nil
}
