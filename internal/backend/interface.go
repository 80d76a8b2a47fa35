// Package backend selects and builds the draft persistence backend.
package backend

import (
	"context"

	"invoiceflash/internal/draft"
)

// Type identifies a draft persistence backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	FileBackend   Type = "file"
)

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, FileBackend:
		return true
	}
	return false
}

// Config holds everything needed to build a store.
type Config struct {
	Type          Type
	SQLiteDBPath  string
	DraftFilePath string
	DraftKey      string
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the store and an optional cleanup function.
type Result struct {
	Store   draft.Store
	Cleanup CleanupFunc
}

// Factory creates draft stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}
