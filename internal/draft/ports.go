// Package draft defines the port for local draft persistence. The value
// stored is the full invoice serialized as JSON under a single draft key.
package draft

import "context"

// Store is the outbound port for draft persistence.
type Store interface {
	// Load returns the stored draft. found is false when no draft has
	// been saved yet; that is not an error.
	Load(ctx context.Context) (data []byte, found bool, err error)

	// Save overwrites the stored draft.
	Save(ctx context.Context, data []byte) error

	// Close releases any underlying resources.
	Close() error
}
