package interfaces

import "context"

// Storage persists fetched files under a fixed destination
type Storage interface {
	// Prepare creates the destination if it does not exist
	Prepare(ctx context.Context) error

	// Put writes data under name, overwriting any existing content, and
	// returns where it was written
	Put(ctx context.Context, name string, data []byte) (string, error)
}
