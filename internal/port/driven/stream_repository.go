package driven

import (
	"context"

	"tvstream/internal/stream"
)

// StreamRepository defines the interface for curated stream
// persistence. This is a driven port implemented by concrete adapters.
type StreamRepository interface {
	// Save persists a stream under its ID. Returns
	// stream.ErrStreamAlreadyExists if the ID is already taken.
	Save(ctx context.Context, s stream.Stream) error

	// Update replaces an existing stream. Returns stream.ErrStreamNotFound
	// if no stream has that ID.
	Update(ctx context.Context, s stream.Stream) error

	// FindByID retrieves a stream by its ID. Returns
	// stream.ErrStreamNotFound if the stream does not exist.
	FindByID(ctx context.Context, id int) (stream.Stream, error)

	// FindAll retrieves all streams in ID order.
	FindAll(ctx context.Context) ([]stream.Stream, error)

	// Delete removes a stream by ID and returns the removed value.
	// Returns stream.ErrStreamNotFound if the stream does not exist.
	Delete(ctx context.Context, id int) (stream.Stream, error)
}
