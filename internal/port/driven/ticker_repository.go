package driven

import (
	"context"

	"tvstream/internal/ticker"
)

// TickerRepository defines the interface for scrolling-message
// persistence. This is a driven port implemented by concrete adapters.
type TickerRepository interface {
	// Save persists a message under its ID.
	Save(ctx context.Context, m ticker.Message) error

	// Update replaces an existing message. Returns
	// ticker.ErrMessageNotFound if no message has that ID.
	Update(ctx context.Context, m ticker.Message) error

	// FindByID retrieves a message by ID. Returns
	// ticker.ErrMessageNotFound if it does not exist.
	FindByID(ctx context.Context, id int) (ticker.Message, error)

	// FindAll retrieves all messages in ID order.
	FindAll(ctx context.Context) ([]ticker.Message, error)

	// Delete removes a message by ID. Returns ticker.ErrMessageNotFound
	// if it does not exist.
	Delete(ctx context.Context, id int) error
}
