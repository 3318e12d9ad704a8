package driven

import (
	"context"

	"tvstream/internal/notification"
)

// NotificationRepository defines the interface for notification
// persistence. This is a driven port implemented by concrete adapters.
type NotificationRepository interface {
	// Save persists a notification under its ID.
	Save(ctx context.Context, n notification.Notification) error

	// Update replaces an existing notification. Returns
	// notification.ErrNotificationNotFound if no notification has that ID.
	Update(ctx context.Context, n notification.Notification) error

	// FindByID retrieves a notification by ID. Returns
	// notification.ErrNotificationNotFound if it does not exist.
	FindByID(ctx context.Context, id int) (notification.Notification, error)

	// FindAll retrieves all notifications in ID order.
	FindAll(ctx context.Context) ([]notification.Notification, error)

	// Delete removes a notification by ID and returns the removed value.
	// Returns notification.ErrNotificationNotFound if it does not exist.
	Delete(ctx context.Context, id int) (notification.Notification, error)
}
