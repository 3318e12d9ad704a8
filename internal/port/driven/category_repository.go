package driven

import (
	"context"

	"tvstream/internal/category"
)

// CategoryRepository defines the interface for category persistence.
// This is a driven port implemented by concrete adapters (e.g. BoltDB).
type CategoryRepository interface {
	// Save persists a new category. Returns category.ErrCategoryAlreadyExists
	// if a category with the same key already exists.
	Save(ctx context.Context, cat category.Category) error

	// Update replaces an existing category. Returns
	// category.ErrCategoryNotFound if no category has that key.
	Update(ctx context.Context, cat category.Category) error

	// FindByKey retrieves a category by its key. Returns
	// category.ErrCategoryNotFound if the category does not exist.
	FindByKey(ctx context.Context, key string) (category.Category, error)

	// FindAll retrieves all categories in key order.
	FindAll(ctx context.Context) ([]category.Category, error)

	// Delete removes a category by key and returns the removed value.
	// Returns category.ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, key string) (category.Category, error)
}
