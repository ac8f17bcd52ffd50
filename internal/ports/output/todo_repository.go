package output

import (
	"context"
	"errors"

	"todo-api/internal/domain"
)

// ErrDuplicateKey is returned by Create and UpdateOne when the unique index
// over (title, description) rejects the write.
var ErrDuplicateKey = errors.New("unique index violated")

// TodoRepository interface - Output port
// Defines what the application needs from data persistence
type TodoRepository interface {
	// Find returns up to limit items after skipping skip items. A skip past
	// the end of the collection yields an empty slice, not an error.
	Find(ctx context.Context, skip, limit int) ([]domain.TodoItem, error)

	// Count returns the number of items in the collection.
	Count(ctx context.Context) (int64, error)

	// FindByID returns the item with the given id, or nil when there is none.
	FindByID(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error)

	// Create inserts item, assigning its id and timestamps.
	Create(ctx context.Context, item *domain.TodoItem) error

	// UpdateOne overwrites the mutable fields of the item with the given id and
	// returns the number of matched items.
	UpdateOne(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error)

	// DeleteOne removes the item with the given id and returns the number of
	// deleted items.
	DeleteOne(ctx context.Context, id domain.ItemID) (int64, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
