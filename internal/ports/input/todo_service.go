package input

import (
	"context"
	"net/url"

	"todo-api/internal/domain"
)

// TodoService interface - Input port (use case)
// Defines what the application can do with todos. Every returned error is a
// *domain.Error.
type TodoService interface {
	// List returns one page of todo items. base is the url the navigation
	// links are derived from.
	List(ctx context.Context, request domain.PageRequest, base *url.URL) (*domain.PagedResult, error)
	GetByID(ctx context.Context, id string) (*domain.TodoItem, error)
	Add(ctx context.Context, request domain.TodoRequest) (*domain.TodoItem, error)
	Update(ctx context.Context, request domain.TodoRequest) error
	Delete(ctx context.Context, id string) error
}
