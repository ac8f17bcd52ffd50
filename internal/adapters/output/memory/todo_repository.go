package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"
)

// Compile-time check to ensure TodoRepository implements output.TodoRepository
var _ output.TodoRepository = (*TodoRepository)(nil)

type uniqueKey struct {
	title       string
	description string
}

// TodoRepository struct - Output adapter for in-memory todo storage
// Items are kept in insertion order so Find pages are stable. The unique
// index over (title, description) is enforced under the same lock as the
// write, mirroring a store-side unique index.
type TodoRepository struct {
	mu     sync.RWMutex
	items  map[domain.ItemID]*domain.TodoItem
	order  []domain.ItemID
	unique map[uniqueKey]domain.ItemID
	now    func() time.Time
}

// NewTodoRepository creates an empty in-memory repository.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		items:  make(map[domain.ItemID]*domain.TodoItem),
		unique: make(map[uniqueKey]domain.ItemID),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Find returns up to limit items after skipping skip items.
func (m *TodoRepository) Find(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.TodoItem, 0)
	if skip < 0 || skip >= len(m.order) || limit <= 0 {
		return result, nil
	}
	end := skip + limit
	if end > len(m.order) {
		end = len(m.order)
	}
	for _, id := range m.order[skip:end] {
		result = append(result, *m.items[id])
	}
	return result, nil
}

// Count returns the number of stored items.
func (m *TodoRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.order)), nil
}

// FindByID returns a copy of the item, or nil when it does not exist.
func (m *TodoRepository) FindByID(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, exists := m.items[id]
	if !exists {
		return nil, nil
	}
	found := *item
	return &found, nil
}

// Create stores item, assigning its id and timestamps.
func (m *TodoRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := uniqueKey{title: item.Title, description: item.Description}
	if _, taken := m.unique[key]; taken {
		return fmt.Errorf("%w: %s", output.ErrDuplicateKey, domain.TodoUniqueIndex)
	}
	if item.ID.IsZero() {
		item.ID = domain.NewItemID()
	}
	if _, exists := m.items[item.ID]; exists {
		return fmt.Errorf("%w: _id %s", output.ErrDuplicateKey, item.ID)
	}
	now := m.now()
	item.CreatedAt = now
	item.UpdatedAt = now

	stored := *item
	m.items[item.ID] = &stored
	m.order = append(m.order, item.ID)
	m.unique[key] = item.ID
	return nil
}

// UpdateOne overwrites the mutable fields of an item.
func (m *TodoRepository) UpdateOne(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	item, exists := m.items[id]
	if !exists {
		return 0, nil
	}
	oldKey := uniqueKey{title: item.Title, description: item.Description}
	newKey := uniqueKey{title: fields.Title, description: fields.Description}
	if owner, taken := m.unique[newKey]; taken && owner != id {
		return 0, fmt.Errorf("%w: %s", output.ErrDuplicateKey, domain.TodoUniqueIndex)
	}
	delete(m.unique, oldKey)
	m.unique[newKey] = id

	item.Title = fields.Title
	item.Description = fields.Description
	item.Completed = fields.Completed
	item.UpdatedAt = m.now()
	return 1, nil
}

// DeleteOne removes an item. Deleting a missing item reports zero deletions.
func (m *TodoRepository) DeleteOne(ctx context.Context, id domain.ItemID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	item, exists := m.items[id]
	if !exists {
		return 0, nil
	}
	delete(m.unique, uniqueKey{title: item.Title, description: item.Description})
	delete(m.items, id)
	for i, stored := range m.order {
		if stored == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// Ping always succeeds.
func (m *TodoRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
