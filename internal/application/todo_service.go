package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// TodoService struct - Application service implementing use cases
type TodoService struct {
	repo output.TodoRepository
}

// NewTodoService func - Creates new todo service
func NewTodoService(repo output.TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// List func - Use case: Get one page of todos with navigation links
func (s *TodoService) List(ctx context.Context, request domain.PageRequest, base *url.URL) (*domain.PagedResult, error) {
	request, err := domain.NewPageRequest(request.Page, request.Limit)
	if err != nil {
		return nil, err
	}
	items := []domain.TodoItem{}
	if !request.OffsetOverflows() {
		items, err = s.repo.Find(ctx, request.Offset(), request.Limit)
		if err != nil {
			return nil, s.classify("find todos", err)
		}
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, s.classify("count todos", err)
	}
	bounds := domain.Paginate(request.Page, request.Limit, total, base)
	return domain.NewPagedResult(bounds, items), nil
}

// GetByID func - Use case: Get a single todo
func (s *TodoService) GetByID(ctx context.Context, id string) (*domain.TodoItem, error) {
	itemID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, s.classify("find todo", err)
	}
	if item == nil {
		return nil, notFound(id)
	}
	return item, nil
}

// Add func - Use case: Create a new todo
func (s *TodoService) Add(ctx context.Context, request domain.TodoRequest) (*domain.TodoItem, error) {
	item := &domain.TodoItem{
		Title:       request.Title,
		Description: request.Description,
		Completed:   request.Completed,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.classify("create todo", err)
	}
	return item, nil
}

// Update func - Use case: Overwrite title, description and completed of an existing todo
func (s *TodoService) Update(ctx context.Context, request domain.TodoRequest) error {
	itemID, err := parseID(request.ID)
	if err != nil {
		return err
	}
	fields := domain.TodoFields{
		Title:       request.Title,
		Description: request.Description,
		Completed:   request.Completed,
	}
	matched, err := s.repo.UpdateOne(ctx, itemID, fields)
	if err != nil {
		return s.classify("update todo", err)
	}
	if matched == 0 {
		return notFound(request.ID)
	}
	return nil
}

// Delete func - Use case: Delete a todo
func (s *TodoService) Delete(ctx context.Context, id string) error {
	itemID, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteOne(ctx, itemID)
	if err != nil {
		return s.classify("delete todo", err)
	}
	if deleted == 0 {
		return notFound(id)
	}
	return nil
}

// classify turns a repository error into a *domain.Error. This is the only
// place storage errors are translated.
func (s *TodoService) classify(op string, err error) error {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, output.ErrDuplicateKey) {
		logrus.Warnf("%s: %v", op, err)
		return domain.NewDuplicateItemError("")
	}
	logrus.WithError(err).Errorf("%s failed", op)
	return domain.NewUnclassifiedError(fmt.Errorf("%s: %w", op, err))
}

func parseID(id string) (domain.ItemID, error) {
	itemID, err := domain.ParseItemID(id)
	if err != nil {
		return domain.NilItemID, domain.NewInvalidIdentifierError(fmt.Sprintf("Invalid id - %s", id))
	}
	return itemID, nil
}

func notFound(id string) error {
	return domain.NewItemNotFoundError(fmt.Sprintf("Todo item not found with id - %s", id))
}
