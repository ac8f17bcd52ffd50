package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"todo-api/internal/adapters/output/memory"
	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTodoRepository implements output.TodoRepository for testing
type MockTodoRepository struct {
	FindFunc      func(ctx context.Context, skip, limit int) ([]domain.TodoItem, error)
	CountFunc     func(ctx context.Context) (int64, error)
	FindByIDFunc  func(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error)
	CreateFunc    func(ctx context.Context, item *domain.TodoItem) error
	UpdateOneFunc func(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error)
	DeleteOneFunc func(ctx context.Context, id domain.ItemID) (int64, error)

	// Calls counts every repository call, for asserting that validation
	// failures never reach the store
	Calls int

	LastSkip   int
	LastLimit  int
	LastFields *domain.TodoFields
}

var _ output.TodoRepository = (*MockTodoRepository)(nil)

func (m *MockTodoRepository) Find(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
	m.Calls++
	m.LastSkip, m.LastLimit = skip, limit
	if m.FindFunc != nil {
		return m.FindFunc(ctx, skip, limit)
	}
	return []domain.TodoItem{}, nil
}

func (m *MockTodoRepository) Count(ctx context.Context) (int64, error) {
	m.Calls++
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockTodoRepository) FindByID(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error) {
	m.Calls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTodoRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	m.Calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	item.ID = domain.NewItemID()
	return nil
}

func (m *MockTodoRepository) UpdateOne(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error) {
	m.Calls++
	m.LastFields = &fields
	if m.UpdateOneFunc != nil {
		return m.UpdateOneFunc(ctx, id, fields)
	}
	return 1, nil
}

func (m *MockTodoRepository) DeleteOne(ctx context.Context, id domain.ItemID) (int64, error) {
	m.Calls++
	if m.DeleteOneFunc != nil {
		return m.DeleteOneFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockTodoRepository) Ping(ctx context.Context) error {
	return nil
}

func baseURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("http://localhost:9089/api/v1/todo")
	require.NoError(t, err)
	return u
}

func seedService(t *testing.T, n int) (*TodoService, []domain.TodoItem) {
	t.Helper()
	srv := NewTodoService(memory.NewTodoRepository())
	items := make([]domain.TodoItem, 0, n)
	for i := 0; i < n; i++ {
		item, err := srv.Add(context.Background(), domain.TodoRequest{
			Title:       fmt.Sprintf("todo %d", i),
			Description: fmt.Sprintf("description %d", i),
		})
		require.NoError(t, err)
		items = append(items, *item)
	}
	return srv, items
}

func TestListComputesOffsetAndLinks(t *testing.T) {
	srv, items := seedService(t, 10)

	result, err := srv.List(context.Background(), domain.PageRequest{Page: 2, Limit: 1}, baseURL(t))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 1, result.PageSize)
	assert.Equal(t, 10, result.Pages)
	assert.Equal(t, int64(10), result.TotalCount)
	require.Len(t, result.Data, 1)
	assert.Equal(t, items[1].ID, result.Data[0].ID)
	assert.Equal(t, "http://localhost:9089/api/v1/todo?limit=1&page=1", result.PrevPage)
	assert.Equal(t, "http://localhost:9089/api/v1/todo?limit=1&page=3", result.NextPage)
}

func TestListEmptyCollection(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository())

	result, err := srv.List(context.Background(), domain.PageRequest{Page: 1, Limit: 10}, baseURL(t))

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalCount)
	assert.Equal(t, 0, result.Pages)
	assert.Empty(t, result.Data)
	assert.Empty(t, result.FirstPage)
	assert.Empty(t, result.LastPage)
	assert.Empty(t, result.PrevPage)
	assert.Empty(t, result.NextPage)
}

func TestListPastLastPageIsNotAnError(t *testing.T) {
	srv, _ := seedService(t, 3)

	result, err := srv.List(context.Background(), domain.PageRequest{Page: 9, Limit: 2}, baseURL(t))

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, "http://localhost:9089/api/v1/todo?limit=2&page=2", result.LastPage)
}

func TestListRejectsInvalidPaginationBeforeStoreAccess(t *testing.T) {
	for _, request := range []domain.PageRequest{{Page: -1, Limit: 10}, {Page: 1, Limit: -1}} {
		repo := &MockTodoRepository{}
		srv := NewTodoService(repo)

		_, err := srv.List(context.Background(), request, baseURL(t))

		assert.True(t, errors.Is(err, domain.ErrInvalidPaginationParameter), "request %+v", request)
		assert.Zero(t, repo.Calls)
	}
}

func TestListPassesOffsetToStore(t *testing.T) {
	repo := &MockTodoRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 100, nil },
	}
	srv := NewTodoService(repo)

	_, err := srv.List(context.Background(), domain.PageRequest{Page: 4, Limit: 25}, baseURL(t))

	require.NoError(t, err)
	assert.Equal(t, 75, repo.LastSkip)
	assert.Equal(t, 25, repo.LastLimit)
}

func TestListHugePageSkipsStoreScan(t *testing.T) {
	repo := &MockTodoRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 3, nil },
		FindFunc: func(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
			return nil, errors.New("find must not be called")
		},
	}
	srv := NewTodoService(repo)

	result, err := srv.List(context.Background(), domain.PageRequest{Page: 288230376151711745, Limit: 64}, baseURL(t))

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, 1, repo.Calls)
}

func TestListClassifiesStoreFailure(t *testing.T) {
	repo := &MockTodoRepository{
		FindFunc: func(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	srv := NewTodoService(repo)

	_, err := srv.List(context.Background(), domain.PageRequest{Page: 1, Limit: 10}, baseURL(t))

	assert.True(t, errors.Is(err, domain.ErrUnclassified))
}

func TestAddThenGetByIDRoundTrip(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository())
	request := domain.TodoRequest{Title: "write tests", Description: "for the service", Completed: true}

	created, err := srv.Add(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	found, err := srv.GetByID(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
	assert.Equal(t, request.Title, found.Title)
	assert.Equal(t, request.Description, found.Description)
	assert.Equal(t, request.Completed, found.Completed)
}

func TestAddTwiceIsDuplicate(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository())
	request := domain.TodoRequest{Title: "same", Description: "same"}

	_, err := srv.Add(context.Background(), request)
	require.NoError(t, err)

	_, err = srv.Add(context.Background(), request)
	assert.True(t, errors.Is(err, domain.ErrDuplicateItem))
}

func TestAddClassifiesWrappedDuplicateKey(t *testing.T) {
	repo := &MockTodoRepository{
		CreateFunc: func(ctx context.Context, item *domain.TodoItem) error {
			return fmt.Errorf("%w: E11000 duplicate key error", output.ErrDuplicateKey)
		},
	}
	srv := NewTodoService(repo)

	_, err := srv.Add(context.Background(), domain.TodoRequest{Title: "a"})

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindDuplicateItem, domainErr.Kind)
}

func TestMalformedIDNeverReachesStore(t *testing.T) {
	repo := &MockTodoRepository{}
	srv := NewTodoService(repo)
	ctx := context.Background()

	_, err := srv.GetByID(ctx, "Invalid%20id")
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier))

	err = srv.Update(ctx, domain.TodoRequest{ID: "Invalid%20id", Title: "a"})
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier))

	err = srv.Delete(ctx, "Invalid%20id")
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier))

	assert.Zero(t, repo.Calls)
}

func TestGetByIDNotFound(t *testing.T) {
	srv := NewTodoService(memory.NewTodoRepository())
	id := domain.NewItemID().String()

	_, err := srv.GetByID(context.Background(), id)

	require.True(t, errors.Is(err, domain.ErrItemNotFound))
	assert.Equal(t, "Todo item not found with id - "+id, err.Error())
}

func TestUpdateRestrictsToMutableFields(t *testing.T) {
	repo := &MockTodoRepository{}
	srv := NewTodoService(repo)
	id := domain.NewItemID()

	err := srv.Update(context.Background(), domain.TodoRequest{ID: id.String(), Title: "t", Description: "d", Completed: true})

	require.NoError(t, err)
	assert.Equal(t, &domain.TodoFields{Title: "t", Description: "d", Completed: true}, repo.LastFields)
}

func TestUpdateMissingItemIsNotFound(t *testing.T) {
	repo := &MockTodoRepository{
		UpdateOneFunc: func(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error) {
			return 0, nil
		},
	}
	srv := NewTodoService(repo)

	err := srv.Update(context.Background(), domain.TodoRequest{ID: domain.NewItemID().String(), Title: "t"})

	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestUpdatePersistsChanges(t *testing.T) {
	srv, items := seedService(t, 2)
	id := items[0].ID.String()

	err := srv.Update(context.Background(), domain.TodoRequest{ID: id, Title: "changed", Description: "changed", Completed: true})
	require.NoError(t, err)

	found, err := srv.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "changed", found.Title)
	assert.True(t, found.Completed)
}

func TestDeleteTwiceIsNotFound(t *testing.T) {
	srv, items := seedService(t, 1)
	id := items[0].ID.String()

	require.NoError(t, srv.Delete(context.Background(), id))

	err := srv.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestDeleteClassifiesStoreFailure(t *testing.T) {
	cause := errors.New("connection reset")
	repo := &MockTodoRepository{
		DeleteOneFunc: func(ctx context.Context, id domain.ItemID) (int64, error) {
			return 0, cause
		},
	}
	srv := NewTodoService(repo)

	err := srv.Delete(context.Background(), domain.NewItemID().String())

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.KindUnclassified, domainErr.Kind)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Internal Server Error", domainErr.PublicMessage())
}
