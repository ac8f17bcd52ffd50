package postgres

import (
	"context"
	"errors"
	"fmt"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Compile-time check to ensure TodoRepository implements output.TodoRepository
var _ output.TodoRepository = (*TodoRepository)(nil)

const uniqueViolation = "23505"

// TodoRepository struct - Secondary/Driven adapter for PostgreSQL
type TodoRepository struct {
	dbGorm *gorm.DB
}

// NewTodoRepository func - Creates new PostgreSQL repository, migrating the
// todos table and its unique index first
func NewTodoRepository(dbGorm *gorm.DB) (*TodoRepository, error) {
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		return nil, err
	}
	return &TodoRepository{
		dbGorm: dbGorm,
	}, nil
}

// Find func
func (p *TodoRepository) Find(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
	todos := []domain.TodoItem{}
	err := p.dbGorm.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Count func
func (p *TodoRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := p.dbGorm.WithContext(ctx).Model(&domain.TodoItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID func
func (p *TodoRepository) FindByID(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error) {
	var todo domain.TodoItem
	err := p.dbGorm.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create func
func (p *TodoRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	if err := p.dbGorm.WithContext(ctx).Create(item).Error; err != nil {
		return classify(err)
	}
	return nil
}

// UpdateOne func
func (p *TodoRepository) UpdateOne(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error) {
	tx := p.dbGorm.WithContext(ctx).
		Model(&domain.TodoItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       fields.Title,
			"description": fields.Description,
			"completed":   fields.Completed,
		})
	if tx.Error != nil {
		return 0, classify(tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteOne func - hard delete, the table has no soft delete column
func (p *TodoRepository) DeleteOne(ctx context.Context, id domain.ItemID) (int64, error) {
	tx := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.TodoItem{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// Ping func
func (p *TodoRepository) Ping(ctx context.Context) error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func classify(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", output.ErrDuplicateKey, domain.TodoUniqueIndex)
	}
	return err
}

// isUniqueViolation reports whether err was raised by a unique index, either
// already translated by gorm or as the raw postgres error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
