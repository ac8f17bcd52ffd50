package domain

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TodoUniqueIndex is the name of the unique index over (title, description)
const TodoUniqueIndex = "idx_todos_title_description"

// TodoItem struct - Core domain entity
type TodoItem struct {
	ID          ItemID    `gorm:"type:char(24);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_todos_title_description,priority:1" json:"title"`
	Description string    `gorm:"type:varchar(1024);not null;uniqueIndex:idx_todos_title_description,priority:2" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"type:timestamp;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"type:timestamp;autoUpdateTime" json:"updatedAt"`
}

// TodoFields is the mutable part of a TodoItem
type TodoFields struct {
	Title       string
	Description string
	Completed   bool
}

// Fields returns the mutable part of the item.
func (t *TodoItem) Fields() TodoFields {
	return TodoFields{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// TableName func
func (t *TodoItem) TableName() string {
	return "todos"
}

// BeforeCreate hook - assigns the id before inserting
func (t *TodoItem) BeforeCreate(tx *gorm.DB) error {
	if t.ID.IsZero() {
		t.ID = NewItemID()
	}
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	logrus.Info("Migrate database ...")
	return db.AutoMigrate(&TodoItem{})
}
