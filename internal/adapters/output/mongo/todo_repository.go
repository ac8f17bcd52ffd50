package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Compile-time check to ensure TodoRepository implements output.TodoRepository
var _ output.TodoRepository = (*TodoRepository)(nil)

// todoDocument is the stored shape of a todo item
type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toDocument(item *domain.TodoItem) todoDocument {
	return todoDocument{
		ID:          primitive.ObjectID(item.ID),
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (d todoDocument) toDomain() domain.TodoItem {
	return domain.TodoItem{
		ID:          domain.ItemID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// TodoRepository struct - Secondary/Driven adapter for MongoDB
type TodoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

// NewTodoRepository func - Creates new MongoDB repository and ensures the
// unique index over (title, description) exists
func NewTodoRepository(ctx context.Context, client *mongo.Client, collection *mongo.Collection) (*TodoRepository, error) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(domain.TodoUniqueIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("create index %s: %w", domain.TodoUniqueIndex, err)
	}
	return &TodoRepository{
		client:     client,
		collection: collection,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}, nil
}

// Find func
func (m *TodoRepository) Find(ctx context.Context, skip, limit int) ([]domain.TodoItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := m.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]domain.TodoItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toDomain())
	}
	return items, nil
}

// Count func
func (m *TodoRepository) Count(ctx context.Context) (int64, error) {
	return m.collection.CountDocuments(ctx, bson.D{})
}

// FindByID func
func (m *TodoRepository) FindByID(ctx context.Context, id domain.ItemID) (*domain.TodoItem, error) {
	var doc todoDocument
	err := m.collection.FindOne(ctx, byID(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item := doc.toDomain()
	return &item, nil
}

// Create func
func (m *TodoRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	if item.ID.IsZero() {
		item.ID = domain.NewItemID()
	}
	now := m.now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := m.collection.InsertOne(ctx, toDocument(item)); err != nil {
		return classify(err)
	}
	return nil
}

// UpdateOne func
func (m *TodoRepository) UpdateOne(ctx context.Context, id domain.ItemID, fields domain.TodoFields) (int64, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: fields.Title},
		{Key: "description", Value: fields.Description},
		{Key: "completed", Value: fields.Completed},
		{Key: "updatedAt", Value: m.now()},
	}}}
	result, err := m.collection.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return 0, classify(err)
	}
	return result.MatchedCount, nil
}

// DeleteOne func
func (m *TodoRepository) DeleteOne(ctx context.Context, id domain.ItemID) (int64, error) {
	result, err := m.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// Ping func
func (m *TodoRepository) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func byID(id domain.ItemID) bson.D {
	return bson.D{{Key: "_id", Value: primitive.ObjectID(id)}}
}

func classify(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", output.ErrDuplicateKey, domain.TodoUniqueIndex)
	}
	return err
}
