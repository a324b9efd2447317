package mongostore

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/storage"
)

const (
	MembersCollection    = "members"
	ExpensesCollection   = "expenses"
	ChecklistsCollection = "checklists"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

type memberDoc struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

type expenseDoc struct {
	ID        string   `bson:"_id"`
	Seq       int64    `bson:"seq"`
	Title     string   `bson:"title"`
	Amount    float64  `bson:"amount"`
	Payer     string   `bson:"payer"`
	Date      string   `bson:"date"`
	Category  string   `bson:"category,omitempty"`
	SplitWith []string `bson:"splitWith,omitempty"`
}

type checklistDoc struct {
	Key   string          `bson:"_id"`
	Items map[string]bool `bson:"items"`
}

// Store implements storage.Store on three MongoDB collections.
type Store struct {
	provider CollectionProvider
	client   *mongo.Client
	last     atomic.Int64
}

// New creates a Store over the given provider. client may be nil, in which
// case Close is a no-op.
func New(provider CollectionProvider, client *mongo.Client) *Store {
	return &Store{provider: provider, client: client}
}

// Open connects to uri and returns a Store over database dbName.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := Connect(ctx, uri)
	if err != nil {
		return nil, err
	}
	return New(NewMongoProvider(client, dbName), client), nil
}

// Close disconnects the client, if any.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}

// nextSeq returns a strictly increasing insertion key.
func (s *Store) nextSeq() int64 {
	for {
		now := time.Now().UnixNano()
		last := s.last.Load()
		if now <= last {
			now = last + 1
		}
		if s.last.CompareAndSwap(last, now) {
			return now
		}
	}
}

var bySeq = options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

// ListMembers returns the roster in insertion order.
func (s *Store) ListMembers(ctx context.Context) ([]string, error) {
	cursor, err := s.provider.Collection(MembersCollection).Find(ctx, bson.D{}, bySeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var docs []memberDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}

	members := make([]string, 0, len(docs))
	for _, d := range docs {
		members = append(members, d.Name)
	}
	return members, nil
}

// AddMember upserts a member; an existing member keeps its position.
func (s *Store) AddMember(ctx context.Context, name string) error {
	filter := bson.M{"_id": name}
	update := bson.M{"$setOnInsert": bson.M{"seq": s.nextSeq()}}
	_, err := s.provider.Collection(MembersCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// DeleteMember removes a member from the roster.
func (s *Store) DeleteMember(ctx context.Context, name string) error {
	if _, err := s.provider.Collection(MembersCollection).DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// ListExpenses returns all expenses in insertion order.
func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	cursor, err := s.provider.Collection(ExpensesCollection).Find(ctx, bson.D{}, bySeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}

	expenses := make([]models.Expense, 0, len(docs))
	for _, d := range docs {
		expenses = append(expenses, models.Expense{
			ID:        d.ID,
			Title:     d.Title,
			Amount:    d.Amount,
			Payer:     d.Payer,
			Date:      d.Date,
			Category:  d.Category,
			SplitWith: d.SplitWith,
		})
	}
	return expenses, nil
}

// AddExpense inserts a new expense document.
func (s *Store) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		return fmt.Errorf("expense id required")
	}

	doc := expenseDoc{
		ID:        expense.ID,
		Seq:       s.nextSeq(),
		Title:     expense.Title,
		Amount:    expense.Amount,
		Payer:     expense.Payer,
		Date:      expense.Date,
		Category:  expense.Category,
		SplitWith: expense.SplitWith,
	}
	if _, err := s.provider.Collection(ExpensesCollection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense by ID.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.provider.Collection(ExpensesCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// LoadChecklist returns the saved item states for key.
func (s *Store) LoadChecklist(ctx context.Context, key string) (map[string]bool, error) {
	var doc checklistDoc
	err := s.provider.Collection(ChecklistsCollection).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist: %w", err)
	}
	if doc.Items == nil {
		doc.Items = map[string]bool{}
	}
	return doc.Items, nil
}

// SaveChecklist replaces the saved item states for key.
func (s *Store) SaveChecklist(ctx context.Context, key string, checked map[string]bool) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"items": checked}}
	_, err := s.provider.Collection(ChecklistsCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return nil
}
