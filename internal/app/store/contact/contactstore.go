// internal/app/store/contact/contactstore.go

// Package contact provides storage for contact-form messages.
package contact

import (
	"context"
	"time"

	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	"github.com/proximaconf/proximacms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaxLimit caps the page size for contact listings.
const MaxLimit = 200

// Store provides access to the contact_messages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact message store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// CreateInput contains the input for recording a contact message.
type CreateInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IP        string
	UserAgent string
}

// Create records a new contact message with status "new".
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.ContactMessage, error) {
	now := time.Now().UTC()
	msg := models.ContactMessage{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.ContactStatusNew,
		IP:        input.IP,
		UserAgent: input.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetByID retrieves a contact message by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateInput contains the admin-editable fields of a contact message.
type UpdateInput struct {
	Status *string
	Note   *string
}

// Update applies admin edits and returns the updated message, or
// mongo.ErrNoDocuments when the id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.ContactMessage, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Note != nil {
		set["note"] = *input.Note
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// Delete removes a contact message; mongo.ErrNoDocuments when absent.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListOptions filters contact listings. An undeclared Status is ignored.
type ListOptions struct {
	Query  string
	Status string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

// List returns messages newest-first plus the total matching count.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.ContactMessage, int64, error) {
	filter := bson.M{}
	if models.ValidContactStatus(opts.Status) {
		filter["status"] = opts.Status
	}
	storeutil.TextSearch(filter, opts.Query, "name", "email", "subject", "message")
	storeutil.DateRange(filter, opts.From, opts.To)

	page, limit := storeutil.ClampPage(opts.Page, opts.Limit, MaxLimit)

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := s.c.Find(ctx, filter, storeutil.Paginate(int64(limit), int64(page)))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := []models.ContactMessage{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
