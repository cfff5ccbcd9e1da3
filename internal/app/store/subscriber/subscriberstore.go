// internal/app/store/subscriber/subscriberstore.go

// Package subscriber provides storage for newsletter subscribers.
package subscriber

import (
	"context"
	"strings"
	"time"

	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	"github.com/proximaconf/proximacms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxLimit caps the page size for subscriber listings.
const MaxLimit = 500

// Store provides access to the subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new subscriber store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subscribers")}
}

// NormalizeEmail is the canonical form a subscription is keyed by.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubscribeInput carries the request context recorded with a subscription.
type SubscribeInput struct {
	Email     string // already normalized
	Source    string
	IP        string
	UserAgent string
}

// Subscribe upserts a subscription keyed by email. An existing record is
// reactivated (status set back to subscribed) rather than duplicated.
// A duplicate-key race surfaces as a mongo duplicate-key error; the caller
// treats that as already-subscribed, keeping subscribe idempotent.
func (s *Store) Subscribe(ctx context.Context, input SubscribeInput) (*models.Subscriber, error) {
	now := time.Now().UTC()
	filter := bson.M{"email": input.Email}
	update := bson.M{
		"$set": bson.M{
			"email":      input.Email,
			"status":     models.SubscriberStatusSubscribed,
			"source":     input.Source,
			"ip":         input.IP,
			"user_agent": input.UserAgent,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var sub models.Subscriber
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByID retrieves a subscriber by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateInput contains the admin-editable fields of a subscriber.
type UpdateInput struct {
	Status *string
	Note   *string
}

// Update applies admin edits and returns the updated subscriber, or
// mongo.ErrNoDocuments when the id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.Subscriber, error) {
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

// Delete removes a subscriber; mongo.ErrNoDocuments when absent.
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

// ListOptions filters subscriber listings. An undeclared Status is ignored.
type ListOptions struct {
	Query  string
	Status string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

// List returns subscribers newest-first plus the total matching count.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Subscriber, int64, error) {
	filter := bson.M{}
	if models.ValidSubscriberStatus(opts.Status) {
		filter["status"] = opts.Status
	}
	storeutil.TextSearch(filter, opts.Query, "email")
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

	items := []models.Subscriber{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
