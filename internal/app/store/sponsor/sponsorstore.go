// internal/app/store/sponsor/sponsorstore.go

// Package sponsor provides storage for sponsor records.
package sponsor

import (
	"context"
	"time"

	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	"github.com/proximaconf/proximacms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaxLimit caps the page size for sponsor listings.
const MaxLimit = 100

// Store provides access to the sponsors collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new sponsor store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sponsors")}
}

// CreateInput contains the input for creating a sponsor record.
type CreateInput struct {
	Title        string
	Name         string
	Email        string
	Organization string
	Phone        string
	City         string
	Country      string
	ConferenceID *primitive.ObjectID
}

// Create inserts a new sponsor record.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Sponsor, error) {
	now := time.Now().UTC()
	sp := models.Sponsor{
		ID:           primitive.NewObjectID(),
		Title:        input.Title,
		Name:         input.Name,
		Email:        input.Email,
		Organization: input.Organization,
		Phone:        input.Phone,
		City:         input.City,
		Country:      input.Country,
		ConferenceID: input.ConferenceID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Delete removes a sponsor; mongo.ErrNoDocuments when absent.
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

// ListOptions filters sponsor listings.
type ListOptions struct {
	Query string
	From  time.Time
	To    time.Time
	Page  int
	Limit int
}

// List returns sponsors newest-first plus the total matching count.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Sponsor, int64, error) {
	filter := bson.M{}
	storeutil.TextSearch(filter, opts.Query, "name", "email", "organization", "country")
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

	items := []models.Sponsor{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
