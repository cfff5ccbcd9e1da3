// internal/app/store/conference/conferencestore.go

// Package conference provides storage for conferences.
package conference

import (
	"context"
	"time"

	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	"github.com/proximaconf/proximacms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaxLimit caps the page size for conference listings.
const MaxLimit = 100

// Store provides access to the conferences collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new conference store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("conferences")}
}

// Create inserts a conference with the given name.
func (s *Store) Create(ctx context.Context, name string) (*models.Conference, error) {
	now := time.Now().UTC()
	conf := models.Conference{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// GetByID retrieves a conference by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Conference, error) {
	var conf models.Conference
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Rename updates a conference's name and returns the updated record, or
// mongo.ErrNoDocuments when the id does not exist.
func (s *Store) Rename(ctx context.Context, id primitive.ObjectID, name string) (*models.Conference, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"name": name, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// Delete removes a conference; mongo.ErrNoDocuments when absent.
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

// ListOptions filters conference listings.
type ListOptions struct {
	Query string
	From  time.Time
	To    time.Time
	Page  int
	Limit int
}

// List returns conferences newest-first plus the total matching count.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Conference, int64, error) {
	filter := bson.M{}
	storeutil.TextSearch(filter, opts.Query, "name")
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

	items := []models.Conference{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// NamesByID returns a name lookup for the given conference ids.
// Used to resolve sponsor conference references at list time.
func (s *Store) NamesByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := map[primitive.ObjectID]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var confs []models.Conference
	if err := cur.All(ctx, &confs); err != nil {
		return nil, err
	}
	for _, c := range confs {
		names[c.ID] = c.Name
	}
	return names, nil
}
