// internal/app/store/guideline/guidelinestore.go

// Package guideline provides storage for the speaker-guidelines document.
// The collection holds one document by convention; Save upserts it.
package guideline

import (
	"context"
	"time"

	"github.com/proximaconf/proximacms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the guidelines collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new guideline store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("guidelines")}
}

// Get returns the guideline document, or nil when none has been saved yet.
func (s *Store) Get(ctx context.Context) (*models.Guideline, error) {
	var g models.Guideline
	err := s.c.FindOne(ctx, bson.M{}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Save creates or updates the single guideline document.
func (s *Store) Save(ctx context.Context, speaker string) (*models.Guideline, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"speaker":    speaker,
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

	var g models.Guideline
	if err := s.c.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&g); err != nil {
		return nil, err
	}
	return &g, nil
}
