// internal/app/store/content/contentstore.go

// Package content provides the generic repository used by every singleton
// page document (home, about, services, gallery, upcoming).
package content

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an id has no matching document.
var ErrNotFound = errors.New("document not found")

// Doc is implemented by every content document via *models.Meta.
type Doc interface {
	DocID() primitive.ObjectID
	SetDocID(id primitive.ObjectID)
	Stamp(created, updated time.Time)
}

// Store is a repository over one content-document collection.
// T is a pointer type (*models.HomePage, ...); fresh builds a document with
// the type's default field values.
type Store[T Doc] struct {
	c     *mongo.Collection
	fresh func() T
}

// New creates a content store for the given collection.
func New[T Doc](db *mongo.Database, collection string, fresh func() T) *Store[T] {
	return &Store[T]{c: db.Collection(collection), fresh: fresh}
}

// FindSingleton returns the page document, creating one with defaults when
// the collection is empty. It never reports absence. When several documents
// exist (historical data), the most recently updated one wins.
func (s *Store[T]) FindSingleton(ctx context.Context) (T, error) {
	var doc T
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == nil {
		return doc, nil
	}
	if err != mongo.ErrNoDocuments {
		return doc, err
	}

	doc = s.fresh()
	now := time.Now().UTC()
	doc.SetDocID(primitive.NewObjectID())
	doc.Stamp(now, now)
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// FindByID returns the document with the given id, or ErrNotFound.
func (s *Store[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, err
	}
	return doc, nil
}

// Save persists the whole document state, stamping updated_at. A document
// without an id gets one (create path). Replacing the full value means deep
// edits to nested arrays always persist; there is no field-level merge here.
func (s *Store[T]) Save(ctx context.Context, doc T) error {
	now := time.Now().UTC()
	if doc.DocID().IsZero() {
		doc.SetDocID(primitive.NewObjectID())
		doc.Stamp(now, now)
	} else {
		doc.Stamp(time.Time{}, now)
	}

	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": doc.DocID()}, doc, opts)
	return err
}

// DeleteByID removes the document with the given id, or returns ErrNotFound.
func (s *Store[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
