// Package indexes creates the MongoDB indexes the application relies on.
//
// EnsureAll is called once at startup from the EnsureSchema hook. Index
// creation is idempotent: Mongo treats an existing identical index as a
// no-op.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll creates every required index on db.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	// Subscriber emails are unique; the subscribe endpoint leans on the
	// duplicate-key error to stay idempotent.
	subscriberIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
	}
	if err := ensure(ctx, db.Collection("subscribers"), subscriberIndexes); err != nil {
		return fmt.Errorf("subscribers indexes: %w", err)
	}

	contactIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
	}
	if err := ensure(ctx, db.Collection("contact_messages"), contactIndexes); err != nil {
		return fmt.Errorf("contact_messages indexes: %w", err)
	}

	conferenceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	}
	if err := ensure(ctx, db.Collection("conferences"), conferenceIndexes); err != nil {
		return fmt.Errorf("conferences indexes: %w", err)
	}

	sponsorIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "conference_id", Value: 1}},
			Options: options.Index().SetName("conference_id"),
		},
	}
	if err := ensure(ctx, db.Collection("sponsors"), sponsorIndexes); err != nil {
		return fmt.Errorf("sponsors indexes: %w", err)
	}

	logger.Info("database indexes ensured")
	return nil
}

func ensure(ctx context.Context, c *mongo.Collection, models []mongo.IndexModel) error {
	_, err := c.Indexes().CreateMany(ctx, models)
	return err
}
