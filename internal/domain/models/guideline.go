// internal/domain/models/guideline.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guideline is the speaker-guidelines document (a singleton by convention).
// Speaker holds sanitized rich-text HTML.
type Guideline struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Speaker   string             `bson:"speaker" json:"speaker"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
