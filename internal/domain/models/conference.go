// internal/domain/models/conference.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conference is a named conference that sponsors can be attached to.
type Conference struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Sponsor is a sponsorship enquiry/record, optionally tied to a conference.
type Sponsor struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Name         string              `bson:"name" json:"name"`
	Email        string              `bson:"email" json:"email"`
	Organization string              `bson:"organization" json:"organization"`
	Phone        string              `bson:"phone" json:"phone"`
	City         string              `bson:"city" json:"city"`
	Country      string              `bson:"country" json:"country"`
	ConferenceID *primitive.ObjectID `bson:"conference_id" json:"conferenceId"`
	// ConferenceName is resolved at list time, never stored.
	ConferenceName string    `bson:"-" json:"conferenceName,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
