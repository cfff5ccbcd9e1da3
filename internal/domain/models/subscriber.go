// internal/domain/models/subscriber.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber statuses.
const (
	SubscriberStatusSubscribed   = "subscribed"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// ValidSubscriberStatus reports whether s is a declared subscriber status.
func ValidSubscriberStatus(s string) bool {
	return s == SubscriberStatusSubscribed || s == SubscriberStatusUnsubscribed
}

// Subscriber is one newsletter subscription, unique per normalized email.
type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"` // trimmed, lowercased
	Status    string             `bson:"status" json:"status"`
	Source    string             `bson:"source" json:"source"`
	IP        string             `bson:"ip" json:"ip"`
	UserAgent string             `bson:"user_agent" json:"userAgent"`
	Note      string             `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
