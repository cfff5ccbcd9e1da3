// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact message statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusArchived = "archived"
)

// ContactStatuses returns the valid contact message statuses.
func ContactStatuses() []string {
	return []string{ContactStatusNew, ContactStatusRead, ContactStatusArchived}
}

// ValidContactStatus reports whether s is a declared contact status.
func ValidContactStatus(s string) bool {
	for _, v := range ContactStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	Note      string             `bson:"note" json:"note"` // admin note
	IP        string             `bson:"ip" json:"ip"`
	UserAgent string             `bson:"user_agent" json:"userAgent"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
