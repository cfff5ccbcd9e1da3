// internal/domain/models/meta.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the identity and timestamps shared by every content document.
// The ID is assigned once at creation and never changes; UpdatedAt is stamped
// by the store on every save.
//
// JSON field names are camelCase because the public site and the admin UI
// round-trip documents verbatim in that shape.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DocID returns the document's ObjectID.
func (m *Meta) DocID() primitive.ObjectID { return m.ID }

// SetDocID assigns the document's ObjectID. Called once by the store at
// creation time.
func (m *Meta) SetDocID(id primitive.ObjectID) { m.ID = id }

// Stamp sets the created/updated timestamps. A zero created time means
// "leave CreatedAt alone" (update of an existing document).
func (m *Meta) Stamp(created, updated time.Time) {
	if !created.IsZero() {
		m.CreatedAt = created
	}
	m.UpdatedAt = updated
}

// FlexInt decodes from either a JSON number or a numeric string.
// Admin forms serialize numeric sub-fields inconsistently ("2019" vs 2019);
// both must land as the same stored value.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		// Accept floats like 2019.0 from loosely typed clients.
		var fl float64
		if ferr := json.Unmarshal(data, &fl); ferr != nil {
			return err
		}
		n = int(fl)
	}
	*f = FlexInt(n)
	return nil
}
