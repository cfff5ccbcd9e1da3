// internal/domain/models/upcoming.go
package models

// UpcomingEvent is one scheduled conference. Dates are stored as the
// admin entered them ("YYYY-MM-DD" or ISO strings).
type UpcomingEvent struct {
	Title     string `bson:"title" json:"title"`
	StartDate string `bson:"start_date" json:"startDate"`
	EndDate   string `bson:"end_date" json:"endDate"`
	Country   string `bson:"country" json:"country"`
	City      string `bson:"city" json:"city"`
	Image     string `bson:"image" json:"image"`
	Website   string `bson:"website" json:"website"`
}

// UpcomingPage is the singleton upcoming-events document.
type UpcomingPage struct {
	Meta   `bson:",inline"`
	Hero   Hero            `bson:"hero" json:"hero"`
	Events []UpcomingEvent `bson:"events" json:"events"`
}

// NewUpcomingPage returns an upcoming page with default copy.
func NewUpcomingPage() *UpcomingPage {
	return &UpcomingPage{Hero: Hero{Title: "Upcoming Events"}}
}
