// internal/domain/models/about.go
package models

// Hero is the standard page hero used by the about, services, gallery and
// upcoming pages. BGImage is a file reference: empty, an owned
// "/uploads/..." path, or an external absolute URL.
type Hero struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	BGImage  string `bson:"bg_image" json:"bgImage"`
}

// ContentSection is a heading/description/image block on the about page.
type ContentSection struct {
	Heading     string `bson:"heading" json:"heading"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}

// Counter is a headline figure ("124+" style) on the about page.
type Counter struct {
	Title  string `bson:"title" json:"title"`
	Number string `bson:"number" json:"number"`
}

// ApproachItem is one card in the "our approach" strip.
type ApproachItem struct {
	Title    string `bson:"title" json:"title"`
	Text     string `bson:"text" json:"text"`
	Color    string `bson:"color" json:"color"`
	ColorHex string `bson:"color_hex" json:"colorHex"`
}

// AboutPage is the singleton about page document.
type AboutPage struct {
	Meta     `bson:",inline"`
	Hero     Hero             `bson:"hero" json:"hero"`
	Sections []ContentSection `bson:"content_sections" json:"contentSections"`
	Counters []Counter        `bson:"counters" json:"counters"`
	Approach []ApproachItem   `bson:"approach" json:"approach"`
}

// NewAboutPage returns an about page with default copy.
func NewAboutPage() *AboutPage {
	return &AboutPage{Hero: Hero{Title: "About Proxima"}}
}
