// internal/domain/models/home.go
package models

// Upload namespaces. A stored image path is always
// "/uploads/<namespace>/<filename>".
const (
	NamespaceHome     = "home"
	NamespaceAbout    = "about"
	NamespaceServices = "services"
	NamespaceGallery  = "gallery"
	NamespaceUpcoming = "upcoming"
)

// HeroImage is one slide of the home hero carousel.
type HeroImage struct {
	Src string `bson:"src" json:"src"`
	Alt string `bson:"alt" json:"alt"`
}

// HomeHero is the hero section of the home page.
type HomeHero struct {
	Images     []HeroImage `bson:"images" json:"images"`
	Heading    string      `bson:"heading" json:"heading"`
	Subheading string      `bson:"subheading" json:"subheading"`
	ButtonText string      `bson:"button_text" json:"buttonText"`
}

// WelcomeCard is one card under the welcome section; Image is a file
// reference.
type WelcomeCard struct {
	Image string `bson:"image" json:"image"`
	Title string `bson:"title" json:"title"`
	Desc  string `bson:"desc" json:"desc"`
}

// Welcome is the welcome section of the home page.
type Welcome struct {
	Heading string        `bson:"heading" json:"heading"`
	Content string        `bson:"content" json:"content"`
	Cards   []WelcomeCard `bson:"cards" json:"cards"`
}

// Stat is an animated counter on the home page.
type Stat struct {
	Label  string  `bson:"label" json:"label"`
	Value  FlexInt `bson:"value" json:"value"`
	Suffix string  `bson:"suffix" json:"suffix"`
}

// AboutBlock is a short about teaser on the home page.
type AboutBlock struct {
	Image   string `bson:"image" json:"image"`
	Heading string `bson:"heading" json:"heading"`
	Content string `bson:"content" json:"content"`
}

// ConferenceCard is a highlighted conference on the home page.
type ConferenceCard struct {
	Title string `bson:"title" json:"title"`
	Img   string `bson:"img" json:"img"`
	Text  string `bson:"text" json:"text"`
	Link  string `bson:"link" json:"link"`
}

// Sustainable is the sustainable-conferences section.
type Sustainable struct {
	Content  string `bson:"content" json:"content"`
	Image    string `bson:"image" json:"image"`
	ImageAlt string `bson:"image_alt" json:"imageAlt"`
}

// Testimonial is a visitor quote with an optional photo.
type Testimonial struct {
	Name        string `bson:"name" json:"name"`
	Affiliation string `bson:"affiliation" json:"affiliation"`
	Comment     string `bson:"comment" json:"comment"`
	Photo       string `bson:"photo" json:"photo"`
}

// HomePage is the singleton home page document.
type HomePage struct {
	Meta         `bson:",inline"`
	Hero         HomeHero         `bson:"hero" json:"hero"`
	Welcome      Welcome          `bson:"welcome" json:"welcome"`
	Stats        []Stat           `bson:"stats" json:"stats"`
	About        []AboutBlock     `bson:"about" json:"about"`
	Conferences  []ConferenceCard `bson:"conferences" json:"conferences"`
	Sustainable  Sustainable      `bson:"sustainable_conferences" json:"sustainableConferences"`
	Testimonials []Testimonial    `bson:"testimonials" json:"testimonials"`
}

// NewHomePage returns a home page with default copy, used on lazy creation.
func NewHomePage() *HomePage {
	return &HomePage{
		Hero: HomeHero{
			Heading:    "THE PROXIMA",
			ButtonText: "Explore Conferences",
		},
		Welcome: Welcome{
			Heading: "Welcome to Proxima",
		},
		Sustainable: Sustainable{
			ImageAlt: "Sustainable Conferences",
		},
	}
}
