// internal/domain/models/services.go
package models

// ServiceItem is one offered service. Image is a file reference.
type ServiceItem struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Points      []string `bson:"points" json:"points"`
	Image       string   `bson:"image" json:"image"`
}

// ServicePage is the singleton services page document.
type ServicePage struct {
	Meta     `bson:",inline"`
	Hero     Hero          `bson:"hero" json:"hero"`
	Services []ServiceItem `bson:"services" json:"services"`
}

// NewServicePage returns a services page with default copy.
func NewServicePage() *ServicePage {
	return &ServicePage{Hero: Hero{Title: "Our Services"}}
}
