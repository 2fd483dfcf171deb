// internal/domain/catalog/entity.go
package catalog

// Platform represents the distribution channel for a game
type Platform string

const (
	PlatformPC          Platform = "pc"
	PlatformPlayStation Platform = "playstation"
	PlatformXbox        Platform = "xbox"
	PlatformNintendo    Platform = "nintendo"
)

// Platforms returns all supported platforms
func Platforms() []Platform {
	return []Platform{PlatformPC, PlatformPlayStation, PlatformXbox, PlatformNintendo}
}

// IsValid checks whether the platform is one of the supported values
func (p Platform) IsValid() bool {
	switch p {
	case PlatformPC, PlatformPlayStation, PlatformXbox, PlatformNintendo:
		return true
	}
	return false
}

// Game represents a game listing in the catalog. Records are immutable
// reference data loaded once at startup.
type Game struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	OriginalPrice          float64  `json:"original_price"`
	DiscountedPrice        float64  `json:"discounted_price"`
	Discount               int      `json:"discount"`
	Platform               Platform `json:"platform"`
	ImageURL               string   `json:"image_url"`
	HeroImageURL           string   `json:"hero_image_url"`
	Description            string   `json:"description"`
	Developer              string   `json:"developer"`
	Publisher              string   `json:"publisher"`
	Genre                  []string `json:"genre"`
	ReleaseDate            string   `json:"release_date"`
	Tags                   []string `json:"tags"`
	ReviewScore            float64  `json:"review_score"`
	TotalReviews           int      `json:"total_reviews"`
	DeliveryMethod         string   `json:"delivery_method"`
	ActivationInstructions string   `json:"activation_instructions"`
}
