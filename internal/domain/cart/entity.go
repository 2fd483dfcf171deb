// internal/domain/cart/entity.go
package cart

// Item represents a cart line. Display fields are copied from the game at
// the time of addition so the cart renders without a catalog lookup.
type Item struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Platform        string  `json:"platform"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Discount        int     `json:"discount"`
	ImageURL        string  `json:"image_url"`
	Quantity        int     `json:"quantity"`
}

// Snapshot is the serialized cart state persisted after every mutation.
// The wire shape is a bare {"items": [...]} mapping with no schema version.
type Snapshot struct {
	Items []Item `json:"items"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of unique items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	Subtotal      float64 `json:"subtotal"`       // Discounted total
	OriginalTotal float64 `json:"original_total"` // Pre-discount total
	TotalDiscount float64 `json:"total_discount"` // OriginalTotal - Subtotal
}

// TotalItems returns the sum of quantities across all items
func (s *Snapshot) TotalItems() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the discounted-price total
func (s *Snapshot) Subtotal() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.DiscountedPrice * float64(item.Quantity)
	}
	return total
}

// OriginalTotal returns the pre-discount total
func (s *Snapshot) OriginalTotal() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.OriginalPrice * float64(item.Quantity)
	}
	return total
}

// TotalDiscount returns the amount saved against original prices. Holds
// OriginalTotal() - Subtotal() by construction, whatever the rounding of
// the underlying prices.
func (s *Snapshot) TotalDiscount() float64 {
	return s.OriginalTotal() - s.Subtotal()
}

// CalculateTotals derives all monetary aggregates from the current items.
// Totals are recomputed on every call; nothing is cached.
func (s *Snapshot) CalculateTotals() Totals {
	return Totals{
		ItemCount:     len(s.Items),
		TotalQuantity: s.TotalItems(),
		Subtotal:      s.Subtotal(),
		OriginalTotal: s.OriginalTotal(),
		TotalDiscount: s.TotalDiscount(),
	}
}
