package model

// AccessType tags a cart line item with the purchase mode.
const (
	AccessIndividual  = "individual"
	AccessInstitution = "institution"
	AccessCorporate   = "corporate"
)

// CartItem is one course offering in the cart, as returned by GET /cart/items
type CartItem struct {
	CourseID    string  `json:"course_id"`
	Name        string  `json:"name"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	ModuleCount int     `json:"module_count,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Language    string  `json:"language,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	AccessType  string  `json:"access_type"`
	MaxSeats    *int    `json:"max_seats,omitempty"`
}

// CartItemsResponse is the backend reply for GET /cart/items
type CartItemsResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
}

// CartTotals is derived from line items, never persisted
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
