// Package catalog provides the storefront data model and the view model that
// filters, sorts and aggregates it for display.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a product category as returned by the API.
type Category string

const (
	// CategoryAll is the sentinel that disables category filtering.
	CategoryAll Category = "All"
	// CategoryFashion covers fashion and accessories.
	CategoryFashion Category = "Fashion & Accessories"
	// CategoryFood covers food and beverages.
	CategoryFood Category = "Food & Beverages"
	// CategoryHome covers home and garden goods.
	CategoryHome Category = "Home & Garden"
	// CategorySports covers sports and fitness gear.
	CategorySports Category = "Sports & Fitness"
	// CategoryBeauty covers beauty and wellness products.
	CategoryBeauty Category = "Beauty & Wellness"
	// CategoryElectronics covers electronics.
	CategoryElectronics Category = "Electronics"
)

// Categories lists the selectable categories in display order, starting with CategoryAll.
var Categories = []Category{
	CategoryAll,
	CategoryFashion,
	CategoryFood,
	CategoryHome,
	CategorySports,
	CategoryBeauty,
	CategoryElectronics,
}

// IsKnown returns true if the category is part of the enumerated set.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// SortKey selects the ordering of the visible item list.
type SortKey string

const (
	// SortName orders by name ascending using locale-aware collation.
	SortName SortKey = "name"
	// SortPriceLow orders by price ascending.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price descending.
	SortPriceHigh SortKey = "price-high"
	// SortRating orders by rating descending.
	SortRating SortKey = "rating"
)

// SortKeys lists the sort keys in the order the UI cycles through them.
var SortKeys = []SortKey{SortName, SortPriceLow, SortPriceHigh, SortRating}

// Label returns a human-readable label for the sort key.
func (s SortKey) Label() string {
	switch s {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortRating:
		return "Highest Rated"
	default:
		return "Name A-Z"
	}
}

// ViewMode is the presentation layout of the product list.
type ViewMode string

const (
	// ViewGrid renders products as cards.
	ViewGrid ViewMode = "grid"
	// ViewList renders products as one row each.
	ViewList ViewMode = "list"
)

// OrderStatus is the lifecycle state of an order. Unknown values from the
// API are kept as-is.
type OrderStatus string

const (
	// OrderPending is an order that has not been fulfilled yet.
	OrderPending OrderStatus = "pending"
	// OrderCompleted is a fulfilled order.
	OrderCompleted OrderStatus = "completed"
)

// Item is a catalog product.
type Item struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	InStock     bool            `json:"in_stock"`
	Image       string          `json:"image"`
}

// CartLine is one item entry in a cart. Price is the unit price captured when
// the item was first added and does not follow later catalog changes.
type CartLine struct {
	ID       uint            `json:"id"`
	ItemID   uint            `json:"item_id"`
	Item     Item            `json:"item"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Cart is the active cart of the logged-in user.
type Cart struct {
	ID     uint       `json:"id"`
	UserID uint       `json:"user_id"`
	Items  []CartLine `json:"items"`
}

// Order is an immutable snapshot of a cart taken at checkout.
type Order struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Cart      Cart            `json:"cart"`
}

// FilterCriteria holds the user-selected parameters for the product list.
type FilterCriteria struct {
	Search   string   `json:"search"`
	Category Category `json:"category"`
	Sort     SortKey  `json:"sort"`
	View     ViewMode `json:"view"`
}

// DefaultCriteria returns criteria that show every item sorted by name.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: CategoryAll,
		Sort:     SortName,
		View:     ViewGrid,
	}
}
