package models

// Category classifies a catalog item for profit aggregation.
type Category string

const (
	CategoryFood    Category = "food"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
	CategoryOther   Category = "other"
)

// KnownCategories lists the categories the profit aggregator buckets by,
// in display order.
var KnownCategories = []Category{CategoryFood, CategoryDrink, CategoryDessert, CategoryOther}

// Valid reports whether the category is one of the recognized values.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategoryDessert, CategoryOther:
		return true
	}
	return false
}

// DefaultItemImage is the placeholder used when no image is uploaded for an item.
const DefaultItemImage = "images/default-item.png"

// Item is a catalog entry that can be sold. The JSON shape matches the
// persisted snapshot layout under the "items" key.
type Item struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category Category `json:"category"`
	// Image is an opaque encoded reference: a data URI produced by the
	// upload step, or DefaultItemImage.
	Image string `json:"image"`
}
