package services

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	apperrors "posada/internal/errors"
	"posada/internal/metrics"
	"posada/internal/models"
	"posada/internal/state"
)

// maxImageBytes caps uploaded item images before base64 encoding. Images are
// stored inline in the snapshot, so oversized uploads would bloat every
// flush of the items key.
const maxImageBytes = 2 << 20

// itemService handles catalog business logic.
type itemService struct {
	state        *state.State
	defaultImage string
}

// NewItemService creates a new ItemServicer.
func NewItemService(st *state.State, defaultImage string) ItemServicer {
	if defaultImage == "" {
		defaultImage = models.DefaultItemImage
	}
	return &itemService{state: st, defaultImage: defaultImage}
}

// validPrice rejects negative, NaN, and infinite prices before an item is
// constructed.
func validPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

// CreateItem constructs an item with a fresh unique id and appends it to
// the catalog. The image must already be encoded (see EncodeImage); an
// empty image falls back to the default placeholder.
func (s *itemService) CreateItem(name string, price float64, category models.Category, image string) (item *models.Item, err error) {
	defer func() { metrics.ObserveOperation("create_item", err) }()

	if !validPrice(price) {
		return nil, apperrors.ErrInvalidPrice
	}
	if !category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if image == "" {
		image = s.defaultImage
	}

	item = &models.Item{
		ID:       s.state.NextID(),
		Name:     name,
		Price:    price,
		Category: category,
		Image:    image,
	}

	flushErr := s.state.UpdateItems(func(items []models.Item) []models.Item {
		return append(items, *item)
	})
	warnDegraded("create_item", flushErr)
	return item, nil
}

// ListItems returns the catalog in insertion order.
func (s *itemService) ListItems() []models.Item {
	return s.state.Items()
}

// GetItemByID returns the item with the given id.
func (s *itemService) GetItemByID(id int64) (*models.Item, error) {
	for _, item := range s.state.Items() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, apperrors.ErrItemNotFound
}

// EditItem replaces an item's name and price in place. Historical
// transaction amounts are untouched; they captured the price at sale time.
func (s *itemService) EditItem(id int64, newName string, newPrice float64) (item *models.Item, err error) {
	defer func() { metrics.ObserveOperation("edit_item", err) }()

	if !validPrice(newPrice) {
		return nil, apperrors.ErrInvalidPrice
	}

	var found bool
	flushErr := s.state.UpdateItems(func(items []models.Item) []models.Item {
		for i := range items {
			if items[i].ID == id {
				items[i].Name = newName
				items[i].Price = newPrice
				updated := items[i]
				item = &updated
				found = true
				break
			}
		}
		return items
	})
	if !found {
		return nil, apperrors.ErrItemNotFound
	}
	warnDegraded("edit_item", flushErr)
	return item, nil
}

// DeleteItem removes the item with the given id if present and reports
// whether a removal occurred. Deleting an absent id is a no-op, not an
// error, so the operation is idempotent. Transactions referencing the item
// are left untouched and become orphaned.
func (s *itemService) DeleteItem(id int64) (removed bool, err error) {
	defer func() { metrics.ObserveOperation("delete_item", err) }()

	flushErr := s.state.UpdateItems(func(items []models.Item) []models.Item {
		kept := items[:0]
		for _, item := range items {
			if item.ID == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		return kept
	})
	warnDegraded("delete_item", flushErr)
	return removed, nil
}

// EncodeImage converts an uploaded image into the data URI stored on an
// item. Encoding is a separate step from item construction so a slow or
// failed upload can never leave a half-built item in the catalog.
func (s *itemService) EncodeImage(data []byte, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.ErrInvalidImage
	}
	if len(data) > maxImageBytes {
		return "", apperrors.ErrImageTooLarge
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
