package services

import (
	"posada/internal/models"
	"posada/internal/pagination"
	"posada/internal/reports"
)

// ItemServicer defines the contract for catalog business logic.
type ItemServicer interface {
	CreateItem(name string, price float64, category models.Category, image string) (*models.Item, error)
	ListItems() []models.Item
	GetItemByID(id int64) (*models.Item, error)
	EditItem(id int64, newName string, newPrice float64) (*models.Item, error)
	DeleteItem(id int64) (bool, error)
	EncodeImage(data []byte, contentType string) (string, error)
}

// TransactionEntry is a transaction joined with its item's display name for
// the history listing. Orphaned transactions show the unknown-item sentinel.
type TransactionEntry struct {
	ID       int64   `json:"id"`
	ItemID   int64   `json:"itemId"`
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// PaymentServicer defines the contract for payment capture and history.
type PaymentServicer interface {
	CreateTransaction(itemID int64) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[TransactionEntry], error)
	PaymentQR(transactionID int64) ([]byte, error)
}

// ProfileServicer defines the contract for the establishment profile.
type ProfileServicer interface {
	Profile() models.Profile
	SaveProfile(fields models.Profile) (*models.Profile, error)
}

// SessionServicer defines the contract for terminal login sessions.
type SessionServicer interface {
	Login(username, password string) (*models.Session, error)
	Logout() error
	Current() *models.Session
}

// DashboardServicer defines the contract for the derived dashboard views.
type DashboardServicer interface {
	Today() reports.TodayMetrics
	Series(from, to string) ([]reports.DayTotal, error)
	ProfitByCategory() map[models.Category]float64
}

// AdminServicer defines the contract for maintenance operations.
type AdminServicer interface {
	ResetAll(confirm bool) error
	Degraded() bool
}
