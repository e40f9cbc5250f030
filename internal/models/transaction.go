package models

import "time"

// UnknownItemName is displayed for transactions whose item has been deleted.
const UnknownItemName = "Unknown Item"

// Transaction records a completed payment. Transactions are append-only:
// there is no edit or delete operation, only the full reset.
type Transaction struct {
	ID int64 `json:"id"`
	// ItemID references the item sold. The item may have been deleted
	// since; the transaction stays valid and is then considered orphaned.
	ItemID int64 `json:"itemId"`
	// Amount is the item's price captured at payment time. It is never
	// re-derived, so later price edits do not rewrite history.
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}
