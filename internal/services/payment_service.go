package services

import (
	"fmt"
	"sort"
	"time"

	apperrors "posada/internal/errors"
	"posada/internal/metrics"
	"posada/internal/models"
	"posada/internal/pagination"
	"posada/internal/qr"
	"posada/internal/state"
)

// paymentService handles payment capture, history, and the QR display.
type paymentService struct {
	state    *state.State
	renderer qr.Renderer
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(st *state.State, renderer qr.Renderer) PaymentServicer {
	return &paymentService{state: st, renderer: renderer}
}

// CreateTransaction records a payment for the given item. The amount is the
// item's price at this instant; later price edits never rewrite it. Fails
// with ErrItemNotFound when the item has been deleted.
func (s *paymentService) CreateTransaction(itemID int64) (tx *models.Transaction, err error) {
	defer func() { metrics.ObserveOperation("create_transaction", err) }()

	var item *models.Item
	for _, candidate := range s.state.Items() {
		if candidate.ID == itemID {
			found := candidate
			item = &found
			break
		}
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}

	tx = &models.Transaction{
		ID:     s.state.NextID(),
		ItemID: item.ID,
		Amount: item.Price,
		Date:   time.Now(),
	}

	flushErr := s.state.AppendTransaction(*tx)
	warnDegraded("create_transaction", flushErr)
	return tx, nil
}

// ListTransactions returns the history newest-first with each entry's item
// name resolved. Orphaned entries fall back to the unknown-item sentinel.
func (s *paymentService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[TransactionEntry], error) {
	page.Defaults()

	items, transactions := s.state.Snapshot()
	nameByID := make(map[int64]string, len(items))
	for _, item := range items {
		nameByID[item.ID] = item.Name
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	entries := make([]TransactionEntry, len(transactions))
	for i, tx := range transactions {
		name, ok := nameByID[tx.ItemID]
		if !ok {
			name = models.UnknownItemName
		}
		entries[i] = TransactionEntry{
			ID:       tx.ID,
			ItemID:   tx.ItemID,
			ItemName: name,
			Amount:   tx.Amount,
			Date:     tx.Date.Format(time.RFC3339),
		}
	}

	result := pagination.NewPageResponse(
		pagination.Slice(entries, page),
		page.Page, page.PageSize, int64(len(entries)),
	)
	return &result, nil
}

// PaymentQR renders the QR image displayed for a recorded payment.
func (s *paymentService) PaymentQR(transactionID int64) ([]byte, error) {
	var tx *models.Transaction
	for _, candidate := range s.state.Transactions() {
		if candidate.ID == transactionID {
			found := candidate
			tx = &found
			break
		}
	}
	if tx == nil {
		return nil, apperrors.ErrTransactionNotFound
	}

	profile := s.state.Profile()
	payload := fmt.Sprintf("Payment of %.2f for %s - %d", tx.Amount, profile.Name, tx.ID)

	png, err := s.renderer.Render(payload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return png, nil
}
