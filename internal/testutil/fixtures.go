package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"posada/internal/models"
	"posada/internal/state"
	"posada/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SetupTestState creates a State backed by a fresh in-memory store.
func SetupTestState(t *testing.T) *state.State {
	t.Helper()

	st, err := state.New(SetupTestStore(t))
	if err != nil {
		t.Fatalf("failed to create test state: %v", err)
	}
	return st
}

// CreateTestItem adds a catalog item with a unique name.
func CreateTestItem(t *testing.T, st *state.State, price float64, category models.Category) models.Item {
	t.Helper()
	return CreateTestItemWithName(t, st, fmt.Sprintf("Test Item %d", nextID()), price, category)
}

// CreateTestItemWithName adds a catalog item with the given name.
func CreateTestItemWithName(t *testing.T, st *state.State, name string, price float64, category models.Category) models.Item {
	t.Helper()

	item := models.Item{
		ID:       st.NextID(),
		Name:     name,
		Price:    price,
		Category: category,
		Image:    models.DefaultItemImage,
	}
	if err := st.UpdateItems(func(items []models.Item) []models.Item {
		return append(items, item)
	}); err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestTransaction records a payment for the given item at the given
// time.
func CreateTestTransaction(t *testing.T, st *state.State, itemID int64, amount float64, date time.Time) models.Transaction {
	t.Helper()

	tx := models.Transaction{
		ID:     st.NextID(),
		ItemID: itemID,
		Amount: amount,
		Date:   date,
	}
	if err := st.AppendTransaction(tx); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// FailingStore wraps a store and fails every write once enabled. Reads pass
// through so state construction still works.
type FailingStore struct {
	Inner store.Store
	Fail  bool
}

// Load delegates to the wrapped store.
func (f *FailingStore) Load(key string, v any) (bool, error) {
	return f.Inner.Load(key, v)
}

// Save fails when Fail is set, otherwise delegates.
func (f *FailingStore) Save(key string, v any) error {
	if f.Fail {
		return fmt.Errorf("save %s: disk full", key)
	}
	return f.Inner.Save(key, v)
}

// Delete fails when Fail is set, otherwise delegates.
func (f *FailingStore) Delete(key string) error {
	if f.Fail {
		return fmt.Errorf("delete %s: disk full", key)
	}
	return f.Inner.Delete(key)
}
