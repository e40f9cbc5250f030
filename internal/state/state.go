// Package state owns the authoritative in-memory collections for the
// running session: the item catalog, the transaction log, the profile, and
// the logged-in user.
//
// The collections are loaded from the snapshot store exactly once, when the
// State is constructed, and every mutation writes the affected snapshot back
// before the mutating call returns. A mutex serializes mutations so that
// state change and persistence are always observed as a unit, mirroring the
// one-operation-at-a-time model the rest of the system assumes.
//
// A failed flush does not roll anything back: the in-memory state stays
// authoritative for the rest of the session and the failure is surfaced as a
// degraded-persistence error the caller can warn about.
package state

import (
	"fmt"
	"sync"

	apperrors "posada/internal/errors"
	"posada/internal/models"
	"posada/internal/store"

	"github.com/bwmarrin/snowflake"
)

// State is the single owner of the domain collections. All access goes
// through its methods; callers receive copies, never the backing slices.
type State struct {
	mu    sync.Mutex
	store store.Store
	node  *snowflake.Node

	items        []models.Item
	transactions []models.Transaction
	profile      *models.Profile // nil until a profile has been saved
	session      *models.Session // nil when logged out

	lastFlushErr error
}

// New constructs a State and loads every snapshot from the store. Absent or
// unparsable snapshots leave the corresponding collection empty; only a
// store that cannot be read at all fails construction.
func New(st store.Store) (*State, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create id node: %w", err)
	}

	s := &State{store: st, node: node}

	if _, err := st.Load(store.KeyItems, &s.items); err != nil {
		return nil, err
	}
	if _, err := st.Load(store.KeyTransactions, &s.transactions); err != nil {
		return nil, err
	}
	var profile models.Profile
	found, err := st.Load(store.KeyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if found {
		s.profile = &profile
	}
	var session models.Session
	found, err = st.Load(store.KeyCurrentUser, &session)
	if err != nil {
		return nil, err
	}
	if found && session.Username != "" {
		s.session = &session
	}

	return s, nil
}

// NextID returns a fresh unique identifier. Snowflake IDs are time-ordered,
// so insertion order stays chronological, and the per-millisecond sequence
// removes the collision window a clock-derived id would have.
func (s *State) NextID() int64 {
	return s.node.Generate().Int64()
}

// Items returns a copy of the item catalog in insertion order.
func (s *State) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Item(nil), s.items...)
}

// Transactions returns a copy of the transaction log in insertion
// (chronological) order.
func (s *State) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Snapshot returns consistent copies of both collections, taken under a
// single lock, for the derived-view aggregators.
func (s *State) Snapshot() (items []models.Item, transactions []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Item(nil), s.items...), append([]models.Transaction(nil), s.transactions...)
}

// Profile returns the saved profile, or the defaults when none was saved.
func (s *State) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.DefaultProfile()
	}
	return *s.profile
}

// Session returns the current session, or nil when logged out.
func (s *State) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	sess := *s.session
	return &sess
}

// UpdateItems applies fn to the item catalog and flushes the result. The
// mutation is kept even when the flush fails; the returned error is then a
// degraded-persistence AppError.
func (s *State) UpdateItems(fn func(items []models.Item) []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = fn(s.items)
	return s.flush(store.KeyItems, s.items)
}

// AppendTransaction appends to the transaction log and flushes it.
// Transactions are append-only; there is no update or delete path.
func (s *State) AppendTransaction(tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
	return s.flush(store.KeyTransactions, s.transactions)
}

// SetProfile replaces the profile wholesale and flushes it.
func (s *State) SetProfile(p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
	return s.flush(store.KeyProfile, p)
}

// SetSession records the logged-in user and flushes it.
func (s *State) SetSession(sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &sess
	return s.flush(store.KeyCurrentUser, sess)
}

// ClearSession logs out and removes the persisted session.
func (s *State) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.store.Delete(store.KeyCurrentUser); err != nil {
		s.lastFlushErr = err
		return apperrors.Wrap(apperrors.ErrPersistDegraded, err)
	}
	s.lastFlushErr = nil
	return nil
}

// ResetAll clears the catalog, the transaction log, and the profile, and
// deletes their persisted snapshots. The session survives a reset so the
// terminal stays logged in. Irreversible; confirmation is the caller's job.
func (s *State) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.transactions = nil
	s.profile = nil

	var firstErr error
	for _, key := range []string{store.KeyItems, store.KeyTransactions, store.KeyProfile} {
		if err := s.store.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		s.lastFlushErr = firstErr
		return apperrors.Wrap(apperrors.ErrPersistDegraded, firstErr)
	}
	s.lastFlushErr = nil
	return nil
}

// FlushErr returns the error from the most recent flush attempt, or nil.
// A non-nil value means the session is running in degraded mode: changes
// live in memory but may not survive a restart.
func (s *State) FlushErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFlushErr
}

// flush persists one snapshot. Callers must hold s.mu.
func (s *State) flush(key string, v any) error {
	if err := s.store.Save(key, v); err != nil {
		s.lastFlushErr = err
		return apperrors.Wrap(apperrors.ErrPersistDegraded, err)
	}
	s.lastFlushErr = nil
	return nil
}
