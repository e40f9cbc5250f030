// Package store provides the persisted key-value snapshot layer.
//
// Each logical key ("items", "transactions", "hotelProfile", "currentUser")
// maps to one JSON-serialized snapshot of the corresponding in-memory
// collection. The layer is deliberately forgiving: an absent key and an
// unparsable value both read back as "not found" so that a corrupted store
// degrades to defaults instead of failing startup.
package store

// Logical keys for the persisted snapshots.
const (
	KeyCurrentUser  = "currentUser"
	KeyItems        = "items"
	KeyTransactions = "transactions"
	KeyProfile      = "hotelProfile"
)

// Store is the contract between the Domain State and persistence.
type Store interface {
	// Load unmarshals the snapshot stored under key into v. It returns
	// found=false, with no error, when the key is absent or the stored
	// value does not parse.
	Load(key string, v any) (found bool, err error)

	// Save marshals v and writes it under key, replacing any previous
	// snapshot. A failed save is reportable but non-fatal: the caller's
	// in-memory state remains authoritative.
	Save(key string, v any) error

	// Delete removes the snapshot under key. Deleting an absent key is a
	// no-op.
	Delete(key string) error
}
