package models

import "encoding/json"

// SyncActionKind tags the variant of a deferred sync action.
type SyncActionKind string

const (
	// SyncActionAdd appends a single new record to the remote list via the
	// store's array-union primitive.
	SyncActionAdd SyncActionKind = "add"

	// SyncActionUpdate replaces the remote record that shares the payload's
	// id, rewriting the full list field.
	SyncActionUpdate SyncActionKind = "update"

	// SyncActionDelete removes the matching element from the remote list.
	SyncActionDelete SyncActionKind = "delete"
)

// Valid reports whether k is one of the known action kinds.
func (k SyncActionKind) Valid() bool {
	switch k {
	case SyncActionAdd, SyncActionUpdate, SyncActionDelete:
		return true
	}
	return false
}

// SyncAction is one entry of the deferred sync queue: a mutation recorded
// while the remote store was not being written, kept durable until a drain
// replays it against the remote document store.
//
// The record payload is kept opaque at the queue level; the replay
// interpreter decodes it per collection when the action is applied.
type SyncAction struct {
	// Kind selects the replay interpretation: add, update, or delete.
	Kind SyncActionKind `json:"kind"`

	// Collection names the remote document the action targets.
	Collection Collection `json:"collection"`

	// UserID is the owner of the targeted document.
	UserID int64 `json:"userId"`

	// Record is the JSON-encoded record the action carries. For add and
	// delete it is the exact list element; for update it is the new record
	// state matched against the remote list by its "id" field.
	Record json.RawMessage `json:"record"`
}
