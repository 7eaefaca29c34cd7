package models

import "fmt"

// Mode selects which store is authoritative for reads and writes:
// the local cache (offline) or the remote document store (online).
//
// The mode is changed only by explicit user action and is never inferred
// from network reachability. It is persisted in the local cache under the
// "offlineMode" key; an absent key resolves to [ModeOnline].
type Mode string

const (
	// ModeOnline makes the remote document store authoritative. Reads go to
	// the remote store and refresh the local replica; writes go to the remote
	// store and are mirrored locally.
	ModeOnline Mode = "online"

	// ModeOffline makes the local cache authoritative. Reads and writes use
	// the mode-specific offline cache keys and never touch the remote store.
	ModeOffline Mode = "offline"
)

// IsOffline reports whether the local cache is the authoritative store.
func (m Mode) IsOffline() bool {
	return m == ModeOffline
}

// Valid reports whether m is one of the two known mode values.
func (m Mode) Valid() bool {
	return m == ModeOnline || m == ModeOffline
}

// ParseMode converts a persisted string into a [Mode].
// An empty string resolves to [ModeOnline]: the flag being unset means the
// user never switched to offline mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOnline, ModeOffline:
		return Mode(s), nil
	case "":
		return ModeOnline, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}
