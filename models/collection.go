package models

import "fmt"

// Collection identifies one of the logical data sets kept in sync between
// the local cache and the remote document store. Each collection maps to a
// pair of local cache keys (one per mode) and one remote document addressed
// by (collection, userID).
type Collection string

const (
	// CollectionBudgets holds the user's budget goals.
	CollectionBudgets Collection = "budgets"

	// CollectionTransactions holds spending records logged against budgets.
	CollectionTransactions Collection = "transactions"

	// CollectionNotifications holds in-app notification messages.
	CollectionNotifications Collection = "notifications"

	// CollectionPreferences holds the user preference object (chart theme).
	// Unlike the list collections it stores a single object, not a list.
	CollectionPreferences Collection = "userPreferences"
)

// ListCollections enumerates the collections whose documents contain a list
// of records. These are the collections warmed by a bulk load after login and
// wiped by the destructive reset when switching into offline mode.
var ListCollections = []Collection{
	CollectionBudgets,
	CollectionTransactions,
	CollectionNotifications,
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionBudgets, CollectionTransactions, CollectionNotifications, CollectionPreferences:
		return true
	}
	return false
}

// CacheKey returns the local cache key holding the replica of c for the
// given mode. Offline replicas live under keys distinct from the online
// ones so the two modes remain disjoint data sets.
func (c Collection) CacheKey(mode Mode) string {
	if c == CollectionPreferences {
		if mode.IsOffline() {
			return "offlineChartTheme"
		}
		return "onlineChartTheme"
	}

	if mode.IsOffline() {
		switch c {
		case CollectionBudgets:
			return "offlineBudgets"
		case CollectionTransactions:
			return "offlineTransactions"
		case CollectionNotifications:
			return "offlineNotifications"
		}
	}
	return string(c)
}

// ListField returns the name of the document field that carries the
// collection's payload in the remote document store
// (e.g. {"budgets": [...]}, {"chartTheme": "..."}).
func (c Collection) ListField() string {
	if c == CollectionPreferences {
		return "chartTheme"
	}
	return string(c)
}

// ParseCollection converts a string into a [Collection] or reports an error
// for unknown names.
func ParseCollection(s string) (Collection, error) {
	c := Collection(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown collection %q", s)
	}
	return c, nil
}
