package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ModeResolver owns the persisted offline/online flag: the single piece of
// state deciding which store is authoritative for reads and writes. The flag
// changes only by explicit user action, never from network reachability.
type ModeResolver interface {
	// Mode reads the persisted flag from the local cache. An absent flag
	// resolves to models.ModeOnline.
	Mode(ctx context.Context) (models.Mode, error)

	// SetMode persists the flag. Switching into offline mode performs a
	// destructive reset: local replicas of budgets, transactions, and
	// notifications are removed so the offline session starts from an empty
	// data set. Switching online does not fetch anything by itself; callers
	// trigger a reload via ReplicaSynchronizer.Load.
	// Persistence errors propagate; there is no retry.
	SetMode(ctx context.Context, mode models.Mode) error
}

// ReplicaSynchronizer is the single authoritative read/write path for every
// collection, parameterized by the explicit mode and user identifier. It
// exclusively owns the replica cache keys: no other component reads or
// writes them directly.
type ReplicaSynchronizer interface {
	// Fetch reads the document of the given collection.
	//
	// Offline: the mode-specific cache key is read; an absent key resolves
	// to an empty document and the remote store is never contacted.
	//
	// Online: the remote document is read. When it exists its content is
	// returned and written through to the online cache key; when it does not
	// exist an empty document is returned and the local replica is left
	// untouched.
	Fetch(ctx context.Context, collection models.Collection, userID int64, mode models.Mode) (models.Document, error)

	// Mutate applies fn over the currently known document (read via Fetch
	// semantics) and persists the result: offline to the mode-specific cache
	// key only, online to the remote store (full overwrite of the list
	// field) mirrored into the online cache key. An error returned by fn
	// aborts the mutation before any store is touched.
	//
	// After a successful Mutate a subsequent Fetch in the same mode observes
	// the new value. No guarantee is made about the other mode: the two
	// replicas are disjoint data sets.
	Mutate(ctx context.Context, collection models.Collection, userID int64, mode models.Mode, fn func(models.Document) (models.Document, error)) error

	// Append adds a single record to the collection's list. Online it uses
	// the remote store's array-union primitive, so creating the first record
	// needs no prior document write and avoids a read-modify-write race;
	// the result is mirrored into the online cache key. Offline it appends
	// to the mode-specific replica only.
	Append(ctx context.Context, collection models.Collection, userID int64, mode models.Mode, record any) error

	// Load warms the cache after authentication: for each list collection
	// the remote document is fetched and the online cache key overwritten.
	Load(ctx context.Context, userID int64) error
}

// SyncQueue is the durable FIFO log of mutations recorded while the remote
// store was not being written, replayed against it on demand.
type SyncQueue interface {
	// Enqueue appends action to the persisted queue. The queue key is
	// guarded by an in-process lock; a single client process is assumed.
	Enqueue(ctx context.Context, action models.SyncAction) error

	// Pending returns the queued actions in append order without
	// removing them.
	Pending(ctx context.Context) ([]models.SyncAction, error)

	// Drain replays every queued action against the remote store in append
	// order, then clears the queue. The queue is cleared even when some
	// replays failed; failures are joined into the returned error so the
	// caller still sees them.
	Drain(ctx context.Context) error
}

// BudgetService manages budget goal records through the synchronizer.
type BudgetService interface {
	// Create validates the budget, assigns an ID and creation timestamp when
	// absent, and appends it to the budgets collection. Offline creations
	// are additionally enqueued for deferred replay.
	Create(ctx context.Context, userID int64, mode models.Mode, budget models.Budget) (models.Budget, error)

	// List returns all budgets known to the given mode's replica.
	List(ctx context.Context, userID int64, mode models.Mode) ([]models.Budget, error)

	// AddFunds logs amount against the budget's spent total. An amount that
	// would push the total past the goal is rejected with ErrGoalExceeded
	// before any store mutation. When the mutation completes the budget and
	// the budget asks for it, a completion notification is created.
	AddFunds(ctx context.Context, userID int64, mode models.Mode, budgetID string, amount float64) (models.Budget, error)

	// Delete removes the budget from the collection. Offline deletions are
	// additionally enqueued for deferred replay.
	Delete(ctx context.Context, userID int64, mode models.Mode, budgetID string) error
}

// TransactionService manages spending records through the synchronizer.
type TransactionService interface {
	// Add validates the transaction, assigns an ID and date when absent, and
	// appends it to the transactions collection. Offline additions are
	// enqueued for deferred replay.
	Add(ctx context.Context, userID int64, mode models.Mode, t models.Transaction) (models.Transaction, error)

	// List returns all transactions known to the given mode's replica.
	List(ctx context.Context, userID int64, mode models.Mode) ([]models.Transaction, error)
}

// NotificationService manages in-app notification records.
type NotificationService interface {
	// Notify creates a notification with the given message.
	Notify(ctx context.Context, userID int64, mode models.Mode, message string) (models.Notification, error)

	// List returns all notifications known to the given mode's replica.
	List(ctx context.Context, userID int64, mode models.Mode) ([]models.Notification, error)
}

// PreferencesService manages the user preference object (chart theme).
// The theme is stored per mode, so offline and online sessions keep
// independent selections.
type PreferencesService interface {
	// ChartTheme returns the persisted theme, or an empty string when the
	// user never selected one.
	ChartTheme(ctx context.Context, userID int64, mode models.Mode) (string, error)

	// SetChartTheme persists the theme. Offline changes are enqueued for
	// deferred replay.
	SetChartTheme(ctx context.Context, userID int64, mode models.Mode, theme string) error
}

// StatsService derives spending statistics from the budgets replica.
// Sums are computed with exact decimal arithmetic.
type StatsService interface {
	// CategoryTotals aggregates goal and spent amounts per category,
	// substituting "Uncategorized" for budgets without one. The result is
	// ordered by category name.
	CategoryTotals(ctx context.Context, userID int64, mode models.Mode) ([]models.CategoryTotal, error)

	// ByCompletion splits budgets into active (amountSpent < goal) and
	// completed (amountSpent >= goal, boundary inclusive).
	ByCompletion(ctx context.Context, userID int64, mode models.Mode) (active, completed []models.Budget, err error)
}

// ClientAuthService manages the user's account and the locally persisted
// session record.
type ClientAuthService interface {
	// Register creates a new account on the server, stores the issued token
	// in the adapter, and persists the session in the local cache.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates against the server, stores the issued token in
	// the adapter, and persists the session in the local cache.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Resume restores the persisted session without a network round trip.
	// Returns ErrNotAuthenticated when no session is stored and
	// ErrTokenIsExpired when the stored token's expiry has passed.
	Resume(ctx context.Context) (models.Session, error)

	// Logout removes the persisted session and clears the adapter token.
	Logout(ctx context.Context) error
}

// ClientDrainJob is a background worker that periodically replays the
// deferred sync queue while the client is in online mode.
type ClientDrainJob interface {
	// Start launches the background goroutine. It drains every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
