package models

import "time"

// Transaction represents a single spending record logged against a budget.
// Transactions are append-only from the UI's point of view; they are stored
// as list elements of the transactions collection.
type Transaction struct {
	// ID is the client-generated unique identifier of the transaction (UUID).
	ID string `json:"id"`

	// BudgetName is the display name of the budget the amount was logged
	// against. The original data model links by name, not by budget ID.
	BudgetName string `json:"budgetName"`

	// Amount is the spent amount recorded by this transaction.
	Amount float64 `json:"amount"`

	// Date is the timestamp when the transaction was logged.
	Date time.Time `json:"date"`
}

// Notification represents a single in-app notification message, e.g. the
// one created when a budget reaches its goal.
type Notification struct {
	// ID is the client-generated unique identifier of the notification (UUID).
	ID string `json:"id"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// CreatedAt is the timestamp when the notification was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Preferences is the user preference object of the userPreferences
// collection. Unlike the list collections it is a single document value.
type Preferences struct {
	// ChartTheme is the colour theme selected for statistics charts.
	ChartTheme string `json:"chartTheme"`
}
