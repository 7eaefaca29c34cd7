package models

import "time"

// DefaultCategory is substituted for budgets that were saved without a
// category so that aggregation always has a bucket to sum into.
const DefaultCategory = "Uncategorized"

// Budget represents a single budgeting goal created by the user.
// It is the primary record of the budgets collection, stored as a list
// element both in the remote document and in the local replica.
type Budget struct {
	// ID is the client-generated unique identifier of the budget (UUID).
	ID string `json:"id"`

	// Name is the human-readable display name of the budget (e.g. "Rent").
	Name string `json:"name"`

	// Goal is the target amount the user plans to spend or save.
	Goal float64 `json:"goal"`

	// AmountSpent is the amount logged against the goal so far.
	// It never exceeds Goal; the add-funds guard rejects overshooting
	// mutations before any store is touched.
	AmountSpent float64 `json:"amountSpent"`

	// Category is an optional grouping label. An empty value is treated as
	// [DefaultCategory] during aggregation.
	Category string `json:"category,omitempty"`

	// Icon is the identifier of the icon chosen for the budget.
	Icon string `json:"icon,omitempty"`

	// NotifyOnCompletion indicates whether a notification record should be
	// created once the budget reaches its goal.
	NotifyOnCompletion bool `json:"notifyOnCompletion"`

	// CreatedAt is the timestamp when the budget was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Completed reports whether the budget has reached its goal.
// The boundary is inclusive: amountSpent == goal counts as completed.
func (b Budget) Completed() bool {
	return b.AmountSpent >= b.Goal
}

// Remaining returns the amount still available before the goal is reached.
func (b Budget) Remaining() float64 {
	return b.Goal - b.AmountSpent
}

// CategoryLabel returns the budget's category, substituting
// [DefaultCategory] when none was set.
func (b Budget) CategoryLabel() string {
	if b.Category == "" {
		return DefaultCategory
	}
	return b.Category
}

// CategoryTotal is the aggregation of all budgets sharing one category:
// the sum of their goals and of their spent amounts.
type CategoryTotal struct {
	// Category is the shared category label.
	Category string `json:"category"`

	// Goal is the summed goal of every budget in the category.
	Goal float64 `json:"goal"`

	// AmountSpent is the summed spent amount of every budget in the category.
	AmountSpent float64 `json:"amountSpent"`
}
