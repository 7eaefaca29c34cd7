package models

import (
	"encoding/json"
	"fmt"
)

// Document is the value stored in the remote document store for one
// (collection, userID) pair. Exactly one field group is populated depending
// on the collection: one of the record lists, or the chart theme string for
// the preferences collection. The same shape is mirrored into the local
// replica on every write-through refresh.
type Document struct {
	Budgets       []Budget       `json:"budgets,omitempty"`
	Transactions  []Transaction  `json:"transactions,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	ChartTheme    string         `json:"chartTheme,omitempty"`
}

// DocumentSnapshot is the result of reading a remote document: whether the
// document exists at all, and its decoded content when it does. A missing
// document is not an error; callers resolve it to an empty value.
type DocumentSnapshot struct {
	Exists   bool
	Document Document
}

// IsEmpty reports whether the document carries no records and no theme.
func (d Document) IsEmpty() bool {
	return len(d.Budgets) == 0 &&
		len(d.Transactions) == 0 &&
		len(d.Notifications) == 0 &&
		d.ChartTheme == ""
}

// FieldValue returns the JSON encoding of the document field carrying
// collection c. List fields are encoded as arrays even when nil, so a
// full-field overwrite never writes "null" to the remote store.
func (d Document) FieldValue(c Collection) (json.RawMessage, error) {
	var v any
	switch c {
	case CollectionBudgets:
		if d.Budgets == nil {
			d.Budgets = []Budget{}
		}
		v = d.Budgets
	case CollectionTransactions:
		if d.Transactions == nil {
			d.Transactions = []Transaction{}
		}
		v = d.Transactions
	case CollectionNotifications:
		if d.Notifications == nil {
			d.Notifications = []Notification{}
		}
		v = d.Notifications
	case CollectionPreferences:
		v = d.ChartTheme
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s field: %w", c, err)
	}
	return raw, nil
}

// SetField replaces the document field named field with the decoded value.
// The only valid field per collection is its list field (or "chartTheme" for
// preferences); anything else is rejected.
func (d *Document) SetField(c Collection, field string, value json.RawMessage) error {
	if field != c.ListField() {
		return fmt.Errorf("unknown field %q for collection %q", field, c)
	}

	switch c {
	case CollectionBudgets:
		d.Budgets = nil
		if err := json.Unmarshal(value, &d.Budgets); err != nil {
			return fmt.Errorf("decode budgets field: %w", err)
		}
	case CollectionTransactions:
		d.Transactions = nil
		if err := json.Unmarshal(value, &d.Transactions); err != nil {
			return fmt.Errorf("decode transactions field: %w", err)
		}
	case CollectionNotifications:
		d.Notifications = nil
		if err := json.Unmarshal(value, &d.Notifications); err != nil {
			return fmt.Errorf("decode notifications field: %w", err)
		}
	case CollectionPreferences:
		if err := json.Unmarshal(value, &d.ChartTheme); err != nil {
			return fmt.Errorf("decode chartTheme field: %w", err)
		}
	default:
		return fmt.Errorf("unknown collection %q", c)
	}
	return nil
}

// AppendRecord decodes record as an element of collection c and appends it to
// the matching list, unless a record with the same id is already present
// (union semantics). The preferences collection has no record list and is
// rejected.
func (d *Document) AppendRecord(c Collection, record json.RawMessage) error {
	id, err := recordID(record)
	if err != nil {
		return err
	}

	switch c {
	case CollectionBudgets:
		var b Budget
		if err := json.Unmarshal(record, &b); err != nil {
			return fmt.Errorf("decode budget record: %w", err)
		}
		if !containsID(budgetIDs(d.Budgets), id) {
			d.Budgets = append(d.Budgets, b)
		}
	case CollectionTransactions:
		var t Transaction
		if err := json.Unmarshal(record, &t); err != nil {
			return fmt.Errorf("decode transaction record: %w", err)
		}
		if !containsID(transactionIDs(d.Transactions), id) {
			d.Transactions = append(d.Transactions, t)
		}
	case CollectionNotifications:
		var n Notification
		if err := json.Unmarshal(record, &n); err != nil {
			return fmt.Errorf("decode notification record: %w", err)
		}
		if !containsID(notificationIDs(d.Notifications), id) {
			d.Notifications = append(d.Notifications, n)
		}
	default:
		return fmt.Errorf("collection %q has no record list", c)
	}
	return nil
}

// ReplaceRecord decodes record as an element of collection c and replaces the
// list element sharing its id. A record whose id is not present is appended,
// so replaying an update against a list that never saw the create still
// converges.
func (d *Document) ReplaceRecord(c Collection, record json.RawMessage) error {
	id, err := recordID(record)
	if err != nil {
		return err
	}

	switch c {
	case CollectionBudgets:
		var b Budget
		if err := json.Unmarshal(record, &b); err != nil {
			return fmt.Errorf("decode budget record: %w", err)
		}
		for i := range d.Budgets {
			if d.Budgets[i].ID == id {
				d.Budgets[i] = b
				return nil
			}
		}
		d.Budgets = append(d.Budgets, b)
	case CollectionTransactions:
		var t Transaction
		if err := json.Unmarshal(record, &t); err != nil {
			return fmt.Errorf("decode transaction record: %w", err)
		}
		for i := range d.Transactions {
			if d.Transactions[i].ID == id {
				d.Transactions[i] = t
				return nil
			}
		}
		d.Transactions = append(d.Transactions, t)
	case CollectionNotifications:
		var n Notification
		if err := json.Unmarshal(record, &n); err != nil {
			return fmt.Errorf("decode notification record: %w", err)
		}
		for i := range d.Notifications {
			if d.Notifications[i].ID == id {
				d.Notifications[i] = n
				return nil
			}
		}
		d.Notifications = append(d.Notifications, n)
	default:
		return fmt.Errorf("collection %q has no record list", c)
	}
	return nil
}

// RemoveRecord deletes from collection c's list every element sharing the
// record's id. Removing an absent record is a no-op.
func (d *Document) RemoveRecord(c Collection, record json.RawMessage) error {
	id, err := recordID(record)
	if err != nil {
		return err
	}

	switch c {
	case CollectionBudgets:
		kept := d.Budgets[:0]
		for _, b := range d.Budgets {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		d.Budgets = kept
	case CollectionTransactions:
		kept := d.Transactions[:0]
		for _, t := range d.Transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		d.Transactions = kept
	case CollectionNotifications:
		kept := d.Notifications[:0]
		for _, n := range d.Notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		d.Notifications = kept
	default:
		return fmt.Errorf("collection %q has no record list", c)
	}
	return nil
}

// recordID extracts the "id" field shared by every list record type.
func recordID(record json.RawMessage) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(record, &probe); err != nil {
		return "", fmt.Errorf("decode record id: %w", err)
	}
	if probe.ID == "" {
		return "", fmt.Errorf("record has no id")
	}
	return probe.ID, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func budgetIDs(list []Budget) []string {
	ids := make([]string, 0, len(list))
	for _, b := range list {
		ids = append(ids, b.ID)
	}
	return ids
}

func transactionIDs(list []Transaction) []string {
	ids := make([]string, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	return ids
}

func notificationIDs(list []Notification) []string {
	ids := make([]string, 0, len(list))
	for _, n := range list {
		ids = append(ids, n.ID)
	}
	return ids
}
