package models

import "encoding/json"

// SetDocumentRequest carries a full-document overwrite for one collection.
// When Merge is true the server keeps fields that the request leaves unset
// instead of replacing the whole document.
type SetDocumentRequest struct {
	// Document is the new document content.
	Document Document `json:"document"`

	// Merge requests field-level merge semantics instead of replacement.
	Merge bool `json:"merge,omitempty"`
}

// UpdateFieldRequest carries an element-level update of a single document
// field (e.g. replacing the whole "budgets" list or the "chartTheme" value).
type UpdateFieldRequest struct {
	// Field is the document field path to update.
	Field string `json:"field"`

	// Value is the JSON-encoded new field value.
	Value json.RawMessage `json:"value"`
}

// ArrayElementRequest carries a single list element for the array-union and
// array-remove document primitives.
type ArrayElementRequest struct {
	// Field is the document list field the element belongs to.
	Field string `json:"field"`

	// Element is the JSON-encoded list element to add or remove.
	Element json.RawMessage `json:"element"`
}
