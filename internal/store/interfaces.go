package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields (UserID, CreatedAt) populated.
	// Returns ErrLoginAlreadyExists when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin retrieves the user whose login matches.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// DocumentRepository is the data-access contract for per-user collection
// documents: one row per (userID, collection) holding the JSON-encoded
// document body.
type DocumentRepository interface {
	// Get reads the document. A missing row is not an error: the returned
	// snapshot carries Exists == false.
	Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error)

	// Set overwrites the document, creating the row when absent. With merge
	// set, fields absent from doc keep their stored values.
	Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error

	// UpdateField replaces a single document field with the decoded value,
	// creating the document when absent.
	UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error

	// ArrayUnion appends element to the collection's list unless a record
	// with the same id is already present, creating the document when
	// absent.
	ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error

	// ArrayRemove deletes every list element sharing the element's id.
	// Removing from a missing document is a no-op.
	ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error
}
