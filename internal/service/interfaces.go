package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the server-side business layer over the per-user
// document store. One document exists per (user, collection) pair; the
// element-level operations mirror the primitives the client transport
// exposes.
type DocumentService interface {
	// Get returns the document snapshot for the user's collection.
	// A missing document is reported via DocumentSnapshot.Exists, not an error.
	Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error)

	// Set overwrites the document, or merges into it when merge is true.
	Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error

	// UpdateField replaces a single field of the document with value.
	UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error

	// ArrayUnion appends element to the collection's list field unless a
	// record with the same id is already present.
	ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error

	// ArrayRemove drops the record with element's id from the collection's
	// list field. Removing an absent record is a no-op.
	ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validating.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}
