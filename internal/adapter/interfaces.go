// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote document store.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]) that talks to the reference server in this repository;
// any backend offering per-user, per-collection documents with get, overwrite,
// field-update, and array element semantics can stand behind the same
// interface.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic access to the remote document store.
// Documents are addressed by (collection, userID); the store offers whole-
// document reads and overwrites plus element-level primitives over list
// fields. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type RemoteStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login, or when resuming a session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given credentials. On success
	// it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// GetDocument reads the document of the given collection for the given
	// user. A missing document is not an error: the returned snapshot
	// carries Exists == false.
	GetDocument(ctx context.Context, collection models.Collection, userID int64) (models.DocumentSnapshot, error)

	// SetDocument overwrites the document of the given collection. When
	// merge is true, fields absent from doc are preserved on the server.
	// Creates the document when it does not exist.
	SetDocument(ctx context.Context, collection models.Collection, userID int64, doc models.Document, merge bool) error

	// UpdateField replaces a single field of the document with the given
	// JSON-encoded value.
	UpdateField(ctx context.Context, collection models.Collection, userID int64, field string, value json.RawMessage) error

	// ArrayUnion appends element to the document's list field unless an
	// equal element is already present. Creates the document when it does
	// not exist, so a first create needs no prior SetDocument.
	ArrayUnion(ctx context.Context, collection models.Collection, userID int64, field string, element json.RawMessage) error

	// ArrayRemove deletes every element equal to the given one from the
	// document's list field. Removing from a missing document is a no-op.
	ArrayRemove(ctx context.Context, collection models.Collection, userID int64, field string, element json.RawMessage) error
}
