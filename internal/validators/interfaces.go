// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the record rules shared by both halves of the
// application: the client validates budgets, transactions, and notifications
// before they reach the replica or the sync queue, the server validates the
// same shapes before they reach storage.
//
// The single entry point is the [Validator] interface; NewRecordValidator
// returns the implementation covering every synced record type. Optional
// field names scope a call to a subset of rules, which array-remove uses to
// check only the record ID.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates a single record value. The optional field names
// restrict validation to the named fields; with none given every rule for
// the value's type runs.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
