// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization-header parsing errors used by the auth middleware; matched
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request carries no Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into scheme
	// and token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
