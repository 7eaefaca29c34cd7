package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the JWT bearer token issued to a user on register or login and
// presented on every authenticated document request.
//
// It embeds [jwt.Token] for signing and claim inspection plus
// [jwt.RegisteredClaims] so it can act as the claims target of
// jwt.ParseWithClaims. SignedString is the compact serialized form carried in
// the Authorization header and cached in the client session; UserID is the
// parsed "sub" claim so handlers do not reparse the subject on every use.
// All fields are excluded from JSON: only the compact string ever leaves the
// process.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64. Returns an error when
// the claim is missing, empty, or not numeric.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
