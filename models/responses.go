package models

// DocumentResponse is the server's answer to a document read. It mirrors
// [DocumentSnapshot] on the wire: Exists distinguishes a genuinely missing
// document from an empty one, so the client can preserve its local replica
// when the remote document was never created.
type DocumentResponse struct {
	// Exists reports whether the document is present in the store.
	Exists bool `json:"exists"`

	// Document is the decoded document content; zero-valued when Exists
	// is false.
	Document Document `json:"document"`
}

// AuthResponse is returned by the register and login endpoints. It carries
// the server-assigned user identifier and the bearer token the client must
// attach to all subsequent document requests.
type AuthResponse struct {
	// UserID is the internal identifier of the authenticated user.
	UserID int64 `json:"userId"`

	// Token is the signed JWT in compact form.
	Token string `json:"token"`
}
