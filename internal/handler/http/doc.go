// Package http is the HTTP transport of the reference document server.
//
// It wires the chi router, the auth and document handlers, and the
// middleware chain that runs before the service layer: trace ID propagation,
// access logging, gzip, request body integrity hashing, method checking, and
// JWT authentication.
package http
