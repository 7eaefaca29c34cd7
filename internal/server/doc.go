// Package server runs the reference document server's HTTP transport:
// startup, OS signal handling, and graceful shutdown.
package server
