// Package config assembles application configuration from environment
// variables, command-line flags, and an optional JSON file, merged in that
// order with later non-zero fields winning.
//
// [GetStructuredConfig] builds the full server-side configuration;
// [GetClientConfig] derives the narrower view the sync client needs (remote
// store address, replica cache path, drain interval).
package config
