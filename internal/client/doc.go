// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the local cache, the remote store adapter, the client services,
// the command-line surface, and the background queue drain into a single
// process lifecycle.
package client
