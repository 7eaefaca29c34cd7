// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a snapshot of a completed response used by the logging
// middleware after the downstream handler returned: status code, body size,
// and the raw bytes of the last Write call.
type responseData struct {
	status int
	size   int

	// body holds only the slice passed to the most recent Write call, not a
	// concatenation of all writes.
	body []byte
}

// responseWriter decorates [http.ResponseWriter] to record the status code
// and body size without buffering the full response. WriteHeader is
// forwarded to the underlying writer at most once; later calls are ignored,
// matching the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool

	// size accumulates bytes written across all Write calls.
	size int

	// body is replaced on every Write with the slice of that call.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200 header
// first when none was written yet, as the stdlib response writer does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
