package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-budget-sync/internal/utils"
)

// hashHeader carries the HMAC-SHA256 integrity hash of the request body,
// hex-encoded. The client adapter computes it over the marshalled request
// payload with the shared hash key.
const hashHeader = "HashSHA256"

// checkBodyHash verifies the request body against the HashSHA256 header.
// Requests without the header pass through unchanged; a present but wrong
// hash is rejected with 400 before the body reaches the handler.
func (h *Handler) checkBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestHash := r.Header.Get(hashHeader)
		if requestHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkBodyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if hashedBody != requestHash {
			h.logger.Error().Str("func", "*Handler.checkBodyHash").
				Str("hash from request", requestHash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkBodyHash").
			Str("hash from request", requestHash).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
