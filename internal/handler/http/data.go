package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// collectionFromRequest resolves the {collection} URL parameter. It writes a
// 404 and returns false when the name is not a known collection.
func collectionFromRequest(w http.ResponseWriter, r *http.Request) (models.Collection, bool) {
	collection, err := models.ParseCollection(chi.URLParam(r, "collection"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "collectionFromRequest").Msg("unknown collection requested")
		http.Error(w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return collection, true
}

// userIDFromRequest retrieves the authenticated user's ID placed into the
// context by the auth middleware. It writes a 401 and returns false when the
// request reached the handler without one.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Str("func", "userIDFromRequest").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection, ok := collectionFromRequest(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	snap, err := h.services.DocumentService.Get(ctx, userID, collection)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Str("collection", string(collection)).Msg("error reading document")
		http.Error(w, "error reading document", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DocumentResponse{
		Exists:   snap.Exists,
		Document: snap.Document,
	}, http.StatusOK)
}

func (h *Handler) setDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection, ok := collectionFromRequest(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SetDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.Set(ctx, userID, collection, req.Document, req.Merge); err != nil {
		log.Err(err).Str("func", "*Handler.setDocument").Str("collection", string(collection)).Msg("error writing document")
		http.Error(w, "error writing document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection, ok := collectionFromRequest(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateField").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.UpdateField(ctx, userID, collection, req.Field, req.Value); err != nil {
		log.Err(err).Str("func", "*Handler.updateField").
			Str("collection", string(collection)).
			Str("field", req.Field).
			Msg("error updating document field")
		http.Error(w, "error updating document field", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) arrayUnion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection, ok := collectionFromRequest(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ArrayElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.arrayUnion").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.ArrayUnion(ctx, userID, collection, req.Element); err != nil {
		log.Err(err).Str("func", "*Handler.arrayUnion").Str("collection", string(collection)).Msg("error adding list element")
		http.Error(w, "error adding list element", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) arrayRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection, ok := collectionFromRequest(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ArrayElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.arrayRemove").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.ArrayRemove(ctx, userID, collection, req.Element); err != nil {
		log.Err(err).Str("func", "*Handler.arrayRemove").Str("collection", string(collection)).Msg("error removing list element")
		http.Error(w, "error removing list element", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
