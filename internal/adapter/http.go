package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpRemoteStore{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteStore]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [RemoteStore]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token from the response is
// stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [RemoteStore]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token from the response is
// stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// GetDocument implements [RemoteStore]. It GETs
// GET /api/collections/{collection} and decodes the snapshot. userID is
// unused in the HTTP implementation: the server resolves the document owner
// from the bearer token. Requires a valid bearer token.
func (h *httpRemoteStore) GetDocument(ctx context.Context, collection models.Collection, _ int64) (models.DocumentSnapshot, error) {
	resp, err := h.authedRequest(ctx).Get("/api/collections/" + string(collection))
	if err != nil {
		return models.DocumentSnapshot{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentSnapshot{}, err
	}

	var dr models.DocumentResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return models.DocumentSnapshot{}, fmt.Errorf("decode document response: %w", err)
	}

	return models.DocumentSnapshot{Exists: dr.Exists, Document: dr.Document}, nil
}

// SetDocument implements [RemoteStore]. It PUTs the full document to
// PUT /api/collections/{collection}, computing a transport integrity hash
// over the document body. Requires a valid bearer token.
func (h *httpRemoteStore) SetDocument(ctx context.Context, collection models.Collection, _ int64, doc models.Document, merge bool) error {
	req := models.SetDocumentRequest{Document: doc, Merge: merge}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(hashHeader, computeTransportHash(req)).
		SetBody(req).
		Put("/api/collections/" + string(collection))
	if err != nil {
		return fmt.Errorf("set document request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateField implements [RemoteStore]. It PATCHes a single document field
// via PATCH /api/collections/{collection}/field. Requires a valid bearer
// token.
func (h *httpRemoteStore) UpdateField(ctx context.Context, collection models.Collection, _ int64, field string, value json.RawMessage) error {
	req := models.UpdateFieldRequest{Field: field, Value: value}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(hashHeader, computeTransportHash(req)).
		SetBody(req).
		Patch("/api/collections/" + string(collection) + "/field")
	if err != nil {
		return fmt.Errorf("update field request: %w", err)
	}

	return mapHTTPError(resp)
}

// ArrayUnion implements [RemoteStore]. It POSTs the element to
// POST /api/collections/{collection}/array-union. Requires a valid bearer
// token.
func (h *httpRemoteStore) ArrayUnion(ctx context.Context, collection models.Collection, _ int64, field string, element json.RawMessage) error {
	req := models.ArrayElementRequest{Field: field, Element: element}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(hashHeader, computeTransportHash(req)).
		SetBody(req).
		Post("/api/collections/" + string(collection) + "/array-union")
	if err != nil {
		return fmt.Errorf("array union request: %w", err)
	}

	return mapHTTPError(resp)
}

// ArrayRemove implements [RemoteStore]. It POSTs the element to
// POST /api/collections/{collection}/array-remove. Requires a valid bearer
// token.
func (h *httpRemoteStore) ArrayRemove(ctx context.Context, collection models.Collection, _ int64, field string, element json.RawMessage) error {
	req := models.ArrayElementRequest{Field: field, Element: element}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(hashHeader, computeTransportHash(req)).
		SetBody(req).
		Post("/api/collections/" + string(collection) + "/array-remove")
	if err != nil {
		return fmt.Errorf("array remove request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// hashHeader carries the HMAC-SHA256 integrity hash of the request body.
const hashHeader = "HashSHA256"

func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
