package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-budget-sync/models"
)

// fakeRemoteStore is an in-memory adapter.RemoteStore for the client service
// tests. By default it keeps one document per collection and applies the
// store primitives against it; individual calls can be overridden via the
// fn fields to simulate failures or canned responses.
type fakeRemoteStore struct {
	mu    sync.Mutex
	token string
	snaps map[models.Collection]models.DocumentSnapshot
	calls []string

	registerFn    func(user models.User) (models.AuthResponse, error)
	loginFn       func(user models.User) (models.AuthResponse, error)
	getDocumentFn func(collection models.Collection, userID int64) (models.DocumentSnapshot, error)
	setDocumentFn func(collection models.Collection, userID int64, doc models.Document, merge bool) error
	updateFieldFn func(collection models.Collection, userID int64, field string, value json.RawMessage) error
	arrayUnionFn  func(collection models.Collection, userID int64, field string, element json.RawMessage) error
	arrayRemoveFn func(collection models.Collection, userID int64, field string, element json.RawMessage) error
}

func newFakeRemoteStore() *fakeRemoteStore {
	return &fakeRemoteStore{snaps: make(map[models.Collection]models.DocumentSnapshot)}
}

func (f *fakeRemoteStore) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeRemoteStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeRemoteStore) Register(_ context.Context, user models.User) (models.AuthResponse, error) {
	f.recordCall("Register")
	if f.registerFn != nil {
		return f.registerFn(user)
	}
	return models.AuthResponse{UserID: 1, Token: "remote-token"}, nil
}

func (f *fakeRemoteStore) Login(_ context.Context, user models.User) (models.AuthResponse, error) {
	f.recordCall("Login")
	if f.loginFn != nil {
		return f.loginFn(user)
	}
	return models.AuthResponse{UserID: 1, Token: "remote-token"}, nil
}

func (f *fakeRemoteStore) GetDocument(_ context.Context, collection models.Collection, userID int64) (models.DocumentSnapshot, error) {
	f.recordCall(fmt.Sprintf("GetDocument(%s)", collection))
	if f.getDocumentFn != nil {
		return f.getDocumentFn(collection, userID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[collection], nil
}

func (f *fakeRemoteStore) SetDocument(_ context.Context, collection models.Collection, userID int64, doc models.Document, merge bool) error {
	f.recordCall(fmt.Sprintf("SetDocument(%s)", collection))
	if f.setDocumentFn != nil {
		return f.setDocumentFn(collection, userID, doc, merge)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[collection] = models.DocumentSnapshot{Exists: true, Document: doc}
	return nil
}

func (f *fakeRemoteStore) UpdateField(_ context.Context, collection models.Collection, userID int64, field string, value json.RawMessage) error {
	f.recordCall(fmt.Sprintf("UpdateField(%s)", collection))
	if f.updateFieldFn != nil {
		return f.updateFieldFn(collection, userID, field, value)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.snaps[collection].Document
	if err := doc.SetField(collection, field, value); err != nil {
		return err
	}
	f.snaps[collection] = models.DocumentSnapshot{Exists: true, Document: doc}
	return nil
}

func (f *fakeRemoteStore) ArrayUnion(_ context.Context, collection models.Collection, userID int64, field string, element json.RawMessage) error {
	f.recordCall(fmt.Sprintf("ArrayUnion(%s)", collection))
	if f.arrayUnionFn != nil {
		return f.arrayUnionFn(collection, userID, field, element)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.snaps[collection].Document
	if err := doc.AppendRecord(collection, element); err != nil {
		return err
	}
	f.snaps[collection] = models.DocumentSnapshot{Exists: true, Document: doc}
	return nil
}

func (f *fakeRemoteStore) ArrayRemove(_ context.Context, collection models.Collection, userID int64, field string, element json.RawMessage) error {
	f.recordCall(fmt.Sprintf("ArrayRemove(%s)", collection))
	if f.arrayRemoveFn != nil {
		return f.arrayRemoveFn(collection, userID, field, element)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.snaps[collection].Document
	if err := doc.RemoveRecord(collection, element); err != nil {
		return err
	}
	f.snaps[collection] = models.DocumentSnapshot{Exists: true, Document: doc}
	return nil
}

func (f *fakeRemoteStore) recordCall(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeRemoteStore) recordedCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemoteStore) setSnapshot(collection models.Collection, doc models.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[collection] = models.DocumentSnapshot{Exists: true, Document: doc}
}

func (f *fakeRemoteStore) snapshot(collection models.Collection) models.DocumentSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[collection]
}
