package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/models"
)

type syncQueue struct {
	cache  cache.Store
	remote adapter.RemoteStore

	// mu serializes read-modify-write cycles over the queue key.
	mu sync.Mutex
}

// NewSyncQueue creates a SyncQueue persisted under the "syncQueue" cache key
// and replayed against the given remote store.
func NewSyncQueue(cacheStore cache.Store, remote adapter.RemoteStore) SyncQueue {
	return &syncQueue{cache: cacheStore, remote: remote}
}

func (q *syncQueue) Enqueue(ctx context.Context, action models.SyncAction) error {
	if !action.Kind.Valid() {
		return fmt.Errorf("%w: action kind %q", ErrInvalidDataProvided, action.Kind)
	}
	if !action.Collection.Valid() {
		return fmt.Errorf("%w: collection %q", ErrInvalidDataProvided, action.Collection)
	}
	if len(action.Record) == 0 {
		return fmt.Errorf("%w: empty action record", ErrInvalidDataProvided)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.read(ctx)
	if err != nil {
		return err
	}
	actions = append(actions, action)
	return q.write(ctx, actions)
}

func (q *syncQueue) Pending(ctx context.Context) ([]models.SyncAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.read(ctx)
}

func (q *syncQueue) Drain(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.read(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for i, action := range actions {
		if err := q.replay(ctx, action); err != nil {
			errs = append(errs, fmt.Errorf("replay entry %d (%s %s): %w", i, action.Kind, action.Collection, err))
		}
	}

	// The queue is cleared even when some replays failed; the joined error
	// below carries the failures to the caller.
	if err := q.cache.Remove(ctx, cacheKeyQueue); err != nil {
		errs = append(errs, fmt.Errorf("clear sync queue: %w", err))
	}
	return errors.Join(errs...)
}

// replay applies one queued action to the remote store. Add maps to the
// array-union primitive, Delete to array element removal, and Update to a
// full overwrite of the list field after applying the record by id.
func (q *syncQueue) replay(ctx context.Context, action models.SyncAction) error {
	field := action.Collection.ListField()

	switch action.Kind {
	case models.SyncActionAdd:
		return q.remote.ArrayUnion(ctx, action.Collection, action.UserID, field, action.Record)

	case models.SyncActionDelete:
		return q.remote.ArrayRemove(ctx, action.Collection, action.UserID, field, action.Record)

	case models.SyncActionUpdate:
		if action.Collection == models.CollectionPreferences {
			return q.remote.UpdateField(ctx, action.Collection, action.UserID, field, action.Record)
		}

		snap, err := q.remote.GetDocument(ctx, action.Collection, action.UserID)
		if err != nil {
			return fmt.Errorf("read remote document: %w", err)
		}
		doc := snap.Document
		if err := doc.ReplaceRecord(action.Collection, action.Record); err != nil {
			return err
		}
		value, err := doc.FieldValue(action.Collection)
		if err != nil {
			return err
		}
		return q.remote.UpdateField(ctx, action.Collection, action.UserID, field, value)

	default:
		return fmt.Errorf("%w: action kind %q", ErrInvalidDataProvided, action.Kind)
	}
}

func (q *syncQueue) read(ctx context.Context) ([]models.SyncAction, error) {
	raw, ok, err := q.cache.Get(ctx, cacheKeyQueue)
	if err != nil {
		return nil, fmt.Errorf("read sync queue: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var actions []models.SyncAction
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		return nil, fmt.Errorf("decode sync queue: %w", err)
	}
	return actions, nil
}

func (q *syncQueue) write(ctx context.Context, actions []models.SyncAction) error {
	raw, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("encode sync queue: %w", err)
	}
	if err := q.cache.Set(ctx, cacheKeyQueue, string(raw)); err != nil {
		return fmt.Errorf("write sync queue: %w", err)
	}
	return nil
}
