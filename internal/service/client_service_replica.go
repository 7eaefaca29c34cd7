package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/models"
)

type replicaSynchronizer struct {
	cache  cache.Store
	remote adapter.RemoteStore

	// mu guards locks; each entry serializes mutations of one
	// (collection, userID) pair so overlapping callers cannot interleave
	// their read-modify-write cycles.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewReplicaSynchronizer creates the single read/write path between the local
// cache store and the remote document store.
func NewReplicaSynchronizer(cacheStore cache.Store, remote adapter.RemoteStore) ReplicaSynchronizer {
	return &replicaSynchronizer{
		cache:  cacheStore,
		remote: remote,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *replicaSynchronizer) Fetch(ctx context.Context, collection models.Collection, userID int64, mode models.Mode) (models.Document, error) {
	if !collection.Valid() {
		return models.Document{}, fmt.Errorf("%w: collection %q", ErrInvalidDataProvided, collection)
	}

	if mode.IsOffline() {
		return s.readLocal(ctx, collection, mode)
	}

	snap, err := s.remote.GetDocument(ctx, collection, userID)
	if err != nil {
		return models.Document{}, fmt.Errorf("fetch %s from remote: %w", collection, err)
	}
	if !snap.Exists {
		// No remote document yet; the local replica stays as-is so cached
		// data survives until the document is first created.
		return models.Document{}, nil
	}

	if err := s.writeLocal(ctx, collection, mode, snap.Document); err != nil {
		return models.Document{}, fmt.Errorf("refresh %s replica: %w", collection, err)
	}
	return snap.Document, nil
}

func (s *replicaSynchronizer) Mutate(ctx context.Context, collection models.Collection, userID int64, mode models.Mode, fn func(models.Document) (models.Document, error)) error {
	lock := s.lockFor(collection, userID)
	lock.Lock()
	defer lock.Unlock()

	doc, err := s.Fetch(ctx, collection, userID, mode)
	if err != nil {
		return err
	}

	next, err := fn(doc)
	if err != nil {
		return err
	}

	return s.save(ctx, collection, userID, mode, next)
}

func (s *replicaSynchronizer) Append(ctx context.Context, collection models.Collection, userID int64, mode models.Mode, record any) error {
	lock := s.lockFor(collection, userID)
	lock.Lock()
	defer lock.Unlock()

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", collection, err)
	}

	if mode.IsOffline() {
		doc, err := s.readLocal(ctx, collection, mode)
		if err != nil {
			return err
		}
		if err := doc.AppendRecord(collection, raw); err != nil {
			return fmt.Errorf("append %s record: %w", collection, err)
		}
		return s.writeLocal(ctx, collection, mode, doc)
	}

	if err := s.remote.ArrayUnion(ctx, collection, userID, collection.ListField(), raw); err != nil {
		return fmt.Errorf("append %s record to remote: %w", collection, err)
	}

	doc, err := s.readLocal(ctx, collection, mode)
	if err != nil {
		return err
	}
	if err := doc.AppendRecord(collection, raw); err != nil {
		return fmt.Errorf("append %s record: %w", collection, err)
	}
	if err := s.writeLocal(ctx, collection, mode, doc); err != nil {
		return fmt.Errorf("mirror %s replica: %w", collection, err)
	}
	return nil
}

func (s *replicaSynchronizer) Load(ctx context.Context, userID int64) error {
	for _, collection := range models.ListCollections {
		snap, err := s.remote.GetDocument(ctx, collection, userID)
		if err != nil {
			return fmt.Errorf("load %s: %w", collection, err)
		}
		if err := s.writeLocal(ctx, collection, models.ModeOnline, snap.Document); err != nil {
			return fmt.Errorf("warm %s replica: %w", collection, err)
		}
	}
	return nil
}

// save persists a mutated document per mode: offline to the mode-specific
// cache key only, online to the remote store followed by the local mirror.
func (s *replicaSynchronizer) save(ctx context.Context, collection models.Collection, userID int64, mode models.Mode, doc models.Document) error {
	if mode.IsOffline() {
		return s.writeLocal(ctx, collection, mode, doc)
	}

	value, err := doc.FieldValue(collection)
	if err != nil {
		return err
	}
	if err := s.remote.UpdateField(ctx, collection, userID, collection.ListField(), value); err != nil {
		return fmt.Errorf("write %s to remote: %w", collection, err)
	}
	if err := s.writeLocal(ctx, collection, mode, doc); err != nil {
		return fmt.Errorf("mirror %s replica: %w", collection, err)
	}
	return nil
}

func (s *replicaSynchronizer) readLocal(ctx context.Context, collection models.Collection, mode models.Mode) (models.Document, error) {
	raw, ok, err := s.cache.Get(ctx, collection.CacheKey(mode))
	if err != nil {
		return models.Document{}, fmt.Errorf("read %s replica: %w", collection, err)
	}
	if !ok {
		return models.Document{}, nil
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode %s replica: %w", collection, err)
	}
	return doc, nil
}

func (s *replicaSynchronizer) writeLocal(ctx context.Context, collection models.Collection, mode models.Mode, doc models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s replica: %w", collection, err)
	}
	if err := s.cache.Set(ctx, collection.CacheKey(mode), string(raw)); err != nil {
		return fmt.Errorf("write %s replica: %w", collection, err)
	}
	return nil
}

func (s *replicaSynchronizer) lockFor(collection models.Collection, userID int64) *sync.Mutex {
	key := fmt.Sprintf("%s/%d", collection, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
