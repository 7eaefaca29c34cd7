package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// bucketReplicas is the single bucket holding every cache key: replica
// documents, the mode flag, the session record, and the sync queue.
var bucketReplicas = []byte("replicas")

type boltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) a bbolt database file at path and returns
// a [Store] backed by it. The parent directory is created when missing.
func NewBoltStore(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketReplicas)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketReplicas).Get([]byte(key))
		if raw == nil {
			return nil
		}
		value = string(raw)
		ok = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("get cache key %q: %w", key, err)
	}

	return value, ok, nil
}

func (s *boltStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReplicas).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set cache key %q: %w", key, err)
	}
	return nil
}

func (s *boltStore) Remove(_ context.Context, keys ...string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReplicas)
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("delete cache key %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove cache keys: %w", err)
	}
	return nil
}

func (s *boltStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
