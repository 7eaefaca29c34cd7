package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
// Each (user_id, collection) pair owns one row in the "documents" table whose
// data column holds the JSON-encoded document body. Element-level operations
// are read-modify-write cycles executed inside a transaction.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *documentRepository) Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
	snap, err := r.get(ctx, r.DB.DB, userID, collection)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Get").
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Msg("failed to read document")
		return models.DocumentSnapshot{}, err
	}
	return snap, nil
}

func (r *documentRepository) Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error {
	return r.update(ctx, userID, collection, func(current models.DocumentSnapshot) (models.Document, bool, error) {
		if !merge {
			return doc, true, nil
		}

		merged := current.Document
		if err := mergo.Merge(&merged, doc, mergo.WithOverride); err != nil {
			return models.Document{}, false, fmt.Errorf("merge document: %w", err)
		}
		return merged, true, nil
	})
}

func (r *documentRepository) UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error {
	return r.update(ctx, userID, collection, func(current models.DocumentSnapshot) (models.Document, bool, error) {
		doc := current.Document
		if err := doc.SetField(collection, field, value); err != nil {
			return models.Document{}, false, err
		}
		return doc, true, nil
	})
}

func (r *documentRepository) ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	return r.update(ctx, userID, collection, func(current models.DocumentSnapshot) (models.Document, bool, error) {
		doc := current.Document
		if err := doc.AppendRecord(collection, element); err != nil {
			return models.Document{}, false, err
		}
		return doc, true, nil
	})
}

func (r *documentRepository) ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	return r.update(ctx, userID, collection, func(current models.DocumentSnapshot) (models.Document, bool, error) {
		if !current.Exists {
			// Removing from a missing document is a no-op.
			return models.Document{}, false, nil
		}

		doc := current.Document
		if err := doc.RemoveRecord(collection, element); err != nil {
			return models.Document{}, false, err
		}
		return doc, true, nil
	})
}

// update runs one read-modify-write cycle in a transaction: the current
// snapshot is passed to fn, and the returned document is upserted when fn's
// write flag is set.
func (r *documentRepository) update(ctx context.Context, userID int64, collection models.Collection, fn func(models.DocumentSnapshot) (models.Document, bool, error)) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.update").
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.get(ctx, tx, userID, collection)
	if err != nil {
		return err
	}

	next, write, err := fn(current)
	if err != nil {
		return err
	}
	if !write {
		return nil
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query, args, err := buildUpsertDocument(userID, collection, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.update").
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Msg("failed to upsert document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// querier covers both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *documentRepository) get(ctx context.Context, q querier, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
	query, args, err := buildSelectDocument(userID, collection)
	if err != nil {
		return models.DocumentSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	if err := q.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DocumentSnapshot{}, nil
		}
		return models.DocumentSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return models.DocumentSnapshot{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return models.DocumentSnapshot{Exists: true, Document: doc}, nil
}
