package store

import "github.com/MKhiriev/go-budget-sync/internal/logger"

// Storages bundles every repository the server works with.
type Storages struct {
	Users     UserRepository
	Documents DocumentRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:     NewUserRepository(db, log),
		Documents: NewDocumentRepository(db, log),
	}
}
