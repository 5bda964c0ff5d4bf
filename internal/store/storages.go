package store

import "github.com/MKhiriev/go-employee-catalog/internal/logger"

type Storages struct {
	JournalRepository JournalRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		JournalRepository: NewJournalRepository(db, logger),
	}
}
