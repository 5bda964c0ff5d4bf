package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the SQL flavour of a journal database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the journal named by cfg.DSN and applies migrations.
func NewDB(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch DialectOf(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		if strings.TrimSpace(cfg.DSN) == "" {
			return nil, ErrUnsupportedDSN
		}
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// DialectOf picks the dialect for dsn. Anything that is not a PostgreSQL URL
// is treated as a SQLite file.
func DialectOf(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect reports the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel builder with the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
