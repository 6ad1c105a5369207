package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/migrations"
)

var (
	postgresStatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteStatementBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// DB is a connection pool bound to one SQL dialect. The statement builder
// emits placeholders in the dialect's format and the error classificator
// translates driver errors into [ErrorClassification] values.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the backend selected by the DSN: "sqlite://" and "file:"
// prefixes open SQLite, everything else is handed to pgx.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isSQLiteDSN(cfg.DSN) {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sqliteStatementBuilder
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = postgresStatementBuilder
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, "file:")
}
