package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, ForeignKeyViolation, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.ForeignKeyViolation))))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func Test_postgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("plain")))
	assert.Empty(t, postgresError(nil))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, ForeignKeyViolation, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})))
	assert.Equal(t, Unclassified, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.UniqueViolation)))
}

func Test_sqliteDSN(t *testing.T) {
	tests := []struct {
		raw      string
		wantDSN  string
		wantPath string
	}{
		{raw: "sqlite://learnly.db", wantDSN: "learnly.db?_foreign_keys=on", wantPath: "learnly.db"},
		{raw: "sqlite://:memory:", wantDSN: ":memory:?_foreign_keys=on", wantPath: ""},
		{raw: "file:test.db?cache=shared", wantDSN: "file:test.db?cache=shared&_foreign_keys=on", wantPath: "test.db"},
		{raw: "file:mem?mode=memory&_fk=1", wantDSN: "file:mem?mode=memory&_fk=1", wantPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dsn, path := sqliteDSN(tt.raw)
			assert.Equal(t, tt.wantDSN, dsn)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func Test_isSQLiteDSN(t *testing.T) {
	assert.True(t, isSQLiteDSN("sqlite://x.db"))
	assert.True(t, isSQLiteDSN("file:x.db"))
	assert.False(t, isSQLiteDSN("postgres://localhost/learnly"))
}
