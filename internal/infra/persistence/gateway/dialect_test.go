package gateway

import (
	"io"
	"log/slog"
	"testing"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementSQL(t *testing.T) {
	stmt := InsertInto("countries", "name", "code")

	assert.Equal(t, "INSERT INTO countries (name, code) VALUES (?, ?)", stmt.SQL(1))
	assert.Equal(t, "INSERT INTO countries (name, code) VALUES (?, ?), (?, ?), (?, ?)", stmt.SQL(3))
	assert.Equal(t, stmt.SQL(1), stmt.SQL(0))

	args := stmt.Args([][]any{{"Canada", "CA"}, {"France", "FR"}})
	assert.Equal(t, []any{"Canada", "CA", "France", "FR"}, args)
}

func TestBuildUpsert(t *testing.T) {
	columns := []string{"sku", "name", "volume"}
	update := []string{"name", "volume"}

	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{
			name:    "mysql",
			dialect: MySQL(),
			want: "INSERT INTO products (sku, name, volume) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE " +
				"id = LAST_INSERT_ID(id), name = VALUES(name), volume = VALUES(volume), date_updated = NOW()",
		},
		{
			name:    "postgresql",
			dialect: Postgres(),
			want: "INSERT INTO products (sku, name, volume) VALUES (?, ?, ?) ON CONFLICT (sku) DO UPDATE SET " +
				"name = EXCLUDED.name, volume = EXCLUDED.volume, date_updated = NOW()",
		},
		{
			name:    "sqlite",
			dialect: SQLite(),
			want: "INSERT INTO products (sku, name, volume) VALUES (?, ?, ?) ON CONFLICT (sku) DO UPDATE SET " +
				"name = excluded.name, volume = excluded.volume, date_updated = CURRENT_TIMESTAMP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := tt.dialect.BuildUpsert("products", "sku", columns, update, "date_updated")
			assert.Equal(t, tt.want, stmt.SQL(1))
		})
	}
}

func TestWithReturningID(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "appends clause",
			query: "INSERT INTO countries (name, code) VALUES (?, ?)",
			want:  "INSERT INTO countries (name, code) VALUES (?, ?) RETURNING id",
		},
		{
			name:  "strips trailing semicolon",
			query: "INSERT INTO countries (name, code) VALUES (?, ?);  ",
			want:  "INSERT INTO countries (name, code) VALUES (?, ?) RETURNING id",
		},
		{
			name:  "keeps existing clause",
			query: "INSERT INTO categories (name) VALUES (?) returning bcl_id",
			want:  "INSERT INTO categories (name) VALUES (?) returning bcl_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withReturningID(tt.query))
		})
	}

	assert.False(t, hasReturning("INSERT INTO t (returning_customer) VALUES (?)"))
}

func TestResolveDialect(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{name: "mysql", cfg: config.DatabaseConfig{Dialect: "mysql"}, want: "mysql"},
		{name: "postgresql", cfg: config.DatabaseConfig{Dialect: "postgresql"}, want: "postgresql"},
		{name: "postgres alias", cfg: config.DatabaseConfig{Dialect: " Postgres "}, want: "postgresql"},
		{name: "sqlite", cfg: config.DatabaseConfig{Dialect: "sqlite"}, want: "sqlite"},
		{name: "empty without inference", cfg: config.DatabaseConfig{Host: "localhost"}, wantErr: true},
		{name: "unknown", cfg: config.DatabaseConfig{Dialect: "oracle"}, wantErr: true},
		{
			name: "legacy inference localhost",
			cfg:  config.DatabaseConfig{Host: "localhost", LegacyDialectInference: true},
			want: "mysql",
		},
		{
			name: "legacy inference remote host",
			cfg:  config.DatabaseConfig{Host: "db.internal", LegacyDialectInference: true},
			want: "postgresql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := ResolveDialect(&tt.cfg, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
				assert.Nil(t, dialect)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, dialect.Name())
		})
	}
}

func TestTruncateSQL(t *testing.T) {
	short := "SELECT 1"
	assert.Equal(t, short, truncateSQL(short))

	long := InsertInto("price_history", "sku", "current_price").SQL(200)
	truncated := truncateSQL(long)
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "bytes)")
}
