package gateway

import (
	"context"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"catalog/config"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultPostgresPort = 5432
	postgresMaxParams   = 65535
)

type postgresDialect struct{}

// Postgres returns the PostgreSQL adapter.
func Postgres() Dialect {
	return postgresDialect{}
}

func (postgresDialect) Name() string {
	return "postgresql"
}

func (postgresDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.UserName, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}, "TimeZone": {"UTC"}}.Encode(),
	}

	return postgres.Open(dsn.String())
}

func (d postgresDialect) BuildUpsert(table, conflictKey string, columns, updateColumns []string, touchColumns ...string) Statement {
	set := assignments(updateColumns, func(column string) string {
		return "EXCLUDED." + column
	}, d.Now(), touchColumns)

	return Statement{
		Table:   table,
		Columns: columns,
		Suffix:  "ON CONFLICT (" + conflictKey + ") DO UPDATE SET " + set,
	}
}

func (postgresDialect) Now() string {
	return "NOW()"
}

func (postgresDialect) MaxParams() int {
	return postgresMaxParams
}

// insertReturningID appends RETURNING id when missing and scans the first column.
func (postgresDialect) insertReturningID(_ context.Context, tx *gorm.DB, query string, params []any, _ *slog.Logger) (int64, error) {
	var id int64
	if err := tx.Raw(withReturningID(query), params...).Row().Scan(&id); err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}
