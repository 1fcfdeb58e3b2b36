package gateway

import (
	"context"
	"log/slog"

	"catalog/config"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const sqliteMaxParams = 32766

type sqliteDialect struct{}

// SQLite returns the SQLite adapter, used for local runs and tests.
func SQLite() Dialect {
	return sqliteDialect{}
}

func (sqliteDialect) Name() string {
	return "sqlite"
}

func (sqliteDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	return sqlite.Open(path)
}

func (d sqliteDialect) BuildUpsert(table, conflictKey string, columns, updateColumns []string, touchColumns ...string) Statement {
	set := assignments(updateColumns, func(column string) string {
		return "excluded." + column
	}, d.Now(), touchColumns)

	return Statement{
		Table:   table,
		Columns: columns,
		Suffix:  "ON CONFLICT (" + conflictKey + ") DO UPDATE SET " + set,
	}
}

func (sqliteDialect) Now() string {
	return "CURRENT_TIMESTAMP"
}

func (sqliteDialect) MaxParams() int {
	return sqliteMaxParams
}

// insertReturningID runs query as-is and reads the first column of a returned row, if any.
func (d sqliteDialect) insertReturningID(ctx context.Context, tx *gorm.DB, query string, params []any, logger *slog.Logger) (int64, error) {
	rows, err := tx.Raw(query, params...).Rows()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, errors.WithStack(err)
		}
		logger.DebugContext(ctx, "Insert returned no row", slog.String("dialect", d.Name()))

		return 0, nil
	}

	columns, err := rows.Columns()
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var id int64
	dest := make([]any, len(columns))
	dest[0] = &id
	for i := 1; i < len(dest); i++ {
		dest[i] = new(any)
	}
	if err := rows.Scan(dest...); err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}
