package gateway

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Dialect isolates everything that differs between SQL backends.
type Dialect interface {
	// Name is the canonical dialect name used in logs and metrics.
	Name() string

	// Dialector opens the GORM connection for cfg.
	Dialector(cfg *config.DatabaseConfig) gorm.Dialector

	// BuildUpsert renders an insert into table that, on a conflict on conflictKey, overwrites
	// updateColumns with the incoming values and sets touchColumns to the current time.
	BuildUpsert(table, conflictKey string, columns, updateColumns []string, touchColumns ...string) Statement

	// Now is the SQL expression for the current timestamp.
	Now() string

	// MaxParams is the bind-parameter limit of a single statement.
	MaxParams() int

	// insertReturningID executes query inside tx and reads the generated id.
	insertReturningID(ctx context.Context, tx *gorm.DB, query string, params []any, logger *slog.Logger) (int64, error)
}

// Statement is a multi-row INSERT template. Suffix carries an optional upsert clause.
type Statement struct {
	Table   string
	Columns []string
	Suffix  string
}

// InsertInto builds a plain insert statement.
func InsertInto(table string, columns ...string) Statement {
	return Statement{Table: table, Columns: columns}
}

// SQL renders the statement for the given number of rows using '?' placeholders.
func (s Statement) SQL(rows int) string {
	if rows < 1 {
		rows = 1
	}

	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(s.Columns)), ", ") + ")"

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.Table)
	b.WriteString(" (")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(") VALUES ")
	for i := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tuple)
	}
	if s.Suffix != "" {
		b.WriteString(" ")
		b.WriteString(s.Suffix)
	}

	return b.String()
}

// Args flattens rows into one parameter list in column order.
func (s Statement) Args(rows [][]any) []any {
	args := make([]any, 0, len(rows)*len(s.Columns))
	for _, row := range rows {
		args = append(args, row...)
	}

	return args
}

// ResolveDialect picks the adapter for cfg. An empty dialect is a configuration error unless
// legacy inference is enabled, in which case the host decides and a warning is logged.
func ResolveDialect(cfg *config.DatabaseConfig, logger *slog.Logger) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Dialect)) {
	case "mysql":
		return MySQL(), nil
	case "postgresql", "postgres":
		return Postgres(), nil
	case "sqlite", "sqlite3":
		return SQLite(), nil
	case "":
		if !cfg.LegacyDialectInference {
			return nil, errors.Wrap(domainerrors.ErrConfiguration, "database.dialect is required")
		}

		inferred := inferDialect(cfg.Host)
		logger.Warn("database.dialect not set, inferring from host; set it explicitly",
			slog.String("host", cfg.Host),
			slog.String("dialect", inferred.Name()),
		)

		return inferred, nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrConfiguration, "unsupported database dialect %q", cfg.Dialect)
	}
}

// inferDialect keeps the historical rule: local databases were MySQL, hosted ones PostgreSQL.
func inferDialect(host string) Dialect {
	if strings.Contains(host, "localhost") {
		return MySQL()
	}

	return Postgres()
}

var returningClause = regexp.MustCompile(`(?i)\breturning\b`)

// hasReturning reports whether query already carries a RETURNING clause.
func hasReturning(query string) bool {
	return returningClause.MatchString(query)
}

// withReturningID appends "RETURNING id" unless query already returns something.
func withReturningID(query string) string {
	if hasReturning(query) {
		return query
	}

	trimmed := strings.TrimRight(strings.TrimSpace(query), ";")

	return strings.TrimSpace(trimmed) + " RETURNING id"
}

func assignments(updateColumns []string, incoming func(column string) string, now string, touchColumns []string) string {
	parts := make([]string, 0, len(updateColumns)+len(touchColumns))
	for _, column := range updateColumns {
		parts = append(parts, column+" = "+incoming(column))
	}
	for _, column := range touchColumns {
		parts = append(parts, column+" = "+now)
	}

	return strings.Join(parts, ", ")
}
