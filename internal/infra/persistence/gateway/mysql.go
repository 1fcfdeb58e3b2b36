package gateway

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"catalog/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	defaultMySQLPort = 3306
	mysqlMaxParams   = 65535
)

type mysqlDialect struct{}

// MySQL returns the MySQL adapter.
func MySQL() Dialect {
	return mysqlDialect{}
}

func (mysqlDialect) Name() string {
	return "mysql"
}

func (mysqlDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	dsn := mysqldriver.NewConfig()
	dsn.User = cfg.UserName
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	dsn.DBName = cfg.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC

	return mysql.Open(dsn.FormatDSN())
}

// BuildUpsert uses ON DUPLICATE KEY UPDATE, which fires on any unique key; conflictKey only
// documents the intent. id = LAST_INSERT_ID(id) keeps the existing primary key readable.
func (d mysqlDialect) BuildUpsert(table, _ string, columns, updateColumns []string, touchColumns ...string) Statement {
	set := assignments(updateColumns, func(column string) string {
		return "VALUES(" + column + ")"
	}, d.Now(), touchColumns)

	return Statement{
		Table:   table,
		Columns: columns,
		Suffix:  "ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), " + set,
	}
}

func (mysqlDialect) Now() string {
	return "NOW()"
}

func (mysqlDialect) MaxParams() int {
	return mysqlMaxParams
}

// insertReturningID reads the driver's auto-increment id.
func (mysqlDialect) insertReturningID(ctx context.Context, tx *gorm.DB, query string, params []any, _ *slog.Logger) (int64, error) {
	result, err := tx.Statement.ConnPool.ExecContext(ctx, query, params...)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "read last insert id")
	}

	return id, nil
}
