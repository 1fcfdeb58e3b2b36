// Package gateway owns the single connection to the catalog database and executes every
// statement the stores issue. Dialect differences live behind the Dialect adapters.
package gateway

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/infra/metrics"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWarnDurationThreshold = 50 * time.Millisecond
)

// Gateway executes parameterized statements against the catalog database.
// Params are positional and bound to '?' placeholders.
type Gateway interface {
	// Dialect returns the adapter of the connected backend.
	Dialect() Dialect

	// Query scans every result row into dest, a pointer to a slice.
	Query(ctx context.Context, dest any, query string, params []any) error

	// QueryOne scans the first result row into dest and reports whether there was one.
	QueryOne(ctx context.Context, dest any, query string, params []any) (bool, error)

	// Insert executes a single write in its own transaction. With returnID the generated
	// primary key is returned, otherwise 0.
	Insert(ctx context.Context, query string, params []any, returnID bool) (int64, error)

	// BulkInsert writes rows with stmt inside one transaction. Either every row is
	// committed or, on any failure, none is.
	BulkInsert(ctx context.Context, stmt Statement, rows [][]any) error
}

// GormGateway is the GORM-backed Gateway. It holds exactly one open connection.
type GormGateway struct {
	db       *gorm.DB
	sqlDB    *sql.DB
	dialect  Dialect
	timeout  time.Duration
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Recorder *metrics.Recorder `optional:"true"`
}

// New connects during construction so that a bad configuration or unreachable database
// stops the application before it starts serving.
func New(params Params) (Gateway, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	gw, err := Connect(ctx, params.Config, params.Logger, params.Recorder)
	if err != nil {
		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go monitorPool(monitorCtx, params.Logger, gw.sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancelMonitor()

			return gw.Close()
		},
	})

	return gw, nil
}

// Connect opens and verifies the connection described by cfg.Database.
// Failures are ErrConfiguration or ErrConnection; no retry is attempted.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*GormGateway, error) {
	if cfg == nil || cfg.Database == nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, "database section is missing")
	}
	dbCfg := cfg.Database

	dialect, err := ResolveDialect(dbCfg, logger)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Connecting to database",
		slog.String("dialect", dialect.Name()),
		slog.String("host", dbCfg.Host),
		slog.String("name", dbCfg.Name),
	)

	db, err := gorm.Open(dialect.Dialector(dbCfg), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newStatementLogger(logger, dialect.Name(), cfg.Env.Debug),
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseError(domainerrors.ErrConnection, err, dialect.Name())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, domainerrors.NewDatabaseError(domainerrors.ErrConnection, err, dialect.Name())
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, domainerrors.NewDatabaseError(domainerrors.ErrConnection, err, dialect.Name())
	}

	logger.InfoContext(ctx, "Database connected", slog.String("dialect", dialect.Name()))

	return &GormGateway{
		db:       db,
		sqlDB:    sqlDB,
		dialect:  dialect,
		timeout:  dbCfg.QueryTimeout,
		logger:   logger,
		recorder: recorder,
	}, nil
}

// Dialect returns the adapter of the connected backend.
func (g *GormGateway) Dialect() Dialect {
	return g.dialect
}

// Migrate creates or updates the catalog tables.
func (g *GormGateway) Migrate(ctx context.Context) error {
	if err := g.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate catalog schema")
	}

	return nil
}

// Close releases the connection.
func (g *GormGateway) Close() error {
	return errors.WithStack(g.sqlDB.Close())
}

func (g *GormGateway) Query(ctx context.Context, dest any, query string, params []any) error {
	ctx, cancel := g.bounded(ctx)
	defer cancel()

	start := time.Now()
	err := g.db.WithContext(ctx).Raw(query, params...).Scan(dest).Error
	g.recorder.ObserveStatement(g.dialect.Name(), "query", start, err)
	if err != nil {
		return domainerrors.NewDatabaseError(domainerrors.ErrQuery, err, truncateSQL(query))
	}

	return nil
}

func (g *GormGateway) QueryOne(ctx context.Context, dest any, query string, params []any) (bool, error) {
	ctx, cancel := g.bounded(ctx)
	defer cancel()

	start := time.Now()
	result := g.db.WithContext(ctx).Raw(query, params...).Scan(dest)
	g.recorder.ObserveStatement(g.dialect.Name(), "query_one", start, result.Error)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseError(domainerrors.ErrQuery, result.Error, truncateSQL(query))
	}

	return result.RowsAffected > 0, nil
}

func (g *GormGateway) Insert(ctx context.Context, query string, params []any, returnID bool) (int64, error) {
	ctx, cancel := g.bounded(ctx)
	defer cancel()

	var id int64
	start := time.Now()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !returnID {
			return tx.Exec(query, params...).Error
		}

		var err error
		id, err = g.dialect.insertReturningID(ctx, tx, query, params, g.logger)

		return err
	})
	g.recorder.ObserveStatement(g.dialect.Name(), "insert", start, err)
	if err != nil {
		return 0, g.insertError(ctx, err, query)
	}

	return id, nil
}

func (g *GormGateway) BulkInsert(ctx context.Context, stmt Statement, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	if len(stmt.Columns) == 0 {
		return domainerrors.NewDatabaseError(domainerrors.ErrInsert, errors.New("statement has no columns"), stmt.Table)
	}
	for i, row := range rows {
		if len(row) != len(stmt.Columns) {
			return domainerrors.NewDatabaseError(domainerrors.ErrInsert,
				errors.Errorf("row %d has %d values, want %d", i, len(row), len(stmt.Columns)), stmt.Table)
		}
	}

	ctx, cancel := g.bounded(ctx)
	defer cancel()

	chunk := max(g.dialect.MaxParams()/len(stmt.Columns), 1)

	start := time.Now()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for offset := 0; offset < len(rows); offset += chunk {
			batch := rows[offset:min(offset+chunk, len(rows))]
			if err := tx.Exec(stmt.SQL(len(batch)), stmt.Args(batch)...).Error; err != nil {
				return errors.Wrapf(err, "rows %d-%d", offset, offset+len(batch)-1)
			}
		}

		return nil
	})
	g.recorder.ObserveStatement(g.dialect.Name(), "bulk_insert", start, err)
	if err != nil {
		return g.insertError(ctx, err, stmt.Table)
	}

	g.recorder.AddRowsWritten(stmt.Table, len(rows))
	g.logger.DebugContext(ctx, "Bulk insert committed",
		slog.String("table", stmt.Table),
		slog.Int("rows", len(rows)),
		slog.Int("chunkSize", chunk),
	)

	return nil
}

func (g *GormGateway) insertError(ctx context.Context, err error, details string) error {
	attrs := []any{slog.String("dialect", g.dialect.Name()), slog.String("target", truncateSQL(details)), slog.Any("error", err)}
	if kind := violation(err); kind != "" {
		attrs = append(attrs, slog.String("violation", kind))
		details = details + " (" + kind + ")"
	}
	g.logger.ErrorContext(ctx, "Write rolled back", attrs...)

	return domainerrors.NewDatabaseError(domainerrors.ErrInsert, err, truncateSQL(details))
}

func (g *GormGateway) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.timeout)
}

func monitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			// callers queue on the single connection; long waits mean a statement is hogging it
			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= poolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Connection wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Connection wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
