package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (and replicas, through go-lib's resolver).
// Without a postgres section it returns a nil *gorm.DB and the API answers 503
// on every database-backed route.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("Postgres not configured, database-backed routes are disabled")

		return nil, nil
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-step writes go through txManager.Execute; single statements need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap postgres sql.DB")
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			watcher.start(poolCheckInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			watcher.stop()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher logs when requests had to wait for a free connection since the last tick.
// Raw pool gauges are exported separately through the metrics registry.
type poolWatcher struct {
	db     *sql.DB
	logger *slog.Logger
	cancel context.CancelFunc
}

func (w *poolWatcher) start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := w.db.Stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				now := w.db.Stats()
				w.report(ctx, last, now)
				last = now
			}
		}
	}()
}

func (w *poolWatcher) stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *poolWatcher) report(ctx context.Context, last, now sql.DBStats) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}

type availability struct {
	configured bool
}

// NewAvailability reports whether New produced a connection.
func NewAvailability(db *gorm.DB) repository.Availability {
	return &availability{configured: db != nil}
}

func (a *availability) Configured() bool {
	return a.configured
}
