package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/laliga-insights/external/statsbomb"
	"github.com/riskibarqy/laliga-insights/internal/config"
	"github.com/riskibarqy/laliga-insights/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/laliga-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
	"github.com/riskibarqy/laliga-insights/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

func (c *Container) openRepositories(ctx context.Context) (Repositories, error) {
	cfg := c.Config
	switch cfg.DataSource {
	case config.DataSourceSeed:
		data := memory.SeedDataset()
		c.Logger.Info("data source ready", "source", cfg.DataSource)
		return memoryRepositories(data), nil

	case config.DataSourcePostgres:
		db, err := OpenDB(ctx, cfg, c.Logger)
		if err != nil {
			return Repositories{}, err
		}
		c.addCloser(db.Close)
		store := NewStore(db, cfg)
		c.Logger.Info("data source ready", "source", cfg.DataSource, "db_name", dbNameFromURL(cfg.DBURL))
		return Repositories{
			Matches: postgres.NewMatchRepository(store),
			Events:  postgres.NewEventRepository(store),
			Lineups: postgres.NewLineupRepository(store),
		}, nil

	default:
		snapshot, err := LoadSnapshot(ctx, cfg, c.Logger)
		if err != nil {
			return Repositories{}, err
		}
		data := memory.NewDataset(snapshot.Matches, snapshot.Events, snapshot.Lineups)
		c.Logger.Info("data source ready",
			"source", cfg.DataSource,
			"matches", len(snapshot.Matches),
			"events", len(snapshot.Events),
			"skipped", len(snapshot.Skipped),
		)
		return memoryRepositories(data), nil
	}
}

func memoryRepositories(data *memory.Dataset) Repositories {
	return Repositories{
		Matches: memory.NewMatchRepository(data),
		Events:  memory.NewEventRepository(data),
		Lineups: memory.NewLineupRepository(data),
	}
}

// LoadSnapshot decodes the season from the open-data directory.
func LoadSnapshot(ctx context.Context, cfg config.Config, logger *logging.Logger) (statsbomb.Snapshot, error) {
	dir := strings.TrimSpace(cfg.StatsBombDataDir)
	info, err := os.Stat(dir)
	if err != nil {
		return statsbomb.Snapshot{}, fmt.Errorf("statsbomb data dir: %w", err)
	}
	if !info.IsDir() {
		return statsbomb.Snapshot{}, fmt.Errorf("statsbomb data dir %s is not a directory", dir)
	}

	loader := statsbomb.NewLoader(os.DirFS(dir), statsbomb.LoaderConfig{
		CompetitionID: cfg.StatsBombCompetitionID,
		SeasonID:      cfg.StatsBombSeasonID,
		Workers:       cfg.StatsBombLoadWorkers,
		Strict:        cfg.StatsBombStrict,
		Logger:        logger,
	})
	snapshot, err := loader.Load(ctx)
	if err != nil {
		return statsbomb.Snapshot{}, fmt.Errorf("load statsbomb season %d/%d: %w", cfg.StatsBombCompetitionID, cfg.StatsBombSeasonID, err)
	}
	return snapshot, nil
}

// OpenDB opens a traced postgres pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	otelsql.ReportDBStatsMetrics(db.DB)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if logger != nil {
		logger.Info("postgres connected", "db_name", dbNameFromURL(dsn), "max_open_conns", cfg.DBMaxOpenConns)
	}
	return db, nil
}

// NewStore wraps db with the configured circuit breaker.
func NewStore(db *sqlx.DB, cfg config.Config) *postgres.Store {
	return postgres.NewStore(db, resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	})
}
