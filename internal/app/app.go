package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/laliga-insights/internal/config"
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
	"github.com/riskibarqy/laliga-insights/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/laliga-insights/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/laliga-insights/internal/platform/cache"
	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
)

// Repositories are the three read stores every service is built on.
type Repositories struct {
	Matches match.Repository
	Events  event.Repository
	Lineups lineup.Repository
}

// Container holds the wired services for one process.
type Container struct {
	Config config.Config
	Logger *logging.Logger
	Repos  Repositories

	League *usecase.LeagueService
	Match  *usecase.MatchService
	Team   *usecase.TeamService
	Player *usecase.PlayerService

	closers []func() error
}

// Build opens the configured data source, wraps it with the read-through
// cache when enabled and wires the services.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{Config: cfg, Logger: logger}
	repos, err := c.openRepositories(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	var store *basecache.Store
	if cfg.CacheEnabled {
		store = basecache.NewStore(cfg.CacheTTL)
		repos = Repositories{
			Matches: cache.NewMatchRepository(repos.Matches, store),
			Events:  cache.NewEventRepository(repos.Events, store),
			Lineups: cache.NewLineupRepository(repos.Lineups, store),
		}
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}
	c.Repos = repos

	teams := team.LaLiga2015()
	c.League = usecase.NewLeagueService(repos.Matches, repos.Events, repos.Lineups, teams)
	c.Match = usecase.NewMatchService(repos.Matches, repos.Events, repos.Lineups)
	c.Team = usecase.NewTeamService(repos.Matches, repos.Events, repos.Lineups, teams)
	c.Player = usecase.NewPlayerService(repos.Events, repos.Lineups)

	if cfg.CacheEnabled && cfg.CacheWarmup {
		if err := Warmup(ctx, repos, logger); err != nil {
			logger.Warn("cache warm-up incomplete", "error", err)
		} else {
			logger.Info("cache warmed", "entries", store.Len())
		}
	}

	return c, nil
}

func (c *Container) addCloser(fn func() error) {
	c.closers = append(c.closers, fn)
}

// Close releases the data source in reverse order of acquisition.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Handler builds the HTTP handler over the container's services.
func (c *Container) Handler() *httpapi.Handler {
	return httpapi.NewHandler(c.League, c.Match, c.Team, c.Player, c.Logger)
}

func NewHTTPServer(cfg config.Config, c *Container) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	router := httpapi.NewRouter(c.Handler(), c.Logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
