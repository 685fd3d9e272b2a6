// Package cli holds the insights command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/riskibarqy/laliga-insights/internal/app"
	"github.com/riskibarqy/laliga-insights/internal/config"
	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
	"github.com/spf13/cobra"
)

type options struct {
	source   string
	dataDir  string
	dbURL    string
	logLevel string
	noCache  bool
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "insights",
		Short:         "La Liga 2015/16 season analytics",
		Long:          "Aggregate StatsBomb open data for La Liga 2015/16 into tables, match reports and player profiles.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", "", "data source: memory, postgres or seed (env DATA_SOURCE)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "open-data directory holding matches/, events/ and lineups/ (env STATSBOMB_DATA_DIR)")
	flags.StringVar(&opts.dbURL, "db-url", "", "postgres connection URL (env DB_URL)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level for stderr output")
	flags.BoolVar(&opts.noCache, "no-cache", false, "skip the repository cache")

	root.AddCommand(
		newTeamsCmd(opts),
		newTableCmd(opts),
		newRaceCmd(opts),
		newScorersCmd(opts),
		newAssistsCmd(opts),
		newMatchesCmd(opts),
		newMatchCmd(opts),
		newTimelineCmd(opts),
		newTeamCmd(opts),
		newPlayerCmd(opts),
		newImportCmd(opts),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) config() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.source != "" {
		cfg.DataSource = o.source
	}
	if o.dataDir != "" {
		cfg.StatsBombDataDir = o.dataDir
	}
	if o.dbURL != "" {
		cfg.DBURL = o.dbURL
	}
	if o.noCache {
		cfg.CacheEnabled = false
	}
	// A one-shot command reads each list once.
	cfg.CacheWarmup = false

	switch cfg.DataSource {
	case config.DataSourceMemory, config.DataSourcePostgres, config.DataSourceSeed:
	default:
		return config.Config{}, fmt.Errorf("invalid --source %q", cfg.DataSource)
	}
	return cfg, nil
}

func (o *options) logger() *logging.Logger {
	return logging.NewConsole(logging.ParseLevel(o.logLevel))
}

// withContainer builds the services for one command and closes them afterwards.
func (o *options) withContainer(ctx context.Context, run func(c *app.Container) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	logger := o.logger()
	defer func() { _ = logger.Sync() }()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	return run(c)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}
