package cli

import (
	"fmt"
	"time"

	"github.com/riskibarqy/laliga-insights/internal/app"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load the open-data season and write it to postgres",
		Long: "Decode matches, events and lineups from --data-dir and upsert them into the database at --db-url.\n" +
			"Apply the schema first with the migration binary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			logger := opts.logger()
			defer func() { _ = logger.Sync() }()
			ctx := cmd.Context()
			started := time.Now()

			snapshot, err := app.LoadSnapshot(ctx, cfg, logger)
			if err != nil {
				return err
			}

			db, err := app.OpenDB(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			result, err := app.NewStore(db, cfg).Import(ctx, snapshot, cfg.StatsBombCompetitionID, cfg.StatsBombSeasonID)
			if err != nil {
				return fmt.Errorf("import snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d matches, %d events, %d lineup entries in %s\n",
				result.Matches, result.Events, result.Lineups, time.Since(started).Round(time.Millisecond))
			if len(snapshot.Skipped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped %d matches: %v\n", len(snapshot.Skipped), snapshot.Skipped)
			}
			return nil
		},
	}
}
