package cli

import (
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/app"
	"github.com/riskibarqy/laliga-insights/internal/report"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
	"github.com/spf13/cobra"
)

func newTeamsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the twenty clubs and their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				report.PrintTeams(cmd.OutOrStdout(), c.League.ListTeams(cmd.Context()))
				return nil
			})
		},
	}
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "table",
		Aliases: []string{"standings"},
		Short:   "Print the league table",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				rows, err := c.League.Standings(cmd.Context())
				if err != nil {
					return fmt.Errorf("standings: %w", err)
				}
				report.PrintStandings(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
}

func newRaceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "race",
		Short: "Print cumulative points per week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				lines, err := c.League.TitleRace(cmd.Context())
				if err != nil {
					return fmt.Errorf("title race: %w", err)
				}
				report.PrintTitleRace(cmd.OutOrStdout(), lines)
				return nil
			})
		},
	}
}

func newScorersCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scorers",
		Short: "Print the top scorers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				rows, err := c.League.TopScorers(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("top scorers: %w", err)
				}
				report.PrintScorers(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, fmt.Sprintf("rows to print, 0 for all (max %d)", usecase.MaxListLimit))
	return cmd
}

func newAssistsCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "assists",
		Short: "Print the top assist providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				rows, err := c.League.TopAssists(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("top assists: %w", err)
				}
				report.PrintAssists(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, fmt.Sprintf("rows to print, 0 for all (max %d)", usecase.MaxListLimit))
	return cmd
}
