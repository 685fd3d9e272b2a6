package cli

import (
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/app"
	"github.com/riskibarqy/laliga-insights/internal/report"
	"github.com/spf13/cobra"
)

func newTeamCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "team <team-id>",
		Short: "Print a team's results, attack figures and fixtures",
		Long:  "Print a team's results, attack figures and fixtures. Run 'insights teams' for the ids.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "team")
			if err != nil {
				return err
			}
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				overview, err := c.Team.Overview(cmd.Context(), int(id))
				if err != nil {
					return fmt.Errorf("team overview: %w", err)
				}
				out := cmd.OutOrStdout()
				report.PrintTeam(out, overview)
				if len(overview.Scorers) > 0 {
					fmt.Fprintln(out)
					report.PrintScorers(out, overview.Scorers)
				}
				return nil
			})
		},
	}
}

func newPlayerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Print a player's profile and season statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "player")
			if err != nil {
				return err
			}
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				r, err := c.Player.Profile(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("player profile: %w", err)
				}
				report.PrintPlayer(cmd.OutOrStdout(), r)
				return nil
			})
		},
	}
}
