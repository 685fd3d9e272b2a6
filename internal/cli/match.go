package cli

import (
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/app"
	"github.com/riskibarqy/laliga-insights/internal/report"
	"github.com/spf13/cobra"
)

func newMatchesCmd(opts *options) *cobra.Command {
	var week int
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches, optionally for one week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				matches, err := c.Match.ListByWeek(cmd.Context(), week)
				if err != nil {
					return fmt.Errorf("list matches: %w", err)
				}
				report.PrintMatches(cmd.OutOrStdout(), matches)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&week, "week", "w", 0, "match week 1-38, 0 for the whole season")
	return cmd
}

func newMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match <match-id>",
		Short: "Print the header and head-to-head statistics of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				m, err := c.Match.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("get match: %w", err)
				}
				stats, err := c.Match.Stats(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("match stats: %w", err)
				}
				out := cmd.OutOrStdout()
				report.PrintMatchHeader(out, m)
				report.PrintComparison(out, stats)
				return nil
			})
		},
	}
}

func newTimelineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <match-id>",
		Short: "Print goals, cards and substitutions of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				m, err := c.Match.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("get match: %w", err)
				}
				entries, err := c.Match.Timeline(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("timeline: %w", err)
				}
				out := cmd.OutOrStdout()
				report.PrintMatchHeader(out, m)
				report.PrintTimeline(out, entries)
				return nil
			})
		},
	}
}
