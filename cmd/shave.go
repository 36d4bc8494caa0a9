package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sherine-k/village/pkg/chart"
	"github.com/sherine-k/village/pkg/config"
	"github.com/sherine-k/village/pkg/simulation"
	"github.com/spf13/cobra"
)

func newShaveCmd() *cobra.Command {
	var (
		count         int
		showTimeline  bool
		timelineLimit int
		showSummary   bool
		showChart     bool
		eventLimit    int
	)

	cmd := &cobra.Command{
		Use:   "shave",
		Short: "Run the barbershop simulation",
		Long: `Run the barbershop simulation for a number of shaves.

Each shave prints one line:

  <time>: barber <barber> shaves inhabitant <resident>.[ flags]

A barber shaving their own beard is flagged with "Barber shaves own beard!".
Logs recorded with the older wording "Barber shaves himself!" carry the same
flag. A shave starting after the resident was due is flagged with
"Barber is late for the shave!".

Use --count -1 to run until interrupted with Ctrl-C; the interrupt stops the
run after the current shave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				cfg.Shaves = count
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runShaves(ctx, cmd.OutOrStdout(), cfg, eventLimit, shaveReport{
				timeline:      showTimeline,
				timelineLimit: timelineLimit,
				summary:       showSummary,
				chart:         showChart,
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 20, "Number of shaves, -1 to run until interrupted (overrides the configuration)")
	cmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show numbered shave log after the run")
	cmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline events to display")
	cmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "Show event summary and warnings")
	cmd.Flags().BoolVar(&showChart, "chart", false, "Show barber occupancy chart")
	cmd.Flags().IntVar(&eventLimit, "event-limit", 10000, "Keep at most this many events for reports, 0 keeps all")

	return cmd
}

type shaveReport struct {
	timeline      bool
	timelineLimit int
	summary       bool
	chart         bool
}

func runShaves(ctx context.Context, out io.Writer, cfg *config.Config, eventLimit int, report shaveReport) error {
	village, err := simulation.NewVillageFromConfig(cfg,
		simulation.WithLogger(logger),
		simulation.WithReport(out),
		simulation.WithEventLimit(eventLimit))
	if err != nil {
		return fmt.Errorf("failed to set up village: %w", err)
	}

	if _, err := village.Run(ctx, cfg.Shaves); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	chartGen := chart.NewGenerator().WithColor(useColor)
	events := village.GetEvents()

	if report.chart {
		fmt.Fprintln(out, chartGen.GenerateBarberChart(events, village.GetResidents()))
	}

	if report.summary {
		fmt.Fprintln(out, chartGen.GenerateEventSummary(events))
		fmt.Fprintln(out, chartGen.GenerateWarnings(village.GetWarnings()))
	}

	if report.timeline {
		fmt.Fprintln(out, chartGen.GenerateShaveLog(events, report.timelineLimit))
	}

	return nil
}
