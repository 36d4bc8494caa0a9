package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/sherine-k/village/pkg/chart"
	"github.com/sherine-k/village/pkg/config"
	"github.com/sherine-k/village/pkg/interest"
	"github.com/spf13/cobra"
)

func newDepositCmd() *cobra.Command {
	var fineGrainedMaxDays int

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Compare compound interest methods",
		Long: `Compare compounding a deposit every two seconds against the closed-form
daily compounding and exponential formulas, then simulate a year of daily
compounding with the balance rounded to cents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fine-grained-max-days") {
				cfg.Deposit.FineGrainedMaxDays = fineGrainedMaxDays
			}
			return runDeposit(cmd.OutOrStdout(), &cfg.Deposit)
		},
	}

	cmd.Flags().IntVar(&fineGrainedMaxDays, "fine-grained-max-days", 30, "Longest duration the two-second method is run for")

	return cmd
}

func runDeposit(out io.Writer, d *config.Deposit) error {
	calc, err := interest.NewCalculator(d.InitialDeposit, d.AnnualRatePercent)
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	comparisons := make([]interest.Comparison, 0, len(d.DurationsDays))
	for _, days := range d.DurationsDays {
		logger.Debug("comparing methods", "days", days, "fine_grained", days <= d.FineGrainedMaxDays)
		cmp, err := calc.Compare(days, d.FineGrainedMaxDays)
		if err != nil {
			return fmt.Errorf("failed to compare methods for %d days: %w", days, err)
		}
		comparisons = append(comparisons, cmp)
	}

	start, err := time.Parse(config.DateLayout, d.BankStart)
	if err != nil {
		return fmt.Errorf("invalid bank start: %w", err)
	}
	end, err := time.Parse(config.DateLayout, d.BankEnd)
	if err != nil {
		return fmt.Errorf("invalid bank end: %w", err)
	}

	result, err := calc.SimulateBank(start, end, interest.StatementOptions{
		Schedule:  d.StatementSchedule,
		EveryDays: d.StatementEveryDays,
	})
	if err != nil {
		return fmt.Errorf("bank simulation failed: %w", err)
	}

	chartGen := chart.NewGenerator().WithColor(useColor)
	fmt.Fprintln(out, chartGen.GenerateDepositComparison(calc, comparisons))
	fmt.Fprintln(out, chartGen.GenerateBankStatement(result))

	return nil
}
