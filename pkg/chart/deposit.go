package chart

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sherine-k/village/pkg/interest"
)

const statementEdgeRows = 3

// Money formats an amount with thousands separators and cents
func Money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func precise(v float64) string {
	return "$" + humanize.FormatFloat("#,###.######", v)
}

// GenerateDepositComparison compares the fine-grained method with the closed
// forms for each duration.
func (g *Generator) GenerateDepositComparison(calc *interest.Calculator, comparisons []interest.Comparison) string {
	var sb strings.Builder
	g.header(&sb, "Deposit Growth Comparison")

	sb.WriteString(fmt.Sprintf("Initial deposit:      %s\n", Money(calc.InitialDeposit())))
	sb.WriteString(fmt.Sprintf("Annual interest rate: %g%%\n", calc.AnnualRatePercent()))
	sb.WriteString(fmt.Sprintf("Daily interest rate:  %.6f%%\n", calc.DailyRate()*100))

	for _, cmp := range comparisons {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("After %d days (%.1f years)\n", cmp.Days, float64(cmp.Days)/365))
		sb.WriteString(strings.Repeat("-", g.width))
		sb.WriteString("\n")

		if cmp.HasFineGrained {
			sb.WriteString(fmt.Sprintf("  Every %ds (%s steps):  %s\n",
				interest.FineGrainedStep,
				humanize.Comma(int64(cmp.Iterations)),
				precise(cmp.FineGrained)))
		}
		sb.WriteString(fmt.Sprintf("  Daily compounding:        %s\n", precise(cmp.DailyCompound)))
		sb.WriteString(fmt.Sprintf("  Exponential formula:      %s\n", precise(cmp.Exponential)))
		if cmp.HasFineGrained {
			line := fmt.Sprintf("  Fine-grained error:       %s (%.6f%%)", precise(cmp.AbsError), cmp.ErrorPercent)
			if cmp.AbsError > 0 {
				line = g.warn(line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateBankStatement prints the first and last rows of a bank simulation
func (g *Generator) GenerateBankStatement(result *interest.BankResult) string {
	var sb strings.Builder
	g.header(&sb, fmt.Sprintf("Bank Simulation (%d days, daily compounding)", result.Days))

	sb.WriteString(fmt.Sprintf("Initial deposit:       %s\n", Money(result.Initial.InexactFloat64())))
	sb.WriteString(fmt.Sprintf("Final balance:         %s\n", Money(result.Final.InexactFloat64())))
	sb.WriteString(fmt.Sprintf("Total interest earned: %s\n", Money(result.Earned().InexactFloat64())))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-12s %-20s %-12s %s\n", "Date", "Description", "Interest", "Balance"))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	txs := result.Transactions
	for i, tx := range txs {
		if i >= statementEdgeRows && i < len(txs)-statementEdgeRows {
			if i == statementEdgeRows {
				sb.WriteString("...\n")
			}
			continue
		}

		amount := ""
		if tx.Type != interest.TransactionTypeDeposit {
			amount = Money(tx.Interest.InexactFloat64())
		}
		sb.WriteString(fmt.Sprintf("%-12s %-20s %-12s %s\n",
			tx.Date.Format("2006-01-02"),
			tx.Type,
			amount,
			Money(tx.Balance.InexactFloat64())))
	}
	sb.WriteString("\n")

	return sb.String()
}
