package interest

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// TransactionType describes a row of the bank statement
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "Initial deposit"
	TransactionTypeInterest TransactionType = "Daily interest"
)

// Transaction is one row of the bank statement
type Transaction struct {
	Date     time.Time
	Type     TransactionType
	Interest decimal.Decimal
	Balance  decimal.Decimal
}

// StatementOptions selects which days appear on the statement
type StatementOptions struct {
	// Standard five-field cron expression, e.g. "0 0 1 * *" for the 1st of
	// every month. Empty disables it.
	Schedule string

	// Also emit a row every EveryDays days since the start. 0 disables it.
	EveryDays int
}

// BankResult is the outcome of a day-by-day simulation
type BankResult struct {
	Initial      decimal.Decimal
	Final        decimal.Decimal
	Days         int
	Transactions []Transaction
}

// Earned returns the total interest paid
func (r *BankResult) Earned() decimal.Decimal {
	return r.Final.Sub(r.Initial)
}

var daysInYear = decimal.NewFromInt(daysPerYear)

// SimulateBank compounds the deposit once per day from start to end, rounding
// the balance to cents after each day like a bank would.
//
// Balances are exact decimals and round half away from zero, so 1.005 becomes
// 1.01. Rounding the nearest binary float instead gives 1.00 for that value,
// so statements computed in float64 can differ by a cent on half-cent days.
func (c *Calculator) SimulateBank(start, end time.Time, opts StatementOptions) (*BankResult, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidParameter,
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	var schedule cron.Schedule
	if opts.Schedule != "" {
		s, err := cron.ParseStandard(opts.Schedule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse statement schedule: %w", err)
		}
		schedule = s
	}

	dailyRate := decimal.NewFromFloat(c.annualRate).Div(daysInYear)
	balance := decimal.NewFromFloat(c.initial)

	result := &BankResult{
		Initial: balance,
		Transactions: []Transaction{{
			Date:    start,
			Type:    TransactionTypeDeposit,
			Balance: balance,
		}},
	}

	current := start
	for current.Before(end) {
		interest := balance.Mul(dailyRate)
		balance = roundCents(balance.Add(interest))

		current = current.AddDate(0, 0, 1)
		result.Days++

		if onStatement(schedule, opts.EveryDays, current, result.Days) {
			result.Transactions = append(result.Transactions, Transaction{
				Date:     current,
				Type:     TransactionTypeInterest,
				Interest: interest,
				Balance:  balance,
			})
		}
	}

	result.Final = balance
	return result, nil
}

// roundCents rounds half away from zero to two decimal places
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func onStatement(schedule cron.Schedule, everyDays int, day time.Time, elapsed int) bool {
	if everyDays > 0 && elapsed%everyDays == 0 {
		return true
	}
	if schedule == nil {
		return false
	}
	// Next returns the first activation strictly after its argument
	return schedule.Next(day.Add(-time.Second)).Equal(day)
}
