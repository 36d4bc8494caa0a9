package interest

import (
	"errors"
	"fmt"
	"math"
)

const (
	daysPerYear   = 365
	secondsPerDay = 24 * 3600

	// FineGrainedStep is the compounding period of the fine-grained method, in seconds
	FineGrainedStep = 2

	maxSamples = 10
)

// ErrInvalidParameter is returned for negative deposits, rates or durations
var ErrInvalidParameter = errors.New("invalid parameter")

// Calculator computes the growth of a deposit with daily interest
type Calculator struct {
	initial     float64
	ratePercent float64
	annualRate  float64
	dailyRate   float64

	// growth factor of one fine-grained step
	stepFactor float64
}

// NewCalculator creates a calculator. annualRatePercent is e.g. 7 for 7%.
func NewCalculator(initialDeposit, annualRatePercent float64) (*Calculator, error) {
	if initialDeposit < 0 || math.IsNaN(initialDeposit) {
		return nil, fmt.Errorf("%w: initial deposit %v", ErrInvalidParameter, initialDeposit)
	}
	if annualRatePercent < 0 || math.IsNaN(annualRatePercent) {
		return nil, fmt.Errorf("%w: annual rate %v", ErrInvalidParameter, annualRatePercent)
	}

	annual := annualRatePercent / 100
	daily := annual / daysPerYear
	return &Calculator{
		initial:     initialDeposit,
		ratePercent: annualRatePercent,
		annualRate:  annual,
		dailyRate:   daily,
		stepFactor:  1 + daily/(secondsPerDay/FineGrainedStep),
	}, nil
}

// InitialDeposit returns the starting amount
func (c *Calculator) InitialDeposit() float64 { return c.initial }

// AnnualRatePercent returns the annual rate as given to NewCalculator
func (c *Calculator) AnnualRatePercent() float64 { return c.ratePercent }

// AnnualRate returns the annual rate as a fraction
func (c *Calculator) AnnualRate() float64 { return c.annualRate }

// DailyRate returns the daily rate as a fraction
func (c *Calculator) DailyRate() float64 { return c.dailyRate }

// Iterations returns the number of fine-grained steps covering days
func Iterations(days int) int {
	return days * secondsPerDay / FineGrainedStep
}

// FineGrained compounds the deposit every two seconds for the given number
// of days. Each multiplication rounds, so the result drifts away from the
// closed forms. It also returns up to eleven evenly spaced samples, starting
// with the initial deposit.
func (c *Calculator) FineGrained(days int) (float64, []float64, error) {
	if days < 0 {
		return 0, nil, fmt.Errorf("%w: days %d", ErrInvalidParameter, days)
	}

	value := c.initial
	samples := []float64{value}

	iterations := Iterations(days)
	if iterations == 0 {
		return value, samples, nil
	}
	every := iterations / min(maxSamples, iterations)

	for i := 0; i < iterations; i++ {
		value *= c.stepFactor
		if i > 0 && i%every == 0 {
			samples = append(samples, value)
		}
	}

	return value, samples, nil
}

// DailyCompound applies P(1 + r/365)^days
func (c *Calculator) DailyCompound(days int) float64 {
	return c.initial * math.Pow(1+c.dailyRate, float64(days))
}

// Exponential applies P*exp(ln(1 + r/365)*days)
func (c *Calculator) Exponential(days int) float64 {
	return c.initial * math.Exp(math.Log1p(c.dailyRate)*float64(days))
}

// Comparison holds the three methods' results for one duration
type Comparison struct {
	Days          int
	DailyCompound float64
	Exponential   float64

	// Only set when the fine-grained method ran
	HasFineGrained bool
	FineGrained    float64
	Iterations     int
	AbsError       float64
	ErrorPercent   float64
}

// Compare evaluates every method for days. The fine-grained method only
// runs when days <= fineGrainedMaxDays, as it performs 43200 steps per day.
func (c *Calculator) Compare(days, fineGrainedMaxDays int) (Comparison, error) {
	if days < 0 {
		return Comparison{}, fmt.Errorf("%w: days %d", ErrInvalidParameter, days)
	}

	cmp := Comparison{
		Days:          days,
		DailyCompound: c.DailyCompound(days),
		Exponential:   c.Exponential(days),
	}

	if days <= fineGrainedMaxDays {
		value, _, err := c.FineGrained(days)
		if err != nil {
			return Comparison{}, err
		}
		cmp.HasFineGrained = true
		cmp.FineGrained = value
		cmp.Iterations = Iterations(days)
		cmp.AbsError = math.Abs(value - cmp.DailyCompound)
		if cmp.DailyCompound != 0 {
			cmp.ErrorPercent = cmp.AbsError / cmp.DailyCompound * 100
		}
	}

	return cmp, nil
}
