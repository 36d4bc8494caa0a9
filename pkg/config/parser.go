package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads and parses the configuration file.
// Sections missing from the file fall back to DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a YAML document.
// Keys absent from the document keep their DefaultConfig values.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func Validate(config *Config) error {
	if err := validate(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validate(config *Config) error {
	if config.Shaves < Unbounded {
		return fmt.Errorf("shaves must be %d (unbounded) or greater than or equal to 0", Unbounded)
	}

	if len(config.Residents) == 0 {
		return fmt.Errorf("at least one resident must be defined")
	}

	barbers := 0
	for i, resident := range config.Residents {
		if resident.Name == "" {
			return fmt.Errorf("resident %d: name is required", i)
		}

		if !positive(resident.BeardGrowthTime) {
			return fmt.Errorf("resident %s: beardGrowthTime must be greater than 0", resident.Name)
		}

		if resident.IsBarber() {
			if !positive(*resident.ShaveTime) {
				return fmt.Errorf("barber %s: shaveTime must be greater than 0", resident.Name)
			}
			barbers++
		}
	}

	if barbers == 0 {
		return fmt.Errorf("at least one resident must be a barber (set shaveTime)")
	}

	return validateDeposit(&config.Deposit)
}

func validateDeposit(d *Deposit) error {
	if d.InitialDeposit < 0 {
		return fmt.Errorf("deposit.initialDeposit must not be negative")
	}

	if d.AnnualRatePercent < 0 {
		return fmt.Errorf("deposit.annualRatePercent must not be negative")
	}

	for _, days := range d.DurationsDays {
		if days < 0 {
			return fmt.Errorf("deposit.durationsDays: %d must not be negative", days)
		}
	}

	if d.FineGrainedMaxDays < 0 {
		return fmt.Errorf("deposit.fineGrainedMaxDays must not be negative")
	}

	start, err := time.Parse(DateLayout, d.BankStart)
	if err != nil {
		return fmt.Errorf("deposit.bankStart: %w", err)
	}
	end, err := time.Parse(DateLayout, d.BankEnd)
	if err != nil {
		return fmt.Errorf("deposit.bankEnd: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("deposit.bankEnd must not be before bankStart")
	}

	if d.StatementSchedule != "" {
		if _, err := cron.ParseStandard(d.StatementSchedule); err != nil {
			return fmt.Errorf("deposit.statementSchedule: %w", err)
		}
	}

	if d.StatementEveryDays < 0 {
		return fmt.Errorf("deposit.statementEveryDays must not be negative")
	}

	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
