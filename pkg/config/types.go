package config

// Unbounded is the shave count meaning "run until interrupted"
const Unbounded = -1

// Config represents the entire configuration for the village simulator
type Config struct {
	Shaves    int        `yaml:"shaves"`
	Residents []Resident `yaml:"residents"`
	Deposit   Deposit    `yaml:"deposit"`
}

// Resident represents a single inhabitant of the village
type Resident struct {
	Name            string  `yaml:"name"`
	BeardGrowthTime float64 `yaml:"beardGrowthTime"`

	// For barbers only. A resident with a shave time is a barber.
	ShaveTime *float64 `yaml:"shaveTime,omitempty"`
}

// IsBarber reports whether the resident also works as a barber
func (r Resident) IsBarber() bool {
	return r.ShaveTime != nil
}

// Deposit holds the parameters of the deposit calculator
type Deposit struct {
	InitialDeposit     float64 `yaml:"initialDeposit"`
	AnnualRatePercent  float64 `yaml:"annualRatePercent"`
	DurationsDays      []int   `yaml:"durationsDays"`
	FineGrainedMaxDays int     `yaml:"fineGrainedMaxDays"`

	// Day-by-day bank simulation
	BankStart          string `yaml:"bankStart"`
	BankEnd            string `yaml:"bankEnd"`
	StatementSchedule  string `yaml:"statementSchedule,omitempty"`
	StatementEveryDays int    `yaml:"statementEveryDays,omitempty"`
}

// DateLayout is the layout of bankStart and bankEnd
const DateLayout = "2006-01-02"

// DefaultConfig returns the scenario used when no configuration file is given:
// two ordinary residents, one barber and twenty shaves.
func DefaultConfig() *Config {
	shave := 1.0
	return &Config{
		Shaves: 20,
		Residents: []Resident{
			{Name: "r1", BeardGrowthTime: 2},
			{Name: "r2", BeardGrowthTime: 4},
			{Name: "b1", BeardGrowthTime: 6, ShaveTime: &shave},
		},
		Deposit: DefaultDeposit(),
	}
}

// DefaultDeposit returns the deposit calculator defaults
func DefaultDeposit() Deposit {
	return Deposit{
		InitialDeposit:     1000,
		AnnualRatePercent:  7,
		DurationsDays:      []int{1, 7, 30, 365, 365 * 5},
		FineGrainedMaxDays: 30,
		BankStart:          "2024-01-01",
		BankEnd:            "2025-01-01",
		StatementSchedule:  "0 0 1 * *",
		StatementEveryDays: 30,
	}
}
