package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, 20, cfg.Shaves)
	require.Len(t, cfg.Residents, 3)
	assert.False(t, cfg.Residents[0].IsBarber())
	assert.False(t, cfg.Residents[1].IsBarber())
	assert.True(t, cfg.Residents[2].IsBarber())
	assert.Equal(t, 1.0, *cfg.Residents[2].ShaveTime)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "village.yaml")
	doc := `
shaves: -1
residents:
  - name: alice
    beardGrowthTime: 3.5
  - name: bob
    beardGrowthTime: 5
    shaveTime: 0.5
deposit:
  annualRatePercent: 5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Unbounded, cfg.Shaves)
	require.Len(t, cfg.Residents, 2)
	assert.Equal(t, "alice", cfg.Residents[0].Name)
	assert.Equal(t, 3.5, cfg.Residents[0].BeardGrowthTime)
	assert.True(t, cfg.Residents[1].IsBarber())
	assert.Equal(t, 0.5, *cfg.Residents[1].ShaveTime)

	// untouched deposit keys keep their defaults
	assert.Equal(t, 5.0, cfg.Deposit.AnnualRatePercent)
	assert.Equal(t, 1000.0, cfg.Deposit.InitialDeposit)
	assert.Equal(t, "0 0 1 * *", cfg.Deposit.StatementSchedule)
}

func TestParse_ZeroShavesIsKept(t *testing.T) {
	cfg, err := Parse([]byte("shaves: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Shaves)
	assert.Len(t, cfg.Residents, 3)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("residents: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "no barber",
			doc:  "residents:\n  - name: r1\n    beardGrowthTime: 2\n",
			want: "at least one resident must be a barber",
		},
		{
			name: "empty residents",
			doc:  "residents: []\n",
			want: "at least one resident must be defined",
		},
		{
			name: "missing name",
			doc:  "residents:\n  - beardGrowthTime: 2\n    shaveTime: 1\n",
			want: "resident 0: name is required",
		},
		{
			name: "zero growth",
			doc:  "residents:\n  - name: b1\n    beardGrowthTime: 0\n    shaveTime: 1\n",
			want: "beardGrowthTime must be greater than 0",
		},
		{
			name: "negative shave time",
			doc:  "residents:\n  - name: b1\n    beardGrowthTime: 2\n    shaveTime: -1\n",
			want: "shaveTime must be greater than 0",
		},
		{
			name: "bad shave count",
			doc:  "shaves: -2\n",
			want: "shaves must be -1",
		},
		{
			name: "bad cron schedule",
			doc:  "deposit:\n  statementSchedule: \"not a schedule\"\n",
			want: "deposit.statementSchedule",
		},
		{
			name: "bank end before start",
			doc:  "deposit:\n  bankStart: 2025-01-01\n  bankEnd: 2024-01-01\n",
			want: "bankEnd must not be before bankStart",
		},
		{
			name: "negative deposit",
			doc:  "deposit:\n  initialDeposit: -5\n",
			want: "initialDeposit must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
