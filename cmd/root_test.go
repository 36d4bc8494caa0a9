package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sherine-k/village/pkg/config"
	"github.com/sherine-k/village/pkg/logging"
	"github.com/sherine-k/village/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "village.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestShaveCmd_DefaultScenario(t *testing.T) {
	out, err := execute(t, "shave")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, "2: barber b1 shaves inhabitant r1.", lines[0])
	assert.Equal(t, "15: barber b1 shaves inhabitant r2. Barber is late for the shave!", lines[9])
}

func TestShaveCmd_CountAndReports(t *testing.T) {
	out, err := execute(t, "shave", "--count", "10", "--summary", "--chart", "--timeline", "--timeline-limit", "5")
	require.NoError(t, err)

	assert.Equal(t, 10, strings.Count(out, ": barber b1 shaves inhabitant"), "report lines only; the log is numbered")
	assert.Contains(t, out, "Barber Occupancy Over Time")
	assert.Contains(t, out, "Total Shaves: 10")
	assert.Contains(t, out, "Total Warnings: 1")
	assert.Contains(t, out, "Shave Log (showing first 5 events)")
}

func TestShaveCmd_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
shaves: 2
residents:
  - name: anna
    beardGrowthTime: 1.5
  - name: otto
    beardGrowthTime: 10
    shaveTime: 0.5
`)
	out, err := execute(t, "shave", "--config", path)
	require.NoError(t, err)

	assert.Equal(t,
		"1.5: barber otto shaves inhabitant anna.\n3.5: barber otto shaves inhabitant anna.\n",
		out)
}

func TestShaveCmd_ConfigWithoutBarber(t *testing.T) {
	path := writeConfig(t, "residents:\n  - name: r1\n    beardGrowthTime: 2\n")

	_, err := execute(t, "shave", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestShaveCmd_InvalidCount(t *testing.T) {
	_, err := execute(t, "shave", "--count=-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shave count")
}

func TestDepositCmd(t *testing.T) {
	path := writeConfig(t, `
deposit:
  durationsDays: [1, 365]
  bankStart: 2024-01-01
  bankEnd: 2024-03-01
`)
	out, err := execute(t, "deposit", "--config", path, "--fine-grained-max-days", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Deposit Growth Comparison")
	assert.Contains(t, out, "After 1 days")
	assert.Contains(t, out, "After 365 days")
	assert.Equal(t, 1, strings.Count(out, "Fine-grained error"))
	assert.Contains(t, out, "Bank Simulation (60 days, daily compounding)")
	assert.Contains(t, out, "2024-02-01   Daily interest")
}

func TestShaveCmd_HelpDescribesReportFlags(t *testing.T) {
	out, err := execute(t, "shave", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, strings.TrimSpace(simulation.SelfShaveNote))
	assert.Contains(t, out, strings.TrimSpace(simulation.LateNote))
	assert.Contains(t, out, "Barber shaves himself!")
}

func TestRootCmd_RejectsUnknownLogSettings(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)

	root.SetArgs([]string{"shave", "--log-level", "loud"})
	err := root.Execute()
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
	assert.NotContains(t, out.String(), "barber b1 shaves")

	root = NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"deposit", "--log-format", "xml"})
	assert.ErrorIs(t, root.Execute(), logging.ErrUnknownFormat)
}
