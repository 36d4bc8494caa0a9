package chart

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sherine-k/village/pkg/simulation"
	"github.com/ttacon/chalk"
)

const (
	chartWidth = 80
	axisTicks  = 8

	// barber labels longer than this are cut with an ellipsis
	maxLabelWidth = 16
	minPlotWidth  = axisTicks * 4
)

// Generator generates ASCII charts and reports
type Generator struct {
	width int
	color bool
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width: chartWidth,
	}
}

// WithColor enables terminal colors for warnings
func (g *Generator) WithColor(enabled bool) *Generator {
	g.color = enabled
	return g
}

func (g *Generator) header(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")
}

func (g *Generator) warn(s string) string {
	if !g.color {
		return s
	}
	return chalk.Yellow.Color(s)
}

// GenerateBarberChart draws one row per barber showing when the barber is
// busy over logical time.
func (g *Generator) GenerateBarberChart(events []simulation.ShaveEvent, residents []*simulation.Resident) string {
	barbers := []string{}
	for _, r := range residents {
		if r.IsBarber() {
			barbers = append(barbers, r.Name())
		}
	}

	if len(events) == 0 || len(barbers) == 0 {
		return "No data to display"
	}

	var sb strings.Builder
	g.header(&sb, "Barber Occupancy Over Time")

	labelWidth := 0
	for _, name := range barbers {
		labelWidth = max(labelWidth, utf8.RuneCountInString(label(name)))
	}

	start := events[0].Time
	end := start
	for _, event := range events {
		start = math.Min(start, event.Time)
		end = math.Max(end, event.BusyUntil)
	}
	span := end - start
	plotWidth := max(g.width-labelWidth-3, minPlotWidth)

	for _, name := range barbers {
		sb.WriteString(strings.Repeat(" ", labelWidth-utf8.RuneCountInString(label(name))))
		sb.WriteString(label(name))
		sb.WriteString(" |")

		for x := 0; x < plotWidth; x++ {
			// sample the middle of each column
			t := start + (float64(x)+0.5)/float64(plotWidth)*span

			mark := " "
			for _, event := range events {
				if event.Barber != name || t < event.Time || t >= event.BusyUntil {
					continue
				}
				mark = "█"
				if event.SelfShave {
					mark = "▒"
				}
				break
			}
			sb.WriteString(mark)
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("-", plotWidth))
	sb.WriteString("\n")

	labelLine := []rune(strings.Repeat(" ", plotWidth))
	for tick := 0; tick <= axisTicks; tick++ {
		position := tick * (plotWidth - 1) / axisTicks
		marker := simulation.FormatTime(roundTick(start + float64(tick)/axisTicks*span))

		if position+len(marker) > plotWidth {
			position = max(plotWidth-len(marker), 0)
		}
		for i, ch := range marker {
			if position+i >= plotWidth {
				break
			}
			labelLine[position+i] = ch
		}
	}
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	sb.WriteString(string(labelLine))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Shaving a resident\n")
	sb.WriteString("    ▒ - Shaving own beard\n")
	sb.WriteString("    (space) - Free\n")
	sb.WriteString("\n")

	return sb.String()
}

// label shortens a barber name to fit the chart margin
func label(name string) string {
	runes := []rune(name)
	if len(runes) <= maxLabelWidth {
		return name
	}
	return string(runes[:maxLabelWidth-1]) + "…"
}

func roundTick(t float64) float64 {
	return math.Round(t*10) / 10
}

// GenerateEventSummary generates a summary of events
func (g *Generator) GenerateEventSummary(events []simulation.ShaveEvent) string {
	var sb strings.Builder
	g.header(&sb, "Event Summary")

	eventsByType := make(map[simulation.EventType]int)
	byBarber := make(map[string]int)
	byResident := make(map[string]int)
	barbers := []string{}
	residents := []string{}
	lateBy := 0.0

	for _, event := range events {
		for _, eventType := range event.Types() {
			eventsByType[eventType]++
		}
		if _, ok := byBarber[event.Barber]; !ok {
			barbers = append(barbers, event.Barber)
		}
		byBarber[event.Barber]++
		if _, ok := byResident[event.Resident]; !ok {
			residents = append(residents, event.Resident)
		}
		byResident[event.Resident]++
		if event.Late {
			lateBy += event.Time - event.DueTime
		}
	}

	sb.WriteString(fmt.Sprintf("Total Shaves: %d\n", len(events)))
	sb.WriteString(fmt.Sprintf("  - Self Shaves: %d\n", eventsByType[simulation.EventTypeSelfShave]))
	sb.WriteString(fmt.Sprintf("  - Late Shaves: %d\n", eventsByType[simulation.EventTypeLateShave]))
	if late := eventsByType[simulation.EventTypeLateShave]; late > 0 {
		sb.WriteString(fmt.Sprintf("  - Average Delay: %s\n", simulation.FormatTime(roundTick(lateBy/float64(late)))))
	}
	if len(events) > 0 {
		sb.WriteString(fmt.Sprintf("  - Last Shave At: %s\n", simulation.FormatTime(events[len(events)-1].Time)))
	}

	sb.WriteString("\nShaves by barber:\n")
	for _, name := range barbers {
		sb.WriteString(fmt.Sprintf("  - %s: %d\n", name, byBarber[name]))
	}

	sb.WriteString("\nShaves by inhabitant:\n")
	for _, name := range residents {
		sb.WriteString(fmt.Sprintf("  - %s: %d\n", name, byResident[name]))
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateWarnings generates a list of late shaves
func (g *Generator) GenerateWarnings(warnings []simulation.ShaveEvent) string {
	var sb strings.Builder
	g.header(&sb, "Warnings")

	if len(warnings) == 0 {
		sb.WriteString("No warnings!\n")
		return sb.String()
	}

	for _, warning := range warnings {
		line := fmt.Sprintf("[%s] Barber %s is late for %s (due at %s)",
			simulation.FormatTime(warning.Time),
			warning.Barber,
			warning.Resident,
			simulation.FormatTime(warning.DueTime))
		sb.WriteString(g.warn(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Warnings: %d\n", len(warnings)))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateShaveLog lists the report line of every shave
func (g *Generator) GenerateShaveLog(events []simulation.ShaveEvent, limit int) string {
	var sb strings.Builder

	title := "Shave Log"
	if limit > 0 && limit < len(events) {
		title += fmt.Sprintf(" (showing first %d events)", limit)
	}
	g.header(&sb, title)

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		event := events[i]
		line := fmt.Sprintf("%4d %s", event.Seq, event.String())
		if event.Late {
			line = g.warn(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}
