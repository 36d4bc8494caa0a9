package simulation

import (
	"strconv"
	"strings"
)

// EventType defines the type of event in the simulation
type EventType string

const (
	EventTypeShave     EventType = "shave"
	EventTypeSelfShave EventType = "self-shave"
	EventTypeLateShave EventType = "late-shave"
)

// Flags appended to the report line
const (
	SelfShaveNote = " Barber shaves own beard!"
	LateNote      = " Barber is late for the shave!"
)

// ShaveEvent is one completed shave
type ShaveEvent struct {
	Seq       int
	Time      float64
	Barber    string
	Resident  string
	DueTime   float64
	BusyUntil float64
	SelfShave bool
	Late      bool
}

// Types returns every event type the shave belongs to
func (e ShaveEvent) Types() []EventType {
	types := []EventType{EventTypeShave}
	if e.SelfShave {
		types = append(types, EventTypeSelfShave)
	}
	if e.Late {
		types = append(types, EventTypeLateShave)
	}
	return types
}

// IsWarning reports whether the shave started after the resident was due
func (e ShaveEvent) IsWarning() bool {
	return e.Late
}

// String renders the report line of the shave, e.g.
//
//	15: barber b1 shaves inhabitant r2. Barber is late for the shave!
func (e ShaveEvent) String() string {
	var sb strings.Builder
	sb.WriteString(FormatTime(e.Time))
	sb.WriteString(": barber ")
	sb.WriteString(e.Barber)
	sb.WriteString(" shaves inhabitant ")
	sb.WriteString(e.Resident)
	sb.WriteString(".")
	if e.SelfShave {
		sb.WriteString(SelfShaveNote)
	}
	if e.Late {
		sb.WriteString(LateNote)
	}
	return sb.String()
}

// FormatTime formats a logical clock value in its shortest form
func FormatTime(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
