package simulation

import (
	"fmt"
	"math"
)

// Resident is an inhabitant of the village. A resident holding a chair is
// also a barber and can shave other residents, including itself.
type Resident struct {
	name            string
	beardGrowthTime float64
	lastShaveTime   float64

	chair *chair
}

// chair is the barber capability of a resident
type chair struct {
	shaveTime float64
	busyUntil float64
}

// NewResident creates an ordinary resident
func NewResident(name string, beardGrowthTime float64) (*Resident, error) {
	if err := checkDuration("beard growth time", beardGrowthTime); err != nil {
		return nil, fmt.Errorf("resident %s: %w", name, err)
	}
	return &Resident{name: name, beardGrowthTime: beardGrowthTime}, nil
}

// NewBarber creates a resident who is also a barber
func NewBarber(name string, beardGrowthTime, shaveTime float64) (*Resident, error) {
	r, err := NewResident(name, beardGrowthTime)
	if err != nil {
		return nil, err
	}
	if err := checkDuration("shave time", shaveTime); err != nil {
		return nil, fmt.Errorf("barber %s: %w", name, err)
	}
	r.chair = &chair{shaveTime: shaveTime}
	return r, nil
}

func checkDuration(what string, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("%w: %s %v must be a finite value greater than 0", ErrInvalidDuration, what, d)
	}
	return nil
}

// Name returns the display name of the resident
func (r *Resident) Name() string {
	return r.name
}

func (r *Resident) String() string {
	return r.name
}

// BeardGrowthTime returns the time a beard needs to grow back
func (r *Resident) BeardGrowthTime() float64 {
	return r.beardGrowthTime
}

// LastShaveTime returns the clock value of the last completed shave
func (r *Resident) LastShaveTime() float64 {
	return r.lastShaveTime
}

// NextShaveTime returns the time the resident is due for a shave
func (r *Resident) NextShaveTime() float64 {
	return r.lastShaveTime + r.beardGrowthTime
}

// SetLastShaveTime records a completed shave. Callers keep it monotonic.
func (r *Resident) SetLastShaveTime(t float64) {
	r.lastShaveTime = t
}

// IsBarber reports whether the resident can shave others
func (r *Resident) IsBarber() bool {
	return r.chair != nil
}

// BusyUntil returns the time the barber becomes free, 0 for non-barbers
func (r *Resident) BusyUntil() float64 {
	if r.chair == nil {
		return 0
	}
	return r.chair.busyUntil
}

// ShaveTime returns how long one shave takes, 0 for non-barbers
func (r *Resident) ShaveTime() float64 {
	if r.chair == nil {
		return 0
	}
	return r.chair.shaveTime
}

// Shave performs a shave of target starting at time.
//
// The barber is busy until time plus its shave time, and the target's last
// shave time is set to that same moment, not to time. A start that differs
// from the target's due time is reported as late but still performed.
func (r *Resident) Shave(time float64, target *Resident) (ShaveEvent, error) {
	if r.chair == nil {
		return ShaveEvent{}, fmt.Errorf("%s: %w", r.name, ErrNotBarber)
	}
	if target == nil {
		return ShaveEvent{}, ErrNilResident
	}

	due := target.NextShaveTime()
	event := ShaveEvent{
		Time:      time,
		Barber:    r.name,
		Resident:  target.name,
		DueTime:   due,
		SelfShave: target == r,
		Late:      time != due,
	}

	r.chair.busyUntil = time + r.chair.shaveTime
	target.SetLastShaveTime(r.chair.busyUntil)
	event.BusyUntil = r.chair.busyUntil

	return event, nil
}
