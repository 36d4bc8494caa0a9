package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sherine-k/village/pkg/config"
	"github.com/sherine-k/village/pkg/logging"
)

// Unbounded makes Run loop until its context is cancelled
const Unbounded = config.Unbounded

// Village runs the barbershop simulation.
//
// Residents are kept in insertion order and both selection queries are plain
// linear scans, so ties always go to the earliest added resident.
type Village struct {
	mu sync.Mutex

	id         string
	residents  []*Resident
	events     []ShaveEvent
	eventLimit int
	shaves     int
	clock      float64

	logger *slog.Logger
	report io.Writer
}

// Option configures a Village
type Option func(*Village)

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(v *Village) {
		v.logger = logger
	}
}

// WithReport sets where the one-line shave reports are written
func WithReport(w io.Writer) Option {
	return func(v *Village) {
		v.report = w
	}
}

// WithEventLimit keeps only the n most recent events. 0 keeps all of them.
func WithEventLimit(n int) Option {
	return func(v *Village) {
		v.eventLimit = n
	}
}

// NewVillage creates an empty village
func NewVillage(opts ...Option) *Village {
	v := &Village{
		id:        uuid.NewString(),
		residents: []*Resident{},
		events:    []ShaveEvent{},
		logger:    logging.Discard(),
		report:    os.Stdout,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With("run_id", v.id)
	return v
}

// NewVillageFromConfig creates a village populated with the configured residents
func NewVillageFromConfig(cfg *config.Config, opts ...Option) (*Village, error) {
	v := NewVillage(opts...)

	for _, rc := range cfg.Residents {
		var (
			r   *Resident
			err error
		)
		if rc.IsBarber() {
			r, err = NewBarber(rc.Name, rc.BeardGrowthTime, *rc.ShaveTime)
		} else {
			r, err = NewResident(rc.Name, rc.BeardGrowthTime)
		}
		if err != nil {
			return nil, err
		}
		if err := v.AddResident(r); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// ID returns the run identifier attached to every log record
func (v *Village) ID() string {
	return v.id
}

// AddResident adds a resident to the village
func (v *Village) AddResident(r *Resident) error {
	if r == nil {
		return ErrNilResident
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.residents = append(v.residents, r)
	v.logger.Debug("resident added",
		"resident", r.Name(),
		"barber", r.IsBarber(),
		"beard_growth_time", r.BeardGrowthTime())
	return nil
}

// NextDueResident returns the resident who should be shaved next
func (v *Village) NextDueResident() (*Resident, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nextDueResident()
}

// NextFreeBarber returns the barber who will be free next
func (v *Village) NextFreeBarber() (*Resident, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nextFreeBarber()
}

func (v *Village) nextDueResident() (*Resident, error) {
	var next *Resident
	for _, r := range v.residents {
		if next == nil || r.NextShaveTime() < next.NextShaveTime() {
			next = r
		}
	}
	if next == nil {
		return nil, ErrNoResidents
	}
	return next, nil
}

func (v *Village) nextFreeBarber() (*Resident, error) {
	var next *Resident
	for _, r := range v.residents {
		if !r.IsBarber() {
			continue
		}
		if next == nil || r.BusyUntil() < next.BusyUntil() {
			next = r
		}
	}
	if next == nil {
		return nil, ErrNoBarber
	}
	return next, nil
}

// Step performs a single shave event. An error wrapping ErrReportWrite means
// the shave was performed and recorded but its report line was lost.
func (v *Village) Step() (ShaveEvent, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	resident, err := v.nextDueResident()
	if err != nil {
		return ShaveEvent{}, err
	}
	barber, err := v.nextFreeBarber()
	if err != nil {
		return ShaveEvent{}, err
	}

	time := math.Max(resident.NextShaveTime(), barber.BusyUntil())
	event, err := barber.Shave(time, resident)
	if err != nil {
		return ShaveEvent{}, err
	}

	v.shaves++
	event.Seq = v.shaves
	v.clock = time
	v.addEvent(event)

	if _, err := fmt.Fprintln(v.report, event.String()); err != nil {
		return event, fmt.Errorf("%w: %v", ErrReportWrite, err)
	}

	attrs := []any{
		"seq", event.Seq,
		"time", event.Time,
		"barber", event.Barber,
		"resident", event.Resident,
		"busy_until", event.BusyUntil,
	}
	switch {
	case event.Late:
		v.logger.Warn("barber is late", append(attrs, "due_time", event.DueTime)...)
	case event.SelfShave:
		v.logger.Info("barber shaves own beard", attrs...)
	default:
		v.logger.Debug("shave", attrs...)
	}

	return event, nil
}

// Run performs count shave events, or runs until ctx is cancelled when count
// is Unbounded. Cancellation is checked before each step and is not an
// error: Run returns the number of shaves performed so far. The count includes
// a shave whose report line failed to write.
func (v *Village) Run(ctx context.Context, count int) (int, error) {
	if count < Unbounded {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	v.logger.Info("simulation started", "count", count, "residents", len(v.GetResidents()))

	performed := 0
	for count == Unbounded || performed < count {
		if ctx.Err() != nil {
			v.logger.Info("simulation interrupted", "shaves", performed)
			return performed, nil
		}
		if _, err := v.Step(); err != nil {
			err = fmt.Errorf("shave %d: %w", performed+1, err)
			if errors.Is(err, ErrReportWrite) {
				performed++
			}
			return performed, err
		}
		performed++
	}

	v.logger.Info("simulation finished", "shaves", performed, "clock", v.Clock())
	return performed, nil
}

// addEvent adds an event to the event list, dropping the oldest past the limit
func (v *Village) addEvent(event ShaveEvent) {
	v.events = append(v.events, event)
	if v.eventLimit > 0 && len(v.events) > v.eventLimit {
		v.events = append(v.events[:0], v.events[len(v.events)-v.eventLimit:]...)
	}
}

// Clock returns the time of the latest shave
func (v *Village) Clock() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clock
}

// Shaves returns the number of shaves performed
func (v *Village) Shaves() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.shaves
}

// GetResidents returns the residents in insertion order
func (v *Village) GetResidents() []*Resident {
	v.mu.Lock()
	defer v.mu.Unlock()
	residents := make([]*Resident, len(v.residents))
	copy(residents, v.residents)
	return residents
}

// GetEvents returns all retained events
func (v *Village) GetEvents() []ShaveEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	events := make([]ShaveEvent, len(v.events))
	copy(events, v.events)
	return events
}

// GetWarnings returns all retained late shaves
func (v *Village) GetWarnings() []ShaveEvent {
	warnings := []ShaveEvent{}
	for _, event := range v.GetEvents() {
		if event.IsWarning() {
			warnings = append(warnings, event)
		}
	}
	return warnings
}
