package simulation

import "errors"

var (
	// ErrNoBarber is returned when a free barber is requested from a village
	// that has no resident with the barber capability.
	ErrNoBarber = errors.New("no barber in village")

	// ErrNoResidents is returned when the village is empty.
	ErrNoResidents = errors.New("no residents in village")

	// ErrInvalidDuration is returned for non-positive, NaN or infinite
	// beard growth or shave durations.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrNotBarber is returned when a resident without the barber capability
	// is asked to shave someone.
	ErrNotBarber = errors.New("resident is not a barber")

	// ErrNilResident is returned when a nil resident is added or shaved.
	ErrNilResident = errors.New("nil resident")

	// ErrReportWrite is returned when a performed shave could not be reported.
	ErrReportWrite = errors.New("failed to write shave report")

	// ErrInvalidCount is returned by Run for negative counts other than Unbounded.
	ErrInvalidCount = errors.New("invalid shave count")
)
