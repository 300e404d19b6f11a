package routing

import "errors"

// Sentinel errors for the planning core. The core never wraps these with
// context; callers translate them into transport-level errors.
var (
	// ErrInvalidCoordinate is returned when a latitude is outside [-90,90]
	// or a longitude is outside [-180,180].
	ErrInvalidCoordinate = errors.New("routing: coordinate out of range")

	// ErrEmptySiteSet is returned when a planning call receives no sites.
	ErrEmptySiteSet = errors.New("routing: empty site set")

	// ErrDuplicateSite is returned when the input set contains the same
	// site ID more than once.
	ErrDuplicateSite = errors.New("routing: duplicate site in input set")

	// ErrInvalidSpeed is returned when the configured average speed is not
	// strictly positive.
	ErrInvalidSpeed = errors.New("routing: speed must be positive")

	// ErrSizeLimit is returned when brute force is invoked above its hard
	// size cap.
	ErrSizeLimit = errors.New("routing: site set too large for exhaustive search")

	// ErrInvalidDayWindow is returned when scheduler parameters do not
	// describe a usable day (start after deadline, inverted break window).
	ErrInvalidDayWindow = errors.New("routing: invalid day window")
)
