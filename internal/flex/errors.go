package flex

import "errors"

var (
	// ErrInvalidTarget indicates a daily target that is not a positive,
	// finite number of hours.
	ErrInvalidTarget = errors.New("daily target must be a positive finite number")

	// ErrInvalidRange indicates a period whose start date falls after its
	// end date.
	ErrInvalidRange = errors.New("period start is after period end")
)
