package coordijk

import "errors"

var (
	// ErrNotUnitVector is reported when a coordinate does not normalize to
	// one of the seven unit vectors.
	ErrNotUnitVector = errors.New("coordijk: not a unit vector")

	// ErrInvalidDigit is reported for a Direction outside 0..6.
	ErrInvalidDigit = errors.New("coordijk: invalid digit")

	// ErrOverflow is reported when an aperture transform would leave the
	// int32 range used by packed cell indexes.
	ErrOverflow = errors.New("coordijk: coordinate overflow")
)
