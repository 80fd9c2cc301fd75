package coordijk

import "fmt"

// Direction is a hexagon digit: the center cell or one of its six
// neighbors, named after the axes its unit vector spans.
type Direction int

const (
	CenterDigit Direction = iota
	KAxesDigit
	JAxesDigit
	JKAxesDigit
	IAxesDigit
	IKAxesDigit
	IJAxesDigit
	// InvalidDigit is returned where no digit applies.
	InvalidDigit

	// NumDigits is the number of valid digits, center included.
	NumDigits = InvalidDigit
)

var directionNames = [...]string{
	CenterDigit:  "center",
	KAxesDigit:   "k",
	JAxesDigit:   "j",
	JKAxesDigit:  "jk",
	IAxesDigit:   "i",
	IKAxesDigit:  "ik",
	IJAxesDigit:  "ij",
	InvalidDigit: "invalid",
}

func (d Direction) String() string {
	if d < CenterDigit || d > InvalidDigit {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the seven digits.
func (d Direction) Valid() bool { return d >= CenterDigit && d < NumDigits }

// UnitVector returns the unit vector of d. It panics if d is not valid.
func (d Direction) UnitVector() CoordIJK {
	if !d.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidDigit, int(d)))
	}
	return UnitVecs[d]
}

// Rotate60CCW rotates the digit one step counter-clockwise. The center
// digit and InvalidDigit are returned unchanged.
func (d Direction) Rotate60CCW() Direction {
	switch d {
	case KAxesDigit:
		return IKAxesDigit
	case IKAxesDigit:
		return IAxesDigit
	case IAxesDigit:
		return IJAxesDigit
	case IJAxesDigit:
		return JAxesDigit
	case JAxesDigit:
		return JKAxesDigit
	case JKAxesDigit:
		return KAxesDigit
	default:
		return d
	}
}

// Rotate60CW rotates the digit one step clockwise.
func (d Direction) Rotate60CW() Direction {
	switch d {
	case KAxesDigit:
		return JKAxesDigit
	case JKAxesDigit:
		return JAxesDigit
	case JAxesDigit:
		return IJAxesDigit
	case IJAxesDigit:
		return IAxesDigit
	case IAxesDigit:
		return IKAxesDigit
	case IKAxesDigit:
		return KAxesDigit
	default:
		return d
	}
}

// LookupDigit returns the digit whose unit vector equals the normalized
// form of v, or InvalidDigit and ErrNotUnitVector.
func LookupDigit(v CoordIJK) (Direction, error) {
	n := v.Normalize()
	for d := CenterDigit; d < NumDigits; d++ {
		if n.Equals(UnitVecs[d]) {
			return d, nil
		}
	}
	return InvalidDigit, fmt.Errorf("%w: %s", ErrNotUnitVector, v)
}

// UnitIJKToDigit returns the digit of a unit-length displacement.
//
// Callers guarantee that v normalizes to a unit vector; anything else means
// the geometry upstream is already corrupt, so it panics rather than hand
// back a digit.
func UnitIJKToDigit(v CoordIJK) Direction {
	d, err := LookupDigit(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Neighbor returns c stepped one cell in direction d. The result is not
// normalized. CenterDigit leaves c unchanged.
func (c CoordIJK) Neighbor(d Direction) CoordIJK {
	return c.Add(d.UnitVector())
}
