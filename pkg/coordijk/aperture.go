package coordijk

import (
	"fmt"
	"math"
)

// Orientation selects which of the two aperture-7 grid orientations a
// resolution transform uses. Successive resolutions alternate between them.
type Orientation int

const (
	// Standard is used between a Class III (odd) child resolution and its
	// parent.
	Standard Orientation = iota
	// Rotated is used between a Class II (even) child resolution and its
	// parent.
	Rotated
)

func (o Orientation) String() string {
	switch o {
	case Standard:
		return "standard"
	case Rotated:
		return "rotated"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation maps "standard" or "rotated" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "rotated":
		return Rotated, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// ForChildResolution returns the orientation of the transform linking
// resolution res to res-1.
func ForChildResolution(res int) Orientation {
	if res%2 != 0 {
		return Standard
	}
	return Rotated
}

type apertureBasis struct {
	i, j, k CoordIJK
}

var (
	downAp7Basis = [...]apertureBasis{
		Standard: {i: CoordIJK{3, 0, 1}, j: CoordIJK{1, 3, 0}, k: CoordIJK{0, 1, 3}},
		Rotated:  {i: CoordIJK{3, 1, 0}, j: CoordIJK{0, 3, 1}, k: CoordIJK{1, 0, 3}},
	}
	downAp3Basis = [...]apertureBasis{
		Standard: {i: CoordIJK{2, 0, 1}, j: CoordIJK{1, 2, 0}, k: CoordIJK{0, 1, 2}},
		Rotated:  {i: CoordIJK{2, 1, 0}, j: CoordIJK{0, 2, 1}, k: CoordIJK{1, 0, 2}},
	}
)

func (o Orientation) mustValid() {
	if o != Standard && o != Rotated {
		panic(fmt.Sprintf("coordijk: invalid orientation %d", int(o)))
	}
}

// upAp7Numerators returns the two numerators that UpAp7 divides by 7.
func upAp7Numerators(c CoordIJK, o Orientation) (int, int) {
	i := c.I - c.K
	j := c.J - c.K
	if o == Rotated {
		return 2*i + j, 3*j - i
	}
	return 3*i - j, i + 2*j
}

// UpAp7 maps a coordinate to the containing cell's coordinate on the next
// coarser aperture-7 grid. The transform is lossy: every child of a parent
// maps to the same parent. The result is normalized.
func (c CoordIJK) UpAp7(o Orientation) CoordIJK {
	o.mustValid()
	ni, nj := upAp7Numerators(c, o)
	return CoordIJK{I: roundSeventh(ni), J: roundSeventh(nj)}.Normalize()
}

// UpAp7Checked is UpAp7 for coordinates that may come from untrusted
// indexes. It returns ErrOverflow when the arithmetic leaves int32 range.
func (c CoordIJK) UpAp7Checked(o Orientation) (CoordIJK, error) {
	o.mustValid()
	i := int64(c.I) - int64(c.K)
	j := int64(c.J) - int64(c.K)
	var ni, nj int64
	if o == Rotated {
		ni, nj = 2*i+j, 3*j-i
	} else {
		ni, nj = 3*i-j, i+2*j
	}
	for _, v := range [...]int64{i, j, 3 * i, 3 * j, ni, nj} {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return CoordIJK{}, fmt.Errorf("%w: up aperture 7 of %s", ErrOverflow, c)
		}
	}
	return CoordIJK{I: roundSeventh(int(ni)), J: roundSeventh(int(nj))}.Normalize(), nil
}

// roundSeventh divides n by 7 and rounds half away from zero. n/7 never has
// a fractional part of exactly one half, so the tie rule is never hit.
func roundSeventh(n int) int {
	return int(math.Round(float64(n) / 7.0))
}

// DownAp7 maps a coordinate to the coordinate of the same cell center on
// the next finer aperture-7 grid. The result is normalized.
func (c CoordIJK) DownAp7(o Orientation) CoordIJK {
	o.mustValid()
	b := downAp7Basis[o]
	return c.linear(b.i, b.j, b.k)
}

// DownAp3 maps a coordinate to the coordinate of the same cell center on
// the next finer aperture-3 grid. The result is normalized.
func (c CoordIJK) DownAp3(o Orientation) CoordIJK {
	o.mustValid()
	b := downAp3Basis[o]
	return c.linear(b.i, b.j, b.k)
}
