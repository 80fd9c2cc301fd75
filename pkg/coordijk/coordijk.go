// Package coordijk implements the IJK cube-coordinate algebra of an
// aperture-7 hexagonal grid.
//
// A CoordIJK addresses a point on a 2D hex lattice using three axes spaced
// 120° apart. The third axis is redundant: adding the same offset to all
// three components does not move the point. Normalize reduces a coordinate
// to its canonical form (no negative component, at least one zero), and
// only canonical forms may be compared with Equals for "same point"
// semantics.
//
// Operations return new values and never normalize implicitly unless
// documented to do so.
package coordijk

import "fmt"

// CoordIJK is a hexagon coordinate on the IJK lattice.
type CoordIJK struct {
	I int
	J int
	K int
}

// UnitVecs holds the unit vector for each digit, indexed by Direction.
var UnitVecs = [NumDigits]CoordIJK{
	{0, 0, 0}, // center
	{0, 0, 1}, // k
	{0, 1, 0}, // j
	{0, 1, 1}, // jk
	{1, 0, 0}, // i
	{1, 0, 1}, // ik
	{1, 1, 0}, // ij
}

// New builds a coordinate verbatim.
func New(i, j, k int) CoordIJK { return CoordIJK{I: i, J: j, K: k} }

// Equals reports exact componentwise equality. Normalize both sides first
// when comparing lattice points.
func (a CoordIJK) Equals(b CoordIJK) bool {
	return a.I == b.I && a.J == b.J && a.K == b.K
}

// Add returns a+b, unnormalized.
func (a CoordIJK) Add(b CoordIJK) CoordIJK {
	return CoordIJK{I: a.I + b.I, J: a.J + b.J, K: a.K + b.K}
}

// Sub returns a-b, unnormalized.
func (a CoordIJK) Sub(b CoordIJK) CoordIJK {
	return CoordIJK{I: a.I - b.I, J: a.J - b.J, K: a.K - b.K}
}

// Scale multiplies every component by factor.
func (c CoordIJK) Scale(factor int) CoordIJK {
	return CoordIJK{I: c.I * factor, J: c.J * factor, K: c.K * factor}
}

// Normalize returns the canonical form of c.
func (c CoordIJK) Normalize() CoordIJK {
	c.NormalizeInPlace()
	return c
}

// NormalizeInPlace rewrites c into canonical form.
//
// Negative components are removed one axis at a time by pushing the deficit
// onto the other two axes; clearing one axis can make a later one negative,
// so all three are visited before the common minimum is subtracted.
func (c *CoordIJK) NormalizeInPlace() {
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}

	m := min(c.I, c.J, c.K)
	if m > 0 {
		c.I -= m
		c.J -= m
		c.K -= m
	}
}

// IsNormalized reports whether c is already in canonical form.
func (c CoordIJK) IsNormalized() bool {
	return c.I >= 0 && c.J >= 0 && c.K >= 0 && min(c.I, c.J, c.K) == 0
}

func (c CoordIJK) String() string {
	return fmt.Sprintf("{%d,%d,%d}", c.I, c.J, c.K)
}

// linear maps c through the basis images of the three unit axes and
// normalizes the sum.
func (c CoordIJK) linear(iVec, jVec, kVec CoordIJK) CoordIJK {
	return iVec.Scale(c.I).Add(jVec.Scale(c.J)).Add(kVec.Scale(c.K)).Normalize()
}
