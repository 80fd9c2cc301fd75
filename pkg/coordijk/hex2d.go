package coordijk

import "math"

// sqrt3Over2 is sin(60°).
const sqrt3Over2 = 0.8660254037844386467637231707529361834714

// Vec2d is a point in the hex2d plane: unit length is the distance between
// neighboring cell centers and the x-axis runs along the i-axis.
type Vec2d struct {
	X float64
	Y float64
}

// ToHex2d returns the center of c in hex2d coordinates. c need not be
// normalized.
func (c CoordIJK) ToHex2d() Vec2d {
	i := c.I - c.K
	j := c.J - c.K
	return Vec2d{
		X: float64(i) - 0.5*float64(j),
		Y: float64(j) * sqrt3Over2,
	}
}

// FromHex2d returns the normalized coordinate of the cell containing v.
//
// The point is folded into the first quadrant, snapped inside the unit
// rhombus spanned by the i and j axes, then unfolded back.
func FromHex2d(v Vec2d) CoordIJK {
	a1 := math.Abs(v.X)
	a2 := math.Abs(v.Y)

	// rhombus coordinates: x2 along j, x1 along i
	x2 := a2 / sqrt3Over2
	x1 := a1 + x2/2.0

	m1 := int(x1)
	m2 := int(x2)
	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	var i, j int
	switch {
	case r1 < 1.0/3.0:
		i = m1
		if r2 < (1.0+r1)/2.0 {
			j = m2
		} else {
			j = m2 + 1
		}
	case r1 < 0.5:
		if r2 < 1.0-r1 {
			j = m2
		} else {
			j = m2 + 1
		}
		if 1.0-r1 <= r2 && r2 < 2.0*r1 {
			i = m1 + 1
		} else {
			i = m1
		}
	case r1 < 2.0/3.0:
		if r2 < 1.0-r1 {
			j = m2
		} else {
			j = m2 + 1
		}
		if 2.0*r1-1.0 < r2 && r2 < 1.0-r1 {
			i = m1
		} else {
			i = m1 + 1
		}
	default:
		i = m1 + 1
		if r2 < r1/2.0 {
			j = m2
		} else {
			j = m2 + 1
		}
	}

	// unfold across the j axis, then the i axis
	if v.X < 0.0 {
		if j%2 == 0 {
			axis := j / 2
			i -= 2 * (i - axis)
		} else {
			axis := (j + 1) / 2
			i -= 2*(i-axis) + 1
		}
	}
	if v.Y < 0.0 {
		i -= (2*j + 1) / 2
		j = -j
	}

	return CoordIJK{I: i, J: j}.Normalize()
}
