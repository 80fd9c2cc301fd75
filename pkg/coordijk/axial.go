package coordijk

// CoordIJ is the two-axis (axial) form of a lattice point: the i and j
// components after the k component has been folded away.
type CoordIJ struct {
	I int
	J int
}

// Cube is the cube-coordinate form of a lattice point, with X+Y+Z == 0.
type Cube struct {
	X int
	Y int
	Z int
}

// Add returns a+b in axial space.
func (a CoordIJ) Add(b CoordIJ) CoordIJ { return CoordIJ{a.I + b.I, a.J + b.J} }

// ToIJ converts c to axial form. c need not be normalized.
func (c CoordIJK) ToIJ() CoordIJ {
	return CoordIJ{I: c.I - c.K, J: c.J - c.K}
}

// ToIJK converts axial to a normalized IJK coordinate.
func (a CoordIJ) ToIJK() CoordIJK {
	return CoordIJK{I: a.I, J: a.J}.Normalize()
}

// ToCube converts c to cube form. c need not be normalized.
func (c CoordIJK) ToCube() Cube {
	x := -c.I + c.K
	y := c.J - c.K
	return Cube{X: x, Y: y, Z: -x - y}
}

// ToIJK converts cube to a normalized IJK coordinate.
func (c Cube) ToIJK() CoordIJK {
	return CoordIJK{I: -c.X, J: c.Y}.Normalize()
}

// Distance returns the number of neighbor steps between a and b.
func Distance(a, b CoordIJK) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	return max(dx, dy, dz)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
