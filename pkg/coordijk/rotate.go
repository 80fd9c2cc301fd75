package coordijk

// Rotate60CCW rotates c 60° counter-clockwise about the origin and
// normalizes the result.
func (c CoordIJK) Rotate60CCW() CoordIJK {
	return c.linear(
		CoordIJK{1, 1, 0},
		CoordIJK{0, 1, 1},
		CoordIJK{1, 0, 1},
	)
}

// Rotate60CW rotates c 60° clockwise about the origin and normalizes the
// result.
func (c CoordIJK) Rotate60CW() CoordIJK {
	return c.linear(
		CoordIJK{1, 0, 1},
		CoordIJK{1, 1, 0},
		CoordIJK{0, 1, 1},
	)
}
