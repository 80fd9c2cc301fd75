package coordijk

// ringSides lists the direction walked along each side of a ring that
// starts on the i axis, in counter-clockwise order.
var ringSides = [6]Direction{
	JAxesDigit, JKAxesDigit, KAxesDigit, IKAxesDigit, IAxesDigit, IJAxesDigit,
}

// Ring returns the normalized coordinates at exact distance k from c,
// starting on c's i axis and proceeding counter-clockwise.
// If k==0, returns [c]. A negative k returns nil.
func Ring(c CoordIJK, k int) []CoordIJK {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []CoordIJK{c.Normalize()}
	}
	res := make([]CoordIJK, 0, 6*k)
	cur := c.Add(UnitVecs[IAxesDigit].Scale(k))
	for _, side := range ringSides {
		for step := 0; step < k; step++ {
			res = append(res, cur.Normalize())
			cur = cur.Neighbor(side)
		}
	}
	return res
}

// Disk returns all normalized coordinates within distance k of c: the
// center first, then each ring outward.
func Disk(c CoordIJK, k int) []CoordIJK {
	if k < 0 {
		return nil
	}
	res := make([]CoordIJK, 0, 1+3*k*(k+1))
	for r := 0; r <= k; r++ {
		res = append(res, Ring(c, r)...)
	}
	return res
}
