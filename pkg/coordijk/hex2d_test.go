package coordijk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHex2d(t *testing.T) {
	tests := []struct {
		in   CoordIJK
		want Vec2d
	}{
		{New(0, 0, 0), Vec2d{0, 0}},
		{New(1, 0, 0), Vec2d{1, 0}},
		{New(0, 1, 0), Vec2d{-0.5, sqrt3Over2}},
		{New(0, 0, 1), Vec2d{-0.5, -sqrt3Over2}},
		{New(2, 1, 0), Vec2d{1.5, sqrt3Over2}},
		{New(5, 2, 0), Vec2d{4, 2 * sqrt3Over2}},
	}
	for _, tt := range tests {
		got := tt.in.ToHex2d()
		assert.InDelta(t, tt.want.X, got.X, 1e-12, "x of %s", tt.in)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-12, "y of %s", tt.in)
	}
}

func TestToHex2dIgnoresOffset(t *testing.T) {
	for _, c := range sweep(3) {
		require.Equal(t, c.Normalize().ToHex2d(), c.ToHex2d())
	}
}

func TestFromHex2dSnapsToNearestCenter(t *testing.T) {
	tests := []struct {
		in   Vec2d
		want CoordIJK
	}{
		{Vec2d{0.3, 0.1}, New(0, 0, 0)},
		{Vec2d{0.49, 0}, New(0, 0, 0)},
		{Vec2d{0.51, 0}, New(1, 0, 0)},
		{Vec2d{0.6, 0}, New(1, 0, 0)},
		{Vec2d{-0.6, 0}, New(0, 1, 1)},
		{Vec2d{0.5, 0.4}, New(1, 1, 0)},
		{Vec2d{-0.4, 0.9}, New(0, 1, 0)},
		{Vec2d{-1.2, -0.3}, New(0, 1, 1)},
		{Vec2d{2.6, -1.9}, New(4, 0, 2)},
		{Vec2d{10.2, -3.3}, New(12, 0, 4)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromHex2d(tt.in), "point %+v", tt.in)
	}
}

func TestHex2dRoundTrip(t *testing.T) {
	for _, c := range sweep(6) {
		n := c.Normalize()
		require.Equal(t, n, FromHex2d(n.ToHex2d()), "c=%s", n)
	}
}

func TestFromHex2dIsNearest(t *testing.T) {
	// points scattered across a patch of the plane snap to a center no
	// farther than any neighbor of that center
	for x := -3.0; x <= 3.0; x += 0.17 {
		for y := -3.0; y <= 3.0; y += 0.13 {
			p := Vec2d{x, y}
			c := FromHex2d(p)
			best := dist2(p, c.ToHex2d())
			for d := KAxesDigit; d < NumDigits; d++ {
				nb := c.Neighbor(d).ToHex2d()
				require.LessOrEqual(t, best, dist2(p, nb)+1e-9, "p=%+v c=%s", p, c)
			}
		}
	}
}

func dist2(a, b Vec2d) float64 {
	return math.Pow(a.X-b.X, 2) + math.Pow(a.Y-b.Y, 2)
}
