package vmath

// Vec2I is an integer vector, usually fixed point scaled by One
type Vec2I struct {
	X, Y int
}

func V(x, y int) Vec2I { return Vec2I{X: x, Y: y} }

func (v Vec2I) Add(o Vec2I) Vec2I { return Vec2I{v.X + o.X, v.Y + o.Y} }
func (v Vec2I) Sub(o Vec2I) Vec2I { return Vec2I{v.X - o.X, v.Y - o.Y} }
func (v Vec2I) Scale(k int) Vec2I { return Vec2I{v.X * k, v.Y * k} }
func (v Vec2I) IsZero() bool      { return v.X == 0 && v.Y == 0 }

// Shr shifts both components right, floor division by 2^n
func (v Vec2I) Shr(n uint) Vec2I { return Vec2I{v.X >> n, v.Y >> n} }

// LenSq returns squared length
func (v Vec2I) LenSq() int { return v.X*v.X + v.Y*v.Y }

// RoundUp converts a fixed point position to the nearest pixel
func RoundUp(v Vec2I) Vec2I {
	return Vec2I{(v.X + One/2) >> OneBit, (v.Y + One/2) >> OneBit}
}

// PixelToFixed scales pixel coordinates by One
func PixelToFixed(x, y int) Vec2I {
	return Vec2I{x * One, y * One}
}
