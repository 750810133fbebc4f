package vmath

// CollBox is an axis-aligned box in pixels, Pos is the top-left corner
type CollBox struct {
	Pos  Vec2I
	Size Vec2I
}

// CenteredBox returns a box of size w x h centered on the pixel position
func CenteredBox(center Vec2I, w, h int) CollBox {
	return CollBox{Pos: Vec2I{center.X - w/2, center.Y - h/2}, Size: Vec2I{w, h}}
}

// Overlaps reports whether two boxes intersect, touching edges excluded
func (b CollBox) Overlaps(o CollBox) bool {
	return b.Pos.X < o.Pos.X+o.Size.X &&
		o.Pos.X < b.Pos.X+b.Size.X &&
		b.Pos.Y < o.Pos.Y+o.Size.Y &&
		o.Pos.Y < b.Pos.Y+b.Size.Y
}
