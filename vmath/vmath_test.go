package vmath

import (
	"testing"
)

// TestCalcVelocityCardinal verifies heading convention: 0 up, quarter right
func TestCalcVelocityCardinal(t *testing.T) {
	tests := []struct {
		name  string
		angle int
		want  Vec2I
	}{
		{"up", 0, Vec2I{0, -2 * One}},
		{"right", QuarterTurn, Vec2I{2 * One, 0}},
		{"down", HalfTurn, Vec2I{0, 2 * One}},
		{"left", -QuarterTurn, Vec2I{-2 * One, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcVelocity(tt.angle, 2*One)
			if got != tt.want {
				t.Errorf("CalcVelocity(%d) = %+v, want %+v", tt.angle, got, tt.want)
			}
		})
	}
}

// TestCalcVelocityMirror verifies mirrored headings produce mirrored x
func TestCalcVelocityMirror(t *testing.T) {
	for a := 0; a < FullTurn; a += One * 3 {
		v1 := CalcVelocity(a, 3*One)
		v2 := CalcVelocity(-a, 3*One)
		if v1.X != -v2.X || v1.Y != v2.Y {
			t.Fatalf("angle %d: %+v vs %+v not mirrored", a, v1, v2)
		}
	}
}

// TestAtan2Directions verifies atan2 follows the heading convention
func TestAtan2Directions(t *testing.T) {
	tests := []struct {
		name string
		dx   int
		dy   int // screen space, down positive
		want int
	}{
		{"up", 0, -10, 0},
		{"right", 10, 0, QuarterTurn},
		{"left", -10, 0, -QuarterTurn},
		{"down", 0, 10, -HalfTurn},
		{"up-right", 10, -10, FullTurn / 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Atan2(-tt.dy, tt.dx)
			if Abs(DiffAngle(got, tt.want)) > One {
				t.Errorf("Atan2 = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestAtan2RoundTrip verifies moving along atan2 heading approaches target
func TestAtan2RoundTrip(t *testing.T) {
	for deg := 0; deg < 360; deg += 15 {
		a := DegreesToAngle(deg)
		v := CalcVelocity(a, 100*One)
		got := Atan2(-v.Y, v.X)
		if d := Abs(DiffAngle(got, a)); d > 2*One {
			t.Errorf("deg %d: heading %d, diff %d", deg, got, d)
		}
	}
}

// TestNormalizeAngle verifies wrap range
func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{FullTurn, 0},
		{HalfTurn, -HalfTurn},
		{-HalfTurn, -HalfTurn},
		{HalfTurn - 1, HalfTurn - 1},
		{FullTurn + QuarterTurn, QuarterTurn},
		{-FullTurn - QuarterTurn, -QuarterTurn},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestQuantizeAngle verifies bucket rounding
func TestQuantizeAngle(t *testing.T) {
	if got := QuantizeAngle(0, 16); got != 0 {
		t.Errorf("up bucket %d", got)
	}
	if got := QuantizeAngle(QuarterTurn, 16); got != 4 {
		t.Errorf("right bucket %d", got)
	}
	if got := QuantizeAngle(-FullTurn/64, 16); got != 0 {
		t.Errorf("near-up bucket %d", got)
	}
	if got := QuantizeAngle(-QuarterTurn, 16); got != 12 {
		t.Errorf("left bucket %d", got)
	}
}

// TestRoundUp verifies pixel rounding for negative and positive values
func TestRoundUp(t *testing.T) {
	got := RoundUp(Vec2I{10*One + One/2, -3*One - One/4})
	if got != (Vec2I{11, -3}) {
		t.Errorf("RoundUp = %+v", got)
	}
}

// TestCollBoxOverlaps verifies edge exclusion
func TestCollBoxOverlaps(t *testing.T) {
	a := CollBox{Pos: Vec2I{0, 0}, Size: Vec2I{10, 10}}
	if !a.Overlaps(CollBox{Pos: Vec2I{9, 9}, Size: Vec2I{4, 4}}) {
		t.Error("expected overlap")
	}
	if a.Overlaps(CollBox{Pos: Vec2I{10, 0}, Size: Vec2I{4, 4}}) {
		t.Error("touching edge should not overlap")
	}
	c := CenteredBox(Vec2I{50, 50}, 12, 12)
	if c.Pos != (Vec2I{44, 44}) {
		t.Errorf("CenteredBox pos %+v", c.Pos)
	}
}

// TestFastRandDeterministic verifies seeded sequences repeat
func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("sequences diverged")
		}
	}
	r := NewFastRand(0)
	for i := 0; i < 100; i++ {
		if v := r.IntRange(3, 5); v < 3 || v > 5 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
	}
}
