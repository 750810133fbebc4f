package enemy

import (
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// BeamState is the tractor beam lifecycle phase
type BeamState uint8

const (
	BeamOpening BeamState = iota
	BeamFull
	BeamClosing
	BeamClosed
	BeamCapturing
)

var beamStateNames = [...]string{"Opening", "Full", "Closing", "Closed", "Capturing"}

func (s BeamState) String() string {
	if int(s) < len(beamStateNames) {
		return beamStateNames[s]
	}
	return "Unknown"
}

// BeamSegment is one drawn slice of the beam
type BeamSegment struct {
	Sprite string
	Offset vmath.Vec2I // pixels from the beam origin
}

// TractorBeam is owned by the Owl performing a capture attack
type TractorBeam struct {
	pos       vmath.Vec2I
	state     BeamState
	size      int
	count     int
	segments  []BeamSegment
	capturing bool
}

// NewTractorBeam opens a beam whose top edge is at pos
func NewTractorBeam(pos vmath.Vec2I) *TractorBeam {
	return &TractorBeam{
		pos:      pos,
		state:    BeamOpening,
		segments: make([]BeamSegment, 0, parameter.BeamSegmentCount),
	}
}

func (b *TractorBeam) State() BeamState  { return b.state }
func (b *TractorBeam) Pos() vmath.Vec2I  { return b.pos }
func (b *TractorBeam) SegmentCount() int { return len(b.segments) }
func (b *TractorBeam) Closed() bool      { return b.state == BeamClosed }
func (b *TractorBeam) IsCapturing() bool { return b.capturing }

func (b *TractorBeam) Segments() []BeamSegment {
	return b.segments
}

// Update advances the beam one tick
func (b *TractorBeam) Update() {
	b.count++
	step := vmath.One / parameter.BeamGrowDiv
	full := parameter.BeamSegmentCount * vmath.One

	switch b.state {
	case BeamOpening:
		b.size = min(b.size+step, full)
		b.syncSegments(b.size >> vmath.OneBit)
		if b.size >= full {
			b.state = BeamFull
			b.count = 0
		}
	case BeamFull:
		if b.count >= parameter.BeamFullDuration {
			b.state = BeamClosing
		}
	case BeamClosing:
		b.size -= step
		if b.size <= 0 {
			b.size = 0
			b.segments = b.segments[:0]
			b.state = BeamClosed
			b.capturing = false
			return
		}
		b.syncSegments((b.size + vmath.One - 1) >> vmath.OneBit)
	}
}

// syncSegments grows or trims the segment list to n
func (b *TractorBeam) syncSegments(n int) {
	for len(b.segments) < n {
		i := len(b.segments)
		b.segments = append(b.segments, BeamSegment{
			Sprite: beamSprite(i),
			Offset: vmath.V(0, i*parameter.BeamSegmentHeight),
		})
	}
	if len(b.segments) > n {
		b.segments = b.segments[:n]
	}
}

func beamSprite(i int) string {
	if i&1 == 0 {
		return "tractor_beam1"
	}
	return "tractor_beam2"
}

// CanCapture reports whether a fighter at target is inside a fully open beam
func (b *TractorBeam) CanCapture(target vmath.Vec2I) bool {
	return b.state == BeamFull && vmath.Abs(target.X-b.pos.X) <= parameter.BeamCaptureRange*vmath.One
}

// StartCapture holds the beam open while the fighter is pulled in
func (b *TractorBeam) StartCapture() {
	b.state = BeamCapturing
	b.capturing = true
}

// CloseCapture starts closing regardless of phase
func (b *TractorBeam) CloseCapture() {
	if b.state != BeamClosed {
		b.state = BeamClosing
	}
}

// Draw renders the segments, the pattern alternates with the tick count
func (b *TractorBeam) Draw(r Renderer) {
	origin := vmath.RoundUp(b.pos)
	flip := (b.count/4)&1 == 1
	for i, seg := range b.segments {
		name := seg.Sprite
		if flip {
			name = beamSprite(i + 1)
		}
		r.DrawSprite(name, origin.Add(seg.Offset))
	}
}
