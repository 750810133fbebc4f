package enemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

type spriteCall struct {
	name string
	pos  vmath.Vec2I
}

type recordingRenderer struct {
	calls []spriteCall
}

func (r *recordingRenderer) DrawSprite(name string, pos vmath.Vec2I) {
	r.calls = append(r.calls, spriteCall{name, pos})
}

func (r *recordingRenderer) DrawSpriteRot(name string, pos vmath.Vec2I, _ int) {
	r.calls = append(r.calls, spriteCall{name, pos})
}

// TestTractorBeamLifecycle verifies open, hold, timeout and close
func TestTractorBeamLifecycle(t *testing.T) {
	b := NewTractorBeam(vmath.PixelToFixed(100, 180))
	target := vmath.PixelToFixed(110, 264)

	ticks := 0
	for b.State() == BeamOpening {
		require.False(t, b.CanCapture(target), "capturable while opening")
		b.Update()
		ticks++
		require.LessOrEqual(t, b.SegmentCount(), parameter.BeamSegmentCount)
	}
	assert.Equal(t, 31, ticks)
	assert.Equal(t, BeamFull, b.State())
	assert.Equal(t, parameter.BeamSegmentCount, b.SegmentCount())
	assert.True(t, b.CanCapture(target))
	assert.False(t, b.CanCapture(vmath.PixelToFixed(140, 264)), "outside horizontal range")

	for i := 0; i < parameter.BeamFullDuration; i++ {
		b.Update()
	}
	assert.Equal(t, BeamClosing, b.State())

	for i := 0; i < 100 && !b.Closed(); i++ {
		b.Update()
	}
	assert.True(t, b.Closed())
	assert.Zero(t, b.SegmentCount())
}

// TestTractorBeamCapture verifies capture holds the beam until closed explicitly
func TestTractorBeamCapture(t *testing.T) {
	b := NewTractorBeam(vmath.PixelToFixed(100, 180))
	for b.State() != BeamFull {
		b.Update()
	}
	b.StartCapture()
	assert.True(t, b.IsCapturing())

	for i := 0; i < 2*parameter.BeamFullDuration; i++ {
		b.Update()
	}
	assert.Equal(t, BeamCapturing, b.State())
	assert.Equal(t, parameter.BeamSegmentCount, b.SegmentCount())

	b.CloseCapture()
	for i := 0; i < 100 && !b.Closed(); i++ {
		b.Update()
	}
	assert.True(t, b.Closed())
	assert.False(t, b.IsCapturing())
}

// TestTractorBeamDraw verifies segments stack downward from the origin
func TestTractorBeamDraw(t *testing.T) {
	b := NewTractorBeam(vmath.PixelToFixed(100, 180))
	for b.State() != BeamFull {
		b.Update()
	}
	r := &recordingRenderer{}
	b.Draw(r)

	require.Len(t, r.calls, parameter.BeamSegmentCount)
	for i, c := range r.calls {
		assert.Equal(t, vmath.V(100, 180+i*parameter.BeamSegmentHeight), c.pos)
	}
}
