package parameter

// Owl Capture Attack (pixels scaled by vmath.One unless noted)
const (
	// CaptureSpeedNum / CaptureSpeedDen give the descent speed toward the beam point (1.5 px/tick)
	CaptureSpeedNum = 3
	CaptureSpeedDen = 2

	// CaptureReturnSpeedNum / CaptureReturnSpeedDen give the fly out and return speed (2.5 px/tick)
	CaptureReturnSpeedNum = 5
	CaptureReturnSpeedDen = 2

	// CaptureInitialVAngle is the initial turn rate in angle units per tick
	CaptureInitialVAngle = 4

	// CaptureSnapAngle is the heading tolerance in angle units for snapping onto the target
	CaptureSnapAngle = 4

	// CaptureAngleMarginDeg narrows the half turn steering range in degrees
	CaptureAngleMarginDeg = 30

	// CaptureTargetY is the pixel y the Owl stops at to open the beam
	CaptureTargetY = ScreenHeight - 16 - 8 - 88

	// TractorBeamOffsetY is the beam origin below the Owl in pixels
	TractorBeamOffsetY = 8

	// CapturedFighterOffsetY is the captured fighter distance from the Owl in pixels
	CapturedFighterOffsetY = 16

	// CaptureDoneWait is the hold time after the capture completes
	CaptureDoneWait = 120

	// CapturePushUpStep is the captured fighter rise per tick during the push up
	CapturePushUpStep = 1
)

// Tractor Beam
const (
	// BeamSegmentCount is the number of segments of a fully opened beam
	BeamSegmentCount = 10
	// BeamGrowDiv divides vmath.One into the per-tick growth and shrink
	BeamGrowDiv = 3
	// BeamFullDuration is the open time before the beam closes on its own
	BeamFullDuration = 180
	// BeamCaptureRange is the horizontal capture distance in pixels
	BeamCaptureRange = 24
	// BeamSegmentHeight is the pixel height of one segment
	BeamSegmentHeight = 8
)
