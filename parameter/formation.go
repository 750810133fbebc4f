package parameter

// Formation Grid
const (
	// FormationXCount is the number of formation columns
	FormationXCount = 10
	// FormationYCount is the number of formation rows, including the captured fighter row 0
	FormationYCount = 6
	// AssaultRows are extra index rows for enemies that never join formation
	AssaultRows = 2

	// FormationBaseY is the pixel y of row 0
	FormationBaseY = 32
	// FormationSpacingX is the half column spacing in pixels
	FormationSpacingX = 8
	// FormationSpacingY is the row spacing in pixels
	FormationSpacingY = 16
)

// Formation Animation
const (
	// FormationSwingAmplitude is the entry swing amplitude in pixels
	FormationSwingAmplitude = 16
	// FormationSwingPeriod is the entry swing period in ticks
	FormationSwingPeriod = 256
	// FormationSwingDecayNum / FormationSwingDecayDen scale the amplitude each tick after appearance
	FormationSwingDecayNum = 15
	FormationSwingDecayDen = 16

	// FormationBreathPeriod is the full breathing cycle in ticks
	FormationBreathPeriod = 128
	// FormationBreathSpreadX is the maximum outward push per half column in pixels
	FormationBreathSpreadX = 1
	// FormationBreathSpreadY is the maximum downward push per row in pixels
	FormationBreathSpreadY = 1
)
