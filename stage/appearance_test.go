package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
)

func countOrders(stage int, captured *core.FormationIndex) (map[core.EnemyType]int, int) {
	counts := make(map[core.EnemyType]int)
	assault := 0
	for unit := 0; unit < parameter.AppearanceUnitCount; unit++ {
		for _, o := range buildUnitOrders(stage, unit, captured) {
			if o.fi.Y >= parameter.FormationYCount {
				assault++
				continue
			}
			counts[o.typ]++
		}
	}
	return counts, assault
}

// TestAppearanceCounts verifies the first stage composition
func TestAppearanceCounts(t *testing.T) {
	counts, assault := countOrders(0, nil)
	assert.Equal(t, 4, counts[core.EnemyOwl])
	assert.Equal(t, 16, counts[core.EnemyButterfly])
	assert.Equal(t, 20, counts[core.EnemyBee])
	assert.Zero(t, counts[core.EnemyCapturedFighter])
	assert.Zero(t, assault)
}

// TestAppearanceUniqueSlots verifies no two orders of a stage share a formation index
func TestAppearanceUniqueSlots(t *testing.T) {
	captured := core.FormationIndex{X: 5, Y: 0}
	seen := make(map[core.FormationIndex]bool)
	for unit := 0; unit < parameter.AppearanceUnitCount; unit++ {
		for _, o := range buildUnitOrders(3, unit, &captured) {
			assert.False(t, seen[o.fi], "duplicate slot %v", o.fi)
			seen[o.fi] = true
		}
	}
}

// TestAppearanceAssaultExtras verifies later stages add assault enemies after the first wave
func TestAppearanceAssaultExtras(t *testing.T) {
	_, assault := countOrders(parameter.AppearanceAssaultStage, nil)
	assert.Equal(t, (parameter.AppearanceUnitCount-1)*parameter.AppearanceAssaultPerUnit, assault)
}

// TestAppearanceCapturedFighter verifies a carried-over fighter trails its Owl
func TestAppearanceCapturedFighter(t *testing.T) {
	captured := core.FormationIndex{X: 4, Y: 0}
	counts, _ := countOrders(0, &captured)
	assert.Equal(t, 1, counts[core.EnemyCapturedFighter])

	orders := buildUnitOrders(0, 1, &captured)
	owlTime, cfTime := -1, -1
	for _, o := range orders {
		switch {
		case o.typ == core.EnemyOwl && o.fi == captured.Neighbor(0, 1):
			owlTime = o.time
		case o.typ == core.EnemyCapturedFighter:
			cfTime = o.time
		}
	}
	assert.Equal(t, owlTime+parameter.AppearanceCapturedDelay, cfTime)
}

// TestAppearanceGating verifies the next wave waits until every enemy has entered
func TestAppearanceGating(t *testing.T) {
	m := NewAppearanceManager()

	first := 0
	for i := 0; i < 200; i++ {
		first += len(m.Update(false))
	}
	assert.Equal(t, parameter.AppearanceUnitSize, first, "second wave spawned while enemies still entering")
	assert.False(t, m.Done())

	second := 0
	for i := 0; i < parameter.AppearanceUnitGap+200; i++ {
		second += len(m.Update(true))
	}
	assert.Greater(t, second, 0)

	m.Pause(true)
	assert.Nil(t, m.Update(true))
}

// TestAppearanceDone verifies the schedule completes after the last wave
func TestAppearanceDone(t *testing.T) {
	m := NewAppearanceManager()
	total := 0
	for i := 0; i < 5000 && !m.Done(); i++ {
		total += len(m.Update(true))
	}
	assert.True(t, m.Done())
	assert.Equal(t, parameter.AppearanceUnitCount*parameter.AppearanceUnitSize, total)
}
