package stage

import (
	"sort"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/traj"
	"github.com/lixenwraith/galangua/vmath"
)

// unitPattern selects how a wave enters the screen
type unitPattern uint8

const (
	patternTopPairs  unitPattern = iota // two mirrored streams from the top
	patternSideLeft                     // one stream from the lower left
	patternSideRight                    // one stream from the lower right
)

type unitDef struct {
	pattern unitPattern
	types   [2]core.EnemyType // first and second half of the wave
	slots   [parameter.AppearanceUnitSize]core.FormationIndex
}

func at(x, y int) core.FormationIndex { return core.FormationIndex{X: x, Y: y} }

var unitTable = [parameter.AppearanceUnitCount]unitDef{
	{
		pattern: patternTopPairs,
		types:   [2]core.EnemyType{core.EnemyButterfly, core.EnemyBee},
		slots:   [8]core.FormationIndex{at(4, 2), at(5, 2), at(4, 3), at(5, 3), at(4, 4), at(5, 4), at(4, 5), at(5, 5)},
	},
	{
		pattern: patternSideLeft,
		types:   [2]core.EnemyType{core.EnemyOwl, core.EnemyButterfly},
		slots:   [8]core.FormationIndex{at(3, 1), at(4, 1), at(5, 1), at(6, 1), at(3, 2), at(6, 2), at(3, 3), at(6, 3)},
	},
	{
		pattern: patternSideRight,
		types:   [2]core.EnemyType{core.EnemyButterfly, core.EnemyButterfly},
		slots:   [8]core.FormationIndex{at(7, 2), at(8, 2), at(7, 3), at(8, 3), at(1, 2), at(2, 2), at(1, 3), at(2, 3)},
	},
	{
		pattern: patternTopPairs,
		types:   [2]core.EnemyType{core.EnemyBee, core.EnemyBee},
		slots:   [8]core.FormationIndex{at(3, 4), at(6, 4), at(3, 5), at(6, 5), at(2, 4), at(7, 4), at(2, 5), at(7, 5)},
	},
	{
		pattern: patternTopPairs,
		types:   [2]core.EnemyType{core.EnemyBee, core.EnemyBee},
		slots:   [8]core.FormationIndex{at(1, 4), at(8, 4), at(1, 5), at(8, 5), at(0, 4), at(9, 4), at(0, 5), at(9, 5)},
	},
}

// appearanceOrder is one scheduled spawn within a wave
type appearanceOrder struct {
	time   int
	typ    core.EnemyType
	fi     core.FormationIndex
	offset vmath.Vec2I
	flipX  bool
	table  []traj.Command
}

// AppearanceManager spawns the entry waves of a stage
type AppearanceManager struct {
	stage           int
	capturedFighter *core.FormationIndex

	unit    int
	orders  []appearanceOrder
	next    int
	time    int
	waiting bool
	wait    int
	paused  bool
	done    bool
}

func NewAppearanceManager() *AppearanceManager {
	m := &AppearanceManager{}
	m.Restart(0, nil)
	return m
}

// Restart schedules the waves of stage, capturedFighter is the slot of a fighter carried over
func (m *AppearanceManager) Restart(stage int, capturedFighter *core.FormationIndex) {
	var cf *core.FormationIndex
	if capturedFighter != nil {
		c := *capturedFighter
		cf = &c
	}
	*m = AppearanceManager{stage: stage, capturedFighter: cf}
	m.startUnit(0)
}

func (m *AppearanceManager) Done() bool { return m.done }

// Pause holds the schedule while the player is respawning
func (m *AppearanceManager) Pause(paused bool) { m.paused = paused }

func (m *AppearanceManager) startUnit(unit int) {
	m.unit = unit
	m.orders = buildUnitOrders(m.stage, unit, m.capturedFighter)
	m.next = 0
	m.time = 0
	m.waiting = false
	m.wait = 0
}

// Update spawns due orders and returns the new enemies
// stationary reports that no enemy is still in its entry script
func (m *AppearanceManager) Update(stationary bool) []*enemy.Enemy {
	if m.done || m.paused {
		return nil
	}

	if m.waiting {
		if !stationary {
			m.wait = 0
			return nil
		}
		m.wait++
		if m.unit+1 >= parameter.AppearanceUnitCount {
			m.done = true
			return nil
		}
		if m.wait >= parameter.AppearanceUnitGap {
			m.startUnit(m.unit + 1)
		}
		return nil
	}

	var spawned []*enemy.Enemy
	for m.next < len(m.orders) && m.orders[m.next].time <= m.time {
		o := m.orders[m.next]
		e := enemy.New(o.typ, vmath.Vec2I{}, 0, 0, o.fi)
		e.SetAppearance(traj.New(o.table, o.offset, o.flipX, o.fi))
		spawned = append(spawned, e)
		m.next++
	}
	m.time++
	if m.next >= len(m.orders) {
		m.waiting = true
	}
	return spawned
}

// buildUnitOrders lays out one wave: formation enemies, assault extras and a carried-over fighter
func buildUnitOrders(stage, unit int, capturedFighter *core.FormationIndex) []appearanceOrder {
	def := &unitTable[unit]
	orders := make([]appearanceOrder, 0, parameter.AppearanceUnitSize+parameter.AppearanceAssaultPerUnit+1)
	interval := parameter.AppearanceSpawnInterval

	var last appearanceOrder
	for i, slot := range def.slots {
		o := appearanceOrder{
			typ: def.types[i/(parameter.AppearanceUnitSize/2)],
			fi:  slot,
		}
		switch def.pattern {
		case patternTopPairs:
			o.time = (i / 2) * interval
			o.flipX = i&1 == 1
			o.table = traj.AppearanceTop
		case patternSideLeft:
			o.time = i * interval
			o.table = traj.AppearanceSide
		case patternSideRight:
			o.time = i * interval
			o.flipX = true
			o.table = traj.AppearanceSide
		}
		orders = append(orders, o)
		last = o

		if capturedFighter != nil && o.typ == core.EnemyOwl && slot.Neighbor(0, -1) == *capturedFighter {
			cf := o
			cf.typ = core.EnemyCapturedFighter
			cf.fi = *capturedFighter
			cf.time += parameter.AppearanceCapturedDelay
			orders = append(orders, cf)
		}
	}

	if stage >= parameter.AppearanceAssaultStage && unit > 0 {
		for k := 0; k < parameter.AppearanceAssaultPerUnit; k++ {
			o := last
			o.typ = def.types[1]
			o.fi = core.FormationIndex{
				X: (unit-1)*parameter.AppearanceAssaultPerUnit + k,
				Y: parameter.FormationYCount,
			}
			o.time = last.time + (k+1)*interval
			o.offset = vmath.PixelToFixed(0, -16*(k+1))
			orders = append(orders, o)
		}
	}

	sortOrders(orders)
	return orders
}

// sortOrders keeps spawn order stable by time, captured fighters land after their Owl
func sortOrders(orders []appearanceOrder) {
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].time < orders[j].time })
}
