package core

// EnemyType identifies an enemy kind, used as the behavior table key
type EnemyType uint8

const (
	EnemyBee EnemyType = iota
	EnemyButterfly
	EnemyOwl
	EnemyCapturedFighter
	EnemyTypeCount
)

var enemyTypeNames = [EnemyTypeCount]string{"Bee", "Butterfly", "Owl", "CapturedFighter"}

func (t EnemyType) String() string {
	if t < EnemyTypeCount {
		return enemyTypeNames[t]
	}
	return "Unknown"
}

// FormationIndex is a formation grid coordinate
// Rows at or beyond the formation row count are assault rows and never settle
type FormationIndex struct {
	X, Y int
}

// Neighbor returns the index offset by (dx, dy)
func (fi FormationIndex) Neighbor(dx, dy int) FormationIndex {
	return FormationIndex{X: fi.X + dx, Y: fi.Y + dy}
}
