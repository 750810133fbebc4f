package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/galangua/parameter"
)

// Tuning holds runtime-adjustable stage pacing, loaded from YAML over defaults
type Tuning struct {
	Stage  StageTuning  `yaml:"stage"`
	Attack AttackTuning `yaml:"attack"`
	Shot   ShotTuning   `yaml:"shot"`
}

// StageTuning controls stage progression
type StageTuning struct {
	RushThreshold int `yaml:"rushThreshold"`
}

// AttackTuning controls attack manager cadence
type AttackTuning struct {
	WaitBase         int `yaml:"waitBase"`
	WaitMin          int `yaml:"waitMin"`
	WaitRandom       int `yaml:"waitRandom"`
	WaitStageStep    int `yaml:"waitStageStep"`
	RushDivisor      int `yaml:"rushDivisor"`
	MaxAttackers     int `yaml:"maxAttackers"`
	RushMaxAttackers int `yaml:"rushMaxAttackers"`
	CaptureCycle     int `yaml:"captureCycle"`
}

// ShotTuning controls enemy shot speed, values in pixels scaled by vmath.One
type ShotTuning struct {
	SpeedBase      int `yaml:"speedBase"`
	SpeedStageStep int `yaml:"speedStageStep"`
	SpeedMax       int `yaml:"speedMax"`
}

// Default returns tuning matching the compiled parameters
func Default() *Tuning {
	return &Tuning{
		Stage: StageTuning{
			RushThreshold: parameter.RushThreshold,
		},
		Attack: AttackTuning{
			WaitBase:         parameter.AttackWaitBase,
			WaitMin:          parameter.AttackWaitMin,
			WaitRandom:       parameter.AttackWaitRandom,
			WaitStageStep:    parameter.AttackWaitStageStep,
			RushDivisor:      parameter.AttackRushDivisor,
			MaxAttackers:     parameter.MaxAttackers,
			RushMaxAttackers: parameter.RushMaxAttackers,
			CaptureCycle:     parameter.AttackCaptureCycle,
		},
		Shot: ShotTuning{
			SpeedBase:      parameter.EnemyShotSpeedBase,
			SpeedStageStep: parameter.EnemyShotSpeedStageStep,
			SpeedMax:       parameter.EnemyShotSpeedMax,
		},
	}
}

// Load reads a YAML file and overlays it on the defaults
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ErrInvalidTuning wraps every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate checks value ranges
func (t *Tuning) Validate() error {
	switch {
	case t.Stage.RushThreshold < 0:
		return fmt.Errorf("%w: stage.rushThreshold must be >= 0, got %d", ErrInvalidTuning, t.Stage.RushThreshold)
	case t.Attack.WaitMin < 1:
		return fmt.Errorf("%w: attack.waitMin must be >= 1, got %d", ErrInvalidTuning, t.Attack.WaitMin)
	case t.Attack.WaitBase < t.Attack.WaitMin:
		return fmt.Errorf("%w: attack.waitBase %d below waitMin %d", ErrInvalidTuning, t.Attack.WaitBase, t.Attack.WaitMin)
	case t.Attack.WaitRandom < 0 || t.Attack.WaitStageStep < 0:
		return fmt.Errorf("%w: attack wait offsets must be >= 0", ErrInvalidTuning)
	case t.Attack.RushDivisor < 1:
		return fmt.Errorf("%w: attack.rushDivisor must be >= 1, got %d", ErrInvalidTuning, t.Attack.RushDivisor)
	case t.Attack.MaxAttackers < 1 || t.Attack.RushMaxAttackers < t.Attack.MaxAttackers:
		return fmt.Errorf("%w: attacker limits %d/%d", ErrInvalidTuning, t.Attack.MaxAttackers, t.Attack.RushMaxAttackers)
	case t.Attack.CaptureCycle < 1:
		return fmt.Errorf("%w: attack.captureCycle must be >= 1, got %d", ErrInvalidTuning, t.Attack.CaptureCycle)
	case t.Shot.SpeedBase <= 0 || t.Shot.SpeedMax < t.Shot.SpeedBase || t.Shot.SpeedStageStep < 0:
		return fmt.Errorf("%w: shot speed base %d max %d step %d", ErrInvalidTuning, t.Shot.SpeedBase, t.Shot.SpeedMax, t.Shot.SpeedStageStep)
	}
	return nil
}

// ShotSpeed returns the enemy shot speed for a stage index
func (t *Tuning) ShotSpeed(stage int) int {
	s := t.Shot.SpeedBase + stage*t.Shot.SpeedStageStep
	if s > t.Shot.SpeedMax {
		return t.Shot.SpeedMax
	}
	return s
}
