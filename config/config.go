// Package config holds the simulation tunables and their YAML loader
package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/parameter"
)

var (
	ErrScheduleTooShort  = errors.New("speed schedule shorter than attempt budget")
	ErrTargetUnreachable = errors.New("target exceeds attempt budget")
	ErrInvalidPlayfield  = errors.New("invalid playfield geometry")
	ErrInvalidTuning     = errors.New("invalid tuning value")
)

// Tuning is every tunable of the simulation core, in playfield units and ticks
type Tuning struct {
	FieldWidth  int `yaml:"field_width"`
	FieldHeight int `yaml:"field_height"`

	BatsmanX       float64 `yaml:"batsman_x"`
	BatsmanY       float64 `yaml:"batsman_y"`
	DeliverySpawnY float64 `yaml:"delivery_spawn_y"`

	WindowOffset    float64 `yaml:"window_offset"`
	WindowHalfWidth float64 `yaml:"window_half_width"`
	MissMargin      float64 `yaml:"miss_margin"`

	DeceptiveHitSpeed   float64 `yaml:"deceptive_hit_speed"`
	DeceptiveUpwardBias float64 `yaml:"deceptive_upward_bias"`
	CleanHitSpeed       float64 `yaml:"clean_hit_speed"`
	CleanLaunchArc      float64 `yaml:"clean_launch_arc"`
	PursuitSpeed        float64 `yaml:"pursuit_speed"`
	ProtectRadius       float64 `yaml:"protect_radius"`
	DeceptiveChance     float64 `yaml:"deceptive_chance"`

	Gravity        float64 `yaml:"gravity"`
	FielderDamping float64 `yaml:"fielder_damping"`
	ExitMargin     float64 `yaml:"exit_margin"`

	CaptureRadiusDeceptive float64 `yaml:"capture_radius_deceptive"`
	CaptureRadiusClean     float64 `yaml:"capture_radius_clean"`

	FieldingInsetX      int `yaml:"fielding_inset_x"`
	FieldingInsetTop    int `yaml:"fielding_inset_top"`
	FieldingInsetBottom int `yaml:"fielding_inset_bottom"`

	Attempts             int `yaml:"attempts"`
	Target               int `yaml:"target"`
	RunsPerSuccess       int `yaml:"runs_per_success"`
	ResolutionDelayTicks int `yaml:"resolution_delay_ticks"`
	CountdownTicks       int `yaml:"countdown_ticks"`
	CountdownSteps       int `yaml:"countdown_steps"`

	DeliveryTrailLength int `yaml:"delivery_trail_length"`
	StruckTrailLength   int `yaml:"struck_trail_length"`

	SpeedSchedule []float64    `yaml:"speed_schedule"`
	FielderLayout [][2]float64 `yaml:"fielder_layout"`
}

// Default reproduces the reference game at 60 ticks per second
func Default() Tuning {
	layout := make([][2]float64, len(parameter.FielderLayout))
	copy(layout, parameter.FielderLayout[:])

	schedule := make([]float64, len(parameter.SpeedSchedule))
	copy(schedule, parameter.SpeedSchedule)

	return Tuning{
		FieldWidth:             parameter.FieldWidth,
		FieldHeight:            parameter.FieldHeight,
		BatsmanX:               parameter.BatsmanX,
		BatsmanY:               parameter.BatsmanY,
		DeliverySpawnY:         parameter.DeliverySpawnY,
		WindowOffset:           parameter.WindowOffset,
		WindowHalfWidth:        parameter.WindowHalfWidth,
		MissMargin:             parameter.MissMargin,
		DeceptiveHitSpeed:      parameter.DeceptiveHitSpeed,
		DeceptiveUpwardBias:    parameter.DeceptiveUpwardBias,
		CleanHitSpeed:          parameter.CleanHitSpeed,
		CleanLaunchArc:         parameter.CleanLaunchArc,
		PursuitSpeed:           parameter.PursuitSpeed,
		ProtectRadius:          parameter.ProtectRadius,
		DeceptiveChance:        parameter.DeceptiveChance,
		Gravity:                parameter.Gravity,
		FielderDamping:         parameter.FielderDamping,
		ExitMargin:             parameter.ExitMargin,
		CaptureRadiusDeceptive: parameter.CaptureRadiusDeceptive,
		CaptureRadiusClean:     parameter.CaptureRadiusClean,
		FieldingInsetX:         parameter.FieldingInsetX,
		FieldingInsetTop:       parameter.FieldingInsetTop,
		FieldingInsetBottom:    parameter.FieldingInsetBottom,
		Attempts:               parameter.Attempts,
		Target:                 parameter.Target,
		RunsPerSuccess:         parameter.RunsPerSuccess,
		ResolutionDelayTicks:   parameter.ResolutionDelayTicks,
		CountdownTicks:         parameter.CountdownTicks,
		CountdownSteps:         parameter.CountdownSteps,
		DeliveryTrailLength:    parameter.DeliveryTrailLength,
		StruckTrailLength:      parameter.StruckTrailLength,
		SpeedSchedule:          schedule,
		FielderLayout:          layout,
	}
}

// Playfield is the full rectangle the struck ball may travel in
func (t Tuning) Playfield() core.Area {
	return core.Area{Width: t.FieldWidth, Height: t.FieldHeight}
}

// Fielding is the rectangle fielders are clamped to
func (t Tuning) Fielding() core.Area {
	return core.Area{
		X:      t.FieldingInsetX,
		Y:      t.FieldingInsetTop,
		Width:  t.FieldWidth - 2*t.FieldingInsetX,
		Height: t.FieldHeight - t.FieldingInsetTop - t.FieldingInsetBottom,
	}
}

// Validate guards the construction-time invariants
func (t Tuning) Validate() error {
	if t.FieldWidth <= 0 || t.FieldHeight <= 0 {
		return fmt.Errorf("%w: field %dx%d", ErrInvalidPlayfield, t.FieldWidth, t.FieldHeight)
	}
	fielding := t.Fielding()
	if fielding.Width <= 0 || fielding.Height <= 0 || !fielding.Inside(t.Playfield()) {
		return fmt.Errorf("%w: fielding rectangle %+v", ErrInvalidPlayfield, fielding)
	}
	if !t.Playfield().Contains(t.BatsmanX, t.BatsmanY) {
		return fmt.Errorf("%w: batsman (%v,%v) off the field", ErrInvalidPlayfield, t.BatsmanX, t.BatsmanY)
	}
	if t.DeliverySpawnY >= t.BatsmanY-t.WindowOffset-t.WindowHalfWidth {
		return fmt.Errorf("%w: delivery spawns inside or below the window", ErrInvalidPlayfield)
	}

	if t.Attempts <= 0 {
		return fmt.Errorf("%w: attempts %d", ErrInvalidTuning, t.Attempts)
	}
	if t.Target <= 0 || t.Target > t.Attempts {
		return fmt.Errorf("%w: target %d with %d attempts", ErrTargetUnreachable, t.Target, t.Attempts)
	}
	if len(t.SpeedSchedule) < t.Attempts {
		return fmt.Errorf("%w: %d entries for %d attempts", ErrScheduleTooShort, len(t.SpeedSchedule), t.Attempts)
	}
	for i, s := range t.SpeedSchedule {
		if s <= 0 {
			return fmt.Errorf("%w: speed_schedule[%d] = %v", ErrInvalidTuning, i, s)
		}
	}
	if len(t.FielderLayout) != parameter.FielderCount {
		return fmt.Errorf("%w: %d fielders, want %d", ErrInvalidTuning, len(t.FielderLayout), parameter.FielderCount)
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"window_half_width", t.WindowHalfWidth},
		{"deceptive_hit_speed", t.DeceptiveHitSpeed},
		{"clean_hit_speed", t.CleanHitSpeed},
		{"pursuit_speed", t.PursuitSpeed},
		{"protect_radius", t.ProtectRadius},
		{"capture_radius_deceptive", t.CaptureRadiusDeceptive},
		{"capture_radius_clean", t.CaptureRadiusClean},
		{"resolution_delay_ticks", float64(t.ResolutionDelayTicks)},
		{"countdown_ticks", float64(t.CountdownTicks)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	if t.CleanLaunchArc < 0 || t.Gravity < 0 || t.ExitMargin < 0 || t.MissMargin < 0 {
		return fmt.Errorf("%w: negative arc, gravity or margin", ErrInvalidTuning)
	}
	if t.FielderDamping < 0 || t.FielderDamping > 1 {
		return fmt.Errorf("%w: fielder_damping %v outside [0,1]", ErrInvalidTuning, t.FielderDamping)
	}
	if t.DeceptiveChance < 0 || t.DeceptiveChance > 1 {
		return fmt.Errorf("%w: deceptive_chance %v outside [0,1]", ErrInvalidTuning, t.DeceptiveChance)
	}
	if t.CountdownSteps <= 0 || t.CountdownSteps > t.CountdownTicks {
		return fmt.Errorf("%w: countdown_steps %d for %d ticks", ErrInvalidTuning, t.CountdownSteps, t.CountdownTicks)
	}
	return nil
}
