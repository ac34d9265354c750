package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default tuning invalid: %v", err)
	}

	want := []float64{8, 6, 7, 9, 4, 10}
	if len(d.SpeedSchedule) != len(want) {
		t.Fatalf("schedule length %d, want %d", len(d.SpeedSchedule), len(want))
	}
	for i := range want {
		if d.SpeedSchedule[i] != want[i] {
			t.Errorf("schedule[%d] = %v, want %v", i, d.SpeedSchedule[i], want[i])
		}
	}

	f := d.Fielding()
	if f.X != 20 || f.Y != 60 || f.X+f.Width != 580 || f.Y+f.Height != 580 {
		t.Errorf("Fielding = %+v, want x 20..580, y 60..580", f)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.SpeedSchedule[0] = 99
	a.FielderLayout[0][0] = 99

	b := Default()
	if b.SpeedSchedule[0] == 99 || b.FielderLayout[0][0] == 99 {
		t.Error("Default() must not share slices between calls")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   error
	}{
		{"short schedule", func(t *Tuning) { t.SpeedSchedule = t.SpeedSchedule[:3] }, ErrScheduleTooShort},
		{"unreachable target", func(t *Tuning) { t.Target = t.Attempts + 1 }, ErrTargetUnreachable},
		{"zero target", func(t *Tuning) { t.Target = 0 }, ErrTargetUnreachable},
		{"zero attempts", func(t *Tuning) { t.Attempts = 0 }, ErrInvalidTuning},
		{"negative speed", func(t *Tuning) { t.SpeedSchedule[2] = -1 }, ErrInvalidTuning},
		{"nine fielders", func(t *Tuning) { t.FielderLayout = t.FielderLayout[:9] }, ErrInvalidTuning},
		{"zero field", func(t *Tuning) { t.FieldWidth = 0 }, ErrInvalidPlayfield},
		{"fielding collapsed", func(t *Tuning) { t.FieldingInsetX = 300 }, ErrInvalidPlayfield},
		{"batsman off field", func(t *Tuning) { t.BatsmanY = 900 }, ErrInvalidPlayfield},
		{"spawn in window", func(t *Tuning) { t.DeliverySpawnY = 570 }, ErrInvalidPlayfield},
		{"damping above one", func(t *Tuning) { t.FielderDamping = 1.2 }, ErrInvalidTuning},
		{"chance above one", func(t *Tuning) { t.DeceptiveChance = 1.5 }, ErrInvalidTuning},
		{"zero capture", func(t *Tuning) { t.CaptureRadiusClean = 0 }, ErrInvalidTuning},
		{"zero delay", func(t *Tuning) { t.ResolutionDelayTicks = 0 }, ErrInvalidTuning},
		{"steps exceed ticks", func(t *Tuning) { t.CountdownSteps = t.CountdownTicks + 1 }, ErrInvalidTuning},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := Default()
			tc.mutate(&tun)
			err := tun.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
window_half_width: 20
speed_schedule: [5, 5, 5, 5, 5, 5, 5]
attempts: 7
`)
	tun, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tun.WindowHalfWidth != 20 {
		t.Errorf("WindowHalfWidth = %v, want 20", tun.WindowHalfWidth)
	}
	if tun.Attempts != 7 || len(tun.SpeedSchedule) != 7 {
		t.Errorf("attempts/schedule not applied: %d/%d", tun.Attempts, len(tun.SpeedSchedule))
	}
	if tun.Gravity != Default().Gravity {
		t.Error("unspecified keys should keep defaults")
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("difficulty: hard\n")); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestParseEmpty(t *testing.T) {
	tun, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty document should yield defaults: %v", err)
	}
	if tun.Target != Default().Target {
		t.Error("empty document changed defaults")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tun, err := Load("")
	if err != nil || tun.Attempts != Default().Attempts {
		t.Fatalf("Load(\"\") = %+v, %v", tun, err)
	}

	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("attempts: 3\ntarget: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tun, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tun.Attempts != 3 || tun.Target != 3 {
		t.Errorf("Load = attempts %d target %d", tun.Attempts, tun.Target)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("target: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrTargetUnreachable) {
		t.Errorf("Load(bad) = %v, want ErrTargetUnreachable", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	out, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	tun, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) failed: %v", err)
	}
	if tun.FielderLayout[9] != Default().FielderLayout[9] {
		t.Errorf("layout mismatch: %v", tun.FielderLayout[9])
	}
}
