package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
runtime:
  fixed_step: 8ms
  max_steps_per_frame: 120
demos:
  spring:
    stiffness: 180
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Runtime.FixedStep != 8*time.Millisecond {
		t.Fatalf("expected fixed step 8ms, got %v", cfg.Runtime.FixedStep)
	}
	if cfg.Runtime.MaxStepsPerFrame != 120 {
		t.Fatalf("expected 120 steps, got %d", cfg.Runtime.MaxStepsPerFrame)
	}
	if cfg.Runtime.VelocityWindow != 100*time.Millisecond {
		t.Fatalf("expected default window to survive, got %v", cfg.Runtime.VelocityWindow)
	}
	sp, _ := cfg.Tuning("spring")
	if sp.Stiffness != 180 || sp.Damping != 24 {
		t.Fatalf("expected stiffness override with default damping, got %+v", sp)
	}
}

func TestParseRejectsBadStiffness(t *testing.T) {
	_, err := Parse([]byte("demos:\n  overscroll:\n    stiffness: 0\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "demos.overscroll.stiffness" {
		t.Fatalf("expected field error for demos.overscroll.stiffness, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("runtime: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactile.yaml")
	if err := os.WriteFile(path, []byte("runtime:\n  reduced_motion: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Runtime.ReducedMotion {
		t.Fatal("expected reduced motion to be enabled")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("expected defaults without a config file, got %v", err)
	}
	if cfg.Runtime.FixedStep != 4*time.Millisecond {
		t.Fatalf("expected default fixed step, got %v", cfg.Runtime.FixedStep)
	}

	if _, err := Resolve(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected an explicit missing path to fail, got %v", err)
	}

	if err := os.WriteFile(DefaultPath, []byte("demos:\n  snap:\n    stiffness: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid from the default file, got %v", err)
	}
}

func TestSet(t *testing.T) {
	cfg := Default()
	if err := cfg.Assign("momentum", "friction = 0.9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ := cfg.Tuning("momentum")
	if m.FrictionPerFrame != 0.9 {
		t.Fatalf("expected friction 0.9, got %v", m.FrictionPerFrame)
	}

	if err := cfg.Set("momentum", "stiffness", "-1"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if m, _ := cfg.Tuning("momentum"); m.Stiffness != 290 {
		t.Fatalf("expected rejected update to leave stiffness alone, got %v", m.Stiffness)
	}
	if err := cfg.Assign("momentum", "stiffness"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing value, got %v", err)
	}
	if err := cfg.Set("nope", "k", "1"); !errors.Is(err, ErrUnknownDemo) {
		t.Fatalf("expected ErrUnknownDemo, got %v", err)
	}
	if err := cfg.Set("spring", "damping", "soft"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for non-number, got %v", err)
	}
	if err := cfg.Assign("spring", "mass=3"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown field, got %v", err)
	}
}

func TestTuningHelpers(t *testing.T) {
	sp, _ := Default().Tuning("snap")
	if r := sp.Params().DampingRatio(); r < 0.999 || r > 1.001 {
		t.Fatalf("expected snap spring critically damped, got ratio %v", r)
	}
	if sp.Lambda() <= 0 {
		t.Fatalf("expected positive lambda, got %v", sp.Lambda())
	}
}
