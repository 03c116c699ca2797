package main

import (
	"testing"

	"blochsim/internal/config"
)

func TestBuildConfigLeavesPresetUntouched(t *testing.T) {
	preset = "wm"
	t1 = 2.5
	flipDeg = 30
	defer func() {
		preset = ""
		t1 = 0
		flipDeg = 0
	}()

	cfg, err := buildConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tissue.T1 != 2.5 || cfg.Sequence.FlipDeg != 30 {
		t.Errorf("overrides not applied: t1=%v flip=%v", cfg.Tissue.T1, cfg.Sequence.FlipDeg)
	}

	stored := config.GetPreset("wm")
	if stored.Tissue.T1 != 0.832 {
		t.Errorf("preset t1 mutated to %v", stored.Tissue.T1)
	}
	if stored.Sequence.FlipDeg != 8 {
		t.Errorf("preset flip mutated to %v", stored.Sequence.FlipDeg)
	}
}

func TestBuildConfigUnknownPreset(t *testing.T) {
	preset = "bone"
	defer func() { preset = "" }()

	if _, err := buildConfig(); err == nil {
		t.Error("expected error for unknown preset")
	}
}
