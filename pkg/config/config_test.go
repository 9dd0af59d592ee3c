package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
	if cfg.TopN != 10 || cfg.Resolution != 1.0 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "top_n: 5\nseed: 99\noutput: out.csv\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.TopN)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.Output != "out.csv" {
		t.Errorf("Output = %q, want out.csv", cfg.Output)
	}
	// Untouched fields keep their defaults
	if cfg.Resolution != 1.0 {
		t.Errorf("Resolution = %v, want 1.0", cfg.Resolution)
	}
	if len(cfg.RankPalette) == 0 {
		t.Error("RankPalette should keep its default")
	}
}

func TestLoad_InvalidTopN(t *testing.T) {
	path := writeConfig(t, "top_n: -3\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for negative top_n")
	}
}

func TestLoad_InvalidResolution(t *testing.T) {
	path := writeConfig(t, "resolution: 0\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for zero resolution")
	}
}

func TestLoad_BadHexColor(t *testing.T) {
	path := writeConfig(t, "rank_palette:\n  - not-a-color\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for malformed palette color")
	}
}

func TestLoad_MissingOtherBucket(t *testing.T) {
	path := writeConfig(t, "house_colors:\n  gryffindor: \"#AE0001\"\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error when house_colors drops the other bucket")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "top_n: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
}
