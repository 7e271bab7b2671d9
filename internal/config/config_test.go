package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
attribution: "test data"
color: "#112233"
render_size: 256
output_dir: build
layers:
  - name: island
    rows:
      - "##"
      - "##"
    render: true
  - name: coast
    color: "#445566"
    render_size: 640
    attribution: "coast survey"
    project: true
    rows:
      - "#."
    properties:
      kind: shoreline
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputDir != "build" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if len(cfg.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(cfg.Layers))
	}

	island := cfg.Layers[0]
	if island.Name != "island" || !island.Render || island.Project {
		t.Errorf("island layer parsed wrong: %+v", island)
	}
	// root fallbacks
	if island.Color != "#112233" || island.RenderSize != 256 || island.Attribution != "test data" {
		t.Errorf("island fallbacks not applied: %+v", island)
	}
	if len(island.Rows) != 2 || island.Rows[0] != "##" {
		t.Errorf("island rows parsed wrong: %v", island.Rows)
	}

	coast := cfg.Layers[1]
	// explicit values win over root fallbacks
	if coast.Color != "#445566" || coast.RenderSize != 640 || coast.Attribution != "coast survey" {
		t.Errorf("coast overrides not kept: %+v", coast)
	}
	if !coast.Project {
		t.Error("coast project flag lost")
	}
	if coast.Properties["kind"] != "shoreline" {
		t.Errorf("coast properties parsed wrong: %v", coast.Properties)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("layers: {not a list"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
