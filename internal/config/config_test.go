package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grouping.Enabled {
		t.Error("expected grouping to be disabled by default")
	}
	if cfg.Grouping.MaxVerticesPerGroup != 65536 {
		t.Errorf("expected group budget 65536, got %d", cfg.Grouping.MaxVerticesPerGroup)
	}
	if cfg.Export.OutputDir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Export.OutputDir)
	}
	if cfg.Export.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Export.Precision)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sculpttool.yaml")

	content := `grouping:
  enabled: true
  max_vertices_per_group: 1024
export:
  output_dir: /tmp/out
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if !cfg.Grouping.Enabled {
		t.Error("expected grouping enabled")
	}
	if cfg.Grouping.MaxVerticesPerGroup != 1024 {
		t.Errorf("expected group budget 1024, got %d", cfg.Grouping.MaxVerticesPerGroup)
	}
	if cfg.Export.OutputDir != "/tmp/out" {
		t.Errorf("expected output dir /tmp/out, got %s", cfg.Export.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	// Values absent from the file keep their defaults.
	if cfg.Export.Precision != 6 {
		t.Errorf("expected default precision 6, got %d", cfg.Export.Precision)
	}
}

func TestSaveTo(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "sculpttool.yaml")

	cfg := Default()
	cfg.Grouping.Enabled = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if !loaded.Grouping.Enabled {
		t.Error("expected round-tripped grouping enabled")
	}
}
