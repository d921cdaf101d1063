package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	body := `
columns = 4
padding = 16
addLabels = true
tilePrefix = "SCENE"
backgroundColor = "#101010"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	settings, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("loadSettingsFile() error: %v", err)
	}

	if got := settings["columns"]; got != int64(4) {
		t.Errorf("columns = %v (%T), want 4", got, got)
	}
	if got := settings["addLabels"]; got != true {
		t.Errorf("addLabels = %v, want true", got)
	}
	if got := settings["tilePrefix"]; got != "SCENE" {
		t.Errorf("tilePrefix = %v, want SCENE", got)
	}
}

func TestLoadSettingsFileMissing(t *testing.T) {
	if _, err := loadSettingsFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadSettingsFile() succeeded for a missing file")
	}
}

func TestLoadSettingsFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("columns = ["), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	if _, err := loadSettingsFile(path); err == nil {
		t.Error("loadSettingsFile() succeeded for malformed TOML")
	}
}
