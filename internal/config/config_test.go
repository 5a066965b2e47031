package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	content := "menu_bin: /usr/local/bin/radux-menu\ncli_config: /home/me/.config/radux/alt.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.MenuBin != "/usr/local/bin/radux-menu" {
		t.Errorf("menu_bin: got %q", s.MenuBin)
	}
	if s.CLIConfig != "/home/me/.config/radux/alt.json" {
		t.Errorf("cli_config: got %q", s.CLIConfig)
	}
}

func TestLoadFile_MissingIsNotAnError(t *testing.T) {
	s, err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing settings file should yield zero settings, got: %v", err)
	}
	if s != (Settings{}) {
		t.Errorf("expected zero settings, got %+v", s)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	if err := os.WriteFile(path, []byte("menu_bin: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestPath_HonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "radux", "launch.yaml"); path != want {
		t.Errorf("got %q, want %q", path, want)
	}
}
