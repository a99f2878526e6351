package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.App.Name == "" || cfg.App.WindowWidth <= 0 || cfg.App.WindowHeight <= 0 {
		t.Errorf("incomplete app defaults: %+v", cfg.App)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path missing")
	}
	if cfg.Timer.DefaultMinutes <= 0 {
		t.Errorf("default timer minutes = %d", cfg.Timer.DefaultMinutes)
	}
}

func TestManager_CreatesDefaultConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	manager, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := os.Stat(manager.configPath); err != nil {
		t.Errorf("config file not written: %v", err)
	}
	if manager.GetConfig().App.Name != DefaultConfig().App.Name {
		t.Error("fresh manager must carry defaults")
	}
}

func TestManager_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	manager, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	timer := manager.GetConfig().Timer
	timer.DefaultMinutes = 50
	timer.NotificationSound = false
	if err := manager.UpdateTimerConfig(timer); err != nil {
		t.Fatalf("UpdateTimerConfig failed: %v", err)
	}

	reloaded, err := NewManager()
	if err != nil {
		t.Fatalf("second NewManager failed: %v", err)
	}
	got := reloaded.GetConfig().Timer
	if got.DefaultMinutes != 50 || got.NotificationSound {
		t.Errorf("timer config did not round-trip: %+v", got)
	}
}

func TestDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != filepath.Join(home, ".study-planner") {
		t.Errorf("dir = %s", dir)
	}
}
