package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir() returned empty string")
	}
	if !strings.Contains(dir, "xpkg") {
		t.Errorf("ConfigDir() should contain 'xpkg': %s", dir)
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	if !strings.HasPrefix(ConfigDir(), tmpDir) {
		t.Errorf("ConfigDir() should honor XDG_CONFIG_HOME: %s", ConfigDir())
	}
}

func TestDataDir(t *testing.T) {
	if dir := DataDir(); !strings.Contains(dir, "xpkg") {
		t.Errorf("DataDir() should contain 'xpkg': %s", dir)
	}
}

func TestConfigPath(t *testing.T) {
	if path := ConfigPath(); !strings.HasSuffix(path, "config.toml") {
		t.Errorf("ConfigPath() should end with 'config.toml': %s", path)
	}
}

func TestHistoryPath(t *testing.T) {
	if path := HistoryPath(); !strings.HasSuffix(path, "history.db") {
		t.Errorf("HistoryPath() should end with 'history.db': %s", path)
	}
}

func TestEnsureDataDir(t *testing.T) {
	originalXDG := os.Getenv("XDG_DATA_HOME")
	os.Setenv("XDG_DATA_HOME", t.TempDir())
	defer os.Setenv("XDG_DATA_HOME", originalXDG)

	if err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error: %v", err)
	}

	info, err := os.Stat(DataDir())
	if err != nil {
		t.Fatalf("data directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("DataDir is not a directory")
	}
}
