package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-road/internal/config"
)

func TestResolveHostKeyCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKey() = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestResolveHostKeyDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if want := filepath.Join(home, ".road", "host_key"); got != want {
		t.Errorf("resolveHostKey() = %q, expected %q", got, want)
	}
}

func TestNewSSHServerRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Road.Timing.TickRate = 0

	if _, err := NewSSHServer(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSSHServer() error = %v, expected ErrInvalid", err)
	}
}

func TestNewSSHServerAddr(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:2299"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.closeStore()

	if srv.Addr() != "127.0.0.1:2299" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:2299", srv.Addr())
	}
	if srv.store == nil {
		t.Error("runs database should be open")
	}
}

func TestRuntimeFor(t *testing.T) {
	cfg := config.DefaultRoadConfig()
	rc := RuntimeFor(cfg, 100, 30)

	if rc.ScreenW != 100 || rc.ScreenH != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", rc.ScreenW, rc.ScreenH)
	}
	if rc.TickRate != cfg.Timing.TickRate || rc.ReleaseAfter != cfg.Timing.ReleaseAfter() {
		t.Errorf("timing not taken from config: %+v", rc)
	}
}
