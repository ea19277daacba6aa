package stocktracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Setenv(envConfigDir, t.TempDir())

	t.Run("no arguments", func(t *testing.T) {
		if _, err := NewConfig(nil); !HasKind(err, NoCommand) {
			t.Errorf("NewConfig(nil) = %v, want NoCommand", err)
		}
		if _, err := NewConfig([]string{"stt"}); !HasKind(err, NoCommand) {
			t.Errorf("NewConfig without verb = %v, want NoCommand", err)
		}
	})

	t.Run("invalid verb", func(t *testing.T) {
		if _, err := NewConfig([]string{"stt", "frobnicate"}); !HasKind(err, CommandInvalid) {
			t.Errorf("got %v, want CommandInvalid", err)
		}
	})

	t.Run("too few arguments", func(t *testing.T) {
		_, err := NewConfig([]string{"stt", "create-user"})
		if !HasKind(err, ArgumentsTooFew) {
			t.Fatalf("got %v, want ArgumentsTooFew", err)
		}
		if want := "too few arguments provided for create-user"; err.Error() != want {
			t.Errorf("error message %q, want %q", err.Error(), want)
		}
	})

	t.Run("remainder collected verbatim", func(t *testing.T) {
		cfg, err := NewConfig([]string{"stt", "edit-user", "alice", "fn", "Alice"})
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}
		if cfg.Command != EditUser {
			t.Errorf("command = %v, want EditUser", cfg.Command)
		}
		want := []string{"alice", "fn", "Alice"}
		if len(cfg.Remainder) != len(want) {
			t.Fatalf("remainder = %v, want %v", cfg.Remainder, want)
		}
		for i := range want {
			if cfg.Remainder[i] != want[i] {
				t.Errorf("remainder[%d] = %q, want %q", i, cfg.Remainder[i], want[i])
			}
		}
	})

	t.Run("extra arguments are allowed", func(t *testing.T) {
		cfg, err := NewConfig([]string{"stt", "login", "alice", "ignored"})
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}
		if len(cfg.Remainder) != 2 {
			t.Errorf("remainder = %v, want 2 entries", cfg.Remainder)
		}
	})
}

func TestNewConfig_Directory(t *testing.T) {
	t.Run("environment override", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "conf")
		t.Setenv(envConfigDir, dir)

		cfg, err := NewConfig([]string{"stt", "logout"})
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}
		if cfg.Dir != dir {
			t.Errorf("dir = %q, want %q", cfg.Dir, dir)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("configuration directory was not created: %v", err)
		}
	})

	t.Run("home-relative default", func(t *testing.T) {
		t.Setenv(envConfigDir, "")
		home := t.TempDir()
		t.Setenv("HOME", home)

		cfg, err := NewConfig([]string{"stt", "logout"})
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}
		if want := filepath.Join(home, ".stocktracker"); cfg.Dir != want {
			t.Errorf("dir = %q, want %q", cfg.Dir, want)
		}
	})
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{Dir: "/tmp/conf"}
	if got, want := cfg.UserMapPath(), filepath.Join("/tmp/conf", "users.json"); got != want {
		t.Errorf("UserMapPath() = %q, want %q", got, want)
	}
	if got, want := cfg.StockMapPath(), filepath.Join("/tmp/conf", "stocks.json"); got != want {
		t.Errorf("StockMapPath() = %q, want %q", got, want)
	}
	if got, want := cfg.StatePath(), filepath.Join("/tmp/conf", "state.json"); got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
}
