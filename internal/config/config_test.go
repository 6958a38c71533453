package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	herrors "github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/element"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.Dir != DefaultDir {
		t.Errorf("Serve.Dir = %q, want %q", cfg.Serve.Dir, DefaultDir)
	}
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, DefaultRegion)
	}
	if cfg.IndentSize() != element.DefaultIndent {
		t.Errorf("IndentSize() = %d, want %d", cfg.IndentSize(), element.DefaultIndent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	if _, err := Load(tmpDir); err == nil {
		t.Error("Expected error for missing config")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "render": {
    "indent": 0,
    "singleLine": true
  },
  "serve": {
    "port": 8080,
    "dir": "pages",
    "watch": true
  },
  "publish": {
    "bucket": "site",
    "prefix": "docs/"
  }
}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IndentSize() != 0 {
		t.Errorf("IndentSize() = %d, want 0", cfg.IndentSize())
	}
	if !cfg.Render.SingleLine {
		t.Error("Render.SingleLine should be true")
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want 8080", cfg.Serve.Port)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want default %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.Dir != "pages" || !cfg.Serve.Watch {
		t.Errorf("Serve = %+v", cfg.Serve)
	}
	if cfg.Publish.Bucket != "site" || cfg.Publish.Prefix != "docs/" || cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"not json", `{"serve": `, "E040"},
		{"negative indent", `{"render": {"indent": -2}}`, "render.indent"},
		{"port out of range", `{"serve": {"port": 70000}}`, "serve.port"},
		{"bad log level", `{"log": {"level": "loud"}}`, "log.level"},
		{"bad log format", `{"log": {"format": "xml"}}`, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()
		cfg, err := Discover(t.TempDir())
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}
		if cfg.Serve.Port != DefaultPort {
			t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
		}
	})

	t.Run("prefers the local file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"serve":{"port":9000}}`), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Discover(dir)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Serve.Port != 9000 {
			t.Errorf("Serve.Port = %d, want 9000", cfg.Serve.Port)
		}
	})

	t.Run("reads the user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		xdg.Reload()
		if err := os.MkdirAll(filepath.Join(home, "html5el"), 0755); err != nil {
			t.Fatal(err)
		}
		userPath := filepath.Join(home, "html5el", ConfigFileName)
		if err := os.WriteFile(userPath, []byte(`{"publish":{"bucket":"user-site"}}`), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Discover(t.TempDir())
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Publish.Bucket != "user-site" {
			t.Errorf("Publish.Bucket = %q, want user-site", cfg.Publish.Bucket)
		}
		if cfg.Path() != userPath {
			t.Errorf("Path() = %q, want %q", cfg.Path(), userPath)
		}
	})

	t.Run("invalid local file is an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`nope`), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Discover(dir)
		if !errors.Is(err, herrors.ErrConfig) {
			t.Errorf("Discover() err = %v, want a config error", err)
		}
	})
}

func TestSaveTo(t *testing.T) {
	cfg := New()
	indent := 2
	cfg.Render.Indent = &indent
	cfg.Publish.Bucket = "site"

	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.IndentSize() != 2 || loaded.Publish.Bucket != "site" {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	if err := New().Save(); err == nil {
		t.Error("Save() without a path should fail")
	}
}

func TestElementOptions(t *testing.T) {
	cfg := New()
	indent := 1
	cfg.Render.Indent = &indent
	cfg.Render.SingleLine = true

	e, err := element.New("div", cfg.ElementOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	if e.IndentSize() != 1 || !e.IsSingleLine() {
		t.Errorf("element = %#v", e)
	}
}

func TestServeAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = 8080
	if got := cfg.ServeAddress(); got != "0.0.0.0:8080" {
		t.Errorf("ServeAddress() = %q", got)
	}
	if got := cfg.ServeURL(); got != "http://0.0.0.0:8080" {
		t.Errorf("ServeURL() = %q", got)
	}
}
