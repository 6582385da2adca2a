package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/niber/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Inspect.Port != DefaultInspectPort {
		t.Errorf("Inspect.Port = %d, want %d", cfg.Inspect.Port, DefaultInspectPort)
	}
	if cfg.Inspect.Host != DefaultInspectHost {
		t.Errorf("Inspect.Host = %q, want %q", cfg.Inspect.Host, DefaultInspectHost)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E141") {
		t.Fatalf("Load() on empty dir error = %v, want E141", err)
	}

	writeFile(t, tmpDir, JSONFileName, `{
  "log": {"level": "debug", "format": "json"},
  "metrics": {"enabled": true},
  "inspect": {"port": 9090}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := &Config{
		Log:     LogConfig{Level: "debug", Format: "json"},
		Metrics: MetricsConfig{Enabled: true, Namespace: DefaultNamespace},
		Tracing: TracingConfig{TracerName: DefaultTracerName},
		Render:  RenderConfig{Indent: "  "},
		Inspect: InspectConfig{Host: DefaultInspectHost, Port: 9090},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Path() != filepath.Join(tmpDir, JSONFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, TOMLFileName, `
[log]
level = "warn"

[render]
pretty = true
indent = "\t"

[inspect]
host = "0.0.0.0"
port = 8081
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if !cfg.Render.Pretty || cfg.Render.Indent != "\t" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if got := cfg.InspectAddress(); got != "0.0.0.0:8081" {
		t.Errorf("InspectAddress() = %q", got)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, JSONFileName, `{"inspect": {"port": 1111}}`)
	writeFile(t, tmpDir, TOMLFileName, "[inspect]\nport = 2222\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Inspect.Port != 1111 {
		t.Errorf("Inspect.Port = %d, want 1111", cfg.Inspect.Port)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
	}{
		{"invalid json", "bad.json", `{"log":`, "E120"},
		{"invalid toml", "bad.toml", "[log\nlevel=", "E120"},
		{"bad port", "port.json", `{"inspect": {"port": 70000}}`, "E122"},
		{"bad level", "level.json", `{"log": {"level": "loud"}}`, "E122"},
		{"bad format", "format.toml", "[log]\nformat = \"xml\"\n", "E122"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.file, tt.content)
			_, err := LoadFile(path)
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("LoadFile() error = %v, want %s", err, tt.wantCode)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.json")); !errors.HasCode(err, "E141") {
		t.Errorf("LoadFile(missing) error = %v, want E141", err)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"out.json", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			cfg.Inspect.Port = 4000
			cfg.Log.Level = "debug"

			path := filepath.Join(tmpDir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if diff := cmp.Diff(cfg, loaded, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("expected JSON record, got %s", out)
	}

	buf.Reset()
	cfg.Log.Format = "text"
	cfg.Logger(&buf).Error("boom")
	if !strings.Contains(buf.String(), "msg=boom") {
		t.Errorf("expected text record, got %s", buf.String())
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, TOMLFileName, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}
