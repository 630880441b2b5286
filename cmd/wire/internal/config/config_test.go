package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brickingsoft/wire/cmd/wire/internal/config"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

func TestLoad_Default(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	field, err := cfg.Frame.LengthField()
	if err != nil {
		t.Fatal(err)
	}
	if field.Width != 4 || field.Order != bytebuffers.BigEndian || field.Signed {
		t.Fatal("unexpected default:", field)
	}
	if cfg.Log.Level != "info" {
		t.Fatal("unexpected level:", cfg.Log.Level)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.yaml")
	data := "frame:\n  width: 2\n  order: le\n  signed: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	field, _ := cfg.Frame.LengthField()
	if field.Width != 2 || field.Order != bytebuffers.LittleEndian || !field.Signed {
		t.Fatal("unexpected frame:", field)
	}
	if cfg.Log.Level != "debug" {
		t.Fatal("unexpected level:", cfg.Log.Level)
	}
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.yaml")
	if err := os.WriteFile(path, []byte("frame:\n  width: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frame.Width != 1 || cfg.Frame.Order != "big" || cfg.Log.Level != "info" {
		t.Fatal("defaults must survive a partial file:", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"width.yaml": "frame:\n  width: 9\n",
		"order.yaml": "frame:\n  order: middle\n",
		"yaml.yaml":  "frame: [\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := config.Load(path); err == nil {
			t.Error(name, "expected error")
		}
	}
	if _, err := config.Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
