package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemoScene(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.png")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-out", out, "-width", "64", "-height", "48", "-shader=false"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	for _, want := range []string{"demo scene", "vertices", "triangles", "mesh id", "gfxmesh mesh vertices", out} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, stdout.String())
		}
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("preview size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRunDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.toml")
	doc := "[[shapes]]\nkind = \"rect\"\nrect = [0.0, 0.0, 10.0, 10.0]\n"
	if err := os.WriteFile(in, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-in", in, "-shader=false", "-v"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "4 (128 bytes)") {
		t.Errorf("summary does not report 4 vertices:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "gfx: mesh created") {
		t.Errorf("verbose run logged nothing useful:\n%s", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("shapes:\n  - kind: polygon\n    points: [[0, 0], [1, 1]]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"extra args", []string{"foo"}},
		{"negative tolerance", []string{"-tolerance", "-1"}},
		{"missing file", []string{"-in", filepath.Join(dir, "nope.yaml")}},
		{"invalid shape", []string{"-in", bad}},
		{"bad size", []string{"-out", filepath.Join(dir, "x.png"), "-width", "0", "-shader=false"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Error("run succeeded")
			}
		})
	}

	var stderr bytes.Buffer
	if err := run([]string{"-h"}, &bytes.Buffer{}, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: err = %v", err)
	}
}
