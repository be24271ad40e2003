package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/io"
)

func TestGenerateWritesArtifacts(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := execute(t, "generate", "-s", "7", "-f", "svg,json", "-o", dir)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "puzzle-7.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg artifact is not an SVG document")
	}

	l, err := io.ImportJSON(filepath.Join(dir, "puzzle-7.json"))
	if err != nil {
		t.Fatal(err)
	}
	if l.Seed != 7 {
		t.Errorf("json seed = %d, want 7", l.Seed)
	}

	for _, want := range []string{"Puzzle", "barriers", "target", "puzzle-7.svg", "laserbox render"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateCount(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := execute(t, "generate", "-s", "100", "-n", "3", "-o", dir, "--table=false"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, name := range []string{"puzzle-100.svg", "puzzle-101.svg", "puzzle-102.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	isolate(t)
	a, b := t.TempDir(), t.TempDir()

	if _, err := execute(t, "generate", "-s", "21", "-o", a, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "generate", "-s", "21", "-o", b, "--no-cache"); err != nil {
		t.Fatal(err)
	}

	first, _ := os.ReadFile(filepath.Join(a, "puzzle-21.svg"))
	second, _ := os.ReadFile(filepath.Join(b, "puzzle-21.svg"))
	if len(first) == 0 || !bytes.Equal(first, second) {
		t.Error("same seed produced different SVGs")
	}
}

func TestGenerateRandomSeed(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := execute(t, "generate", "-o", dir, "--table=false"); err != nil {
		t.Fatal(err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "puzzle-*.svg"))
	if len(matches) != 1 {
		t.Errorf("got %d svg files, want 1", len(matches))
	}
}

func TestGenerateSkipsUnsupportedFormat(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := execute(t, "generate", "-s", "3", "-f", "svg,dot", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Skipping dot") {
		t.Errorf("expected skip warning:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "puzzle-3.dot")); !os.IsNotExist(err) {
		t.Error("dot file written for diagram type")
	}
}

func TestGenerateInvalidFlags(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"format", []string{"-f", "bmp"}, errs.ErrCodeInvalidFormat},
		{"style", []string{"--style", "crayon"}, errs.ErrCodeInvalidStyle},
		{"type", []string{"-t", "ascii"}, errs.ErrCodeInvalidVizType},
		{"width", []string{"--width=-1"}, errs.ErrCodeInvalidDimensions},
		{"count", []string{"-n", "0"}, errs.ErrCodeInvalidInput},
		{"zero seed", []string{"-s", "0"}, errs.ErrCodeInvalidSeed},
		{"seed overflows count", []string{"-s", "18446744073709551615", "-n", "2"}, errs.ErrCodeInvalidSeed},
		{"NaN scale", []string{"--scale", "NaN"}, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "-o", t.TempDir()}, tt.args...)
			_, err := execute(t, args...)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRandomSeedNonZero(t *testing.T) {
	for range 100 {
		s := randomSeed()
		if s == 0 || s > 1<<63 {
			t.Fatalf("randomSeed() = %d, want in [1, 2^63]", s)
		}
	}
}
