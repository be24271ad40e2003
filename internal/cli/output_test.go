package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	errs "github.com/matzehuels/laserbox/pkg/errors"
)

func TestWriteArtifacts(t *testing.T) {
	captureStdout(t)
	dir := filepath.Join(t.TempDir(), "nested")

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")},
		formats:   []string{"json", "png", "svg"},
		dir:       dir,
		base:      puzzleBase(5),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(dir, "puzzle-5.json"), filepath.Join(dir, "puzzle-5.svg")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	data, err := os.ReadFile(want[1])
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("svg content = %q, %v", data, err)
	}
}

func TestWriteArtifactsInvalidPath(t *testing.T) {
	captureStdout(t)
	_, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil},
		formats:   []string{"svg"},
		dir:       t.TempDir(),
		base:      "bad\x01name",
	})
	if !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}
