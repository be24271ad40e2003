package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

func generate(t *testing.T, seed uint64) puzzle.Layout {
	t.Helper()
	l, err := puzzle.Generate(puzzle.DefaultConfig(), seed)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return l
}

func TestRoundTrip(t *testing.T) {
	for _, seed := range []uint64{1, 42, 1234} {
		l := generate(t, seed)

		var buf bytes.Buffer
		if err := WriteJSON(l, &buf); err != nil {
			t.Fatalf("WriteJSON() error: %v", err)
		}
		got, err := ReadJSON(&buf)
		if err != nil {
			t.Fatalf("ReadJSON() error: %v", err)
		}
		if !reflect.DeepEqual(got, l) {
			t.Errorf("seed %d: round trip mismatch:\ngot  %+v\nwant %+v", seed, got, l)
		}
	}
}

func TestOutputContractFields(t *testing.T) {
	l := generate(t, 42)
	data, err := MarshalJSON(l, "simple")
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	for _, key := range []string{"id", "seed", "box", "barriers", "target", "complete", "mirror_index", "center_index"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("document missing %q", key)
		}
	}
	if raw["style"] != "simple" {
		t.Errorf("style = %v, want simple", raw["style"])
	}

	barriers := raw["barriers"].([]any)
	for i, item := range barriers {
		b := item.(map[string]any)
		for _, key := range []string{"x1", "y1", "x2", "y2", "is_mirror", "angle"} {
			if _, ok := b[key]; !ok {
				t.Errorf("barrier %d missing %q", i, key)
			}
		}
		_, hasFacing := b["facing"]
		if b["is_mirror"] == true && !hasFacing {
			t.Errorf("mirror barrier %d missing facing", i)
		}
		if b["is_mirror"] == false && hasFacing {
			t.Errorf("plain barrier %d has facing", i)
		}
	}
}

func TestReadJSONMinimalRecord(t *testing.T) {
	in := `{
	  "box": {"width": 56, "height": 35},
	  "requested": 1,
	  "barriers": [{"x1": 10, "y1": 17.5, "x2": 15, "y2": 17.5, "is_mirror": true, "angle": 0, "facing": 1}],
	  "target": {"x": 56, "y": 12}
	}`

	l, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if len(l.Barriers) != 1 || !l.Complete() {
		t.Fatalf("barriers = %d, complete = %v", len(l.Barriers), l.Complete())
	}
	b := l.Barriers[0]
	if b.Center.X != 12.5 || b.Center.Y != 17.5 || b.Length != 5 {
		t.Errorf("derived center/length = %v/%v, want (12.5, 17.5)/5", b.Center, b.Length)
	}
	if !b.IsMirror() || b.Facing != 1 {
		t.Errorf("barrier = %+v, want mirror facing 1", b)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errs.Code
	}{
		{"malformed", `{"box":`, errs.ErrCodeInvalidInput},
		{"bad box", `{"box": {"width": 0, "height": 35}}`, errs.ErrCodeInvalidDimensions},
		{"mirror without facing", `{"box": {"width": 56, "height": 35}, "barriers": [{"is_mirror": true}]}`, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errs.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestImportExport(t *testing.T) {
	l := generate(t, 7)
	path := filepath.Join(t.TempDir(), "puzzle.json")

	if err := ExportJSON(l, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if got.ID != l.ID || len(got.Barriers) != len(l.Barriers) {
		t.Errorf("imported layout differs: id %s vs %s", got.ID, l.ID)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}
