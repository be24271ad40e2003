package render

import (
	"bytes"
	"testing"

	errs "github.com/matzehuels/laserbox/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestConvertMissingTool(t *testing.T) {
	prev := Converter
	Converter = "laserbox-no-such-converter"
	t.Cleanup(func() { Converter = prev })

	if CanConvert() {
		t.Fatal("CanConvert() = true for a missing tool")
	}
	if _, err := ToPDF([]byte(tinySVG)); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPDF err = %v, want UNSUPPORTED", err)
	}
}

func TestToPNGInvalidScale(t *testing.T) {
	if _, err := ToPNG([]byte(tinySVG), 0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestConvert(t *testing.T) {
	if !CanConvert() {
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG([]byte(tinySVG), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG did not return a PNG")
	}

	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF did not return a PDF")
	}
}
