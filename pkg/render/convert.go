package render

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	errs "github.com/matzehuels/laserbox/pkg/errors"
)

// Converter is the librsvg command used for PNG and PDF output.
var Converter = "rsvg-convert"

// CanConvert reports whether [Converter] is on PATH.
func CanConvert() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

// ToPDF converts an SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG rasterizes an SVG document; scale 2 doubles the SVG's pixel size.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "png scale must be positive, got %g", scale)
	}
	return convert(svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convert(svg []byte, format string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(Converter)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeUnsupported, err,
			"%s output needs %s (brew install librsvg, or apt install librsvg2-bin)", format, Converter)
	}

	cmd := exec.Command(path, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "%s: %s", Converter, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
