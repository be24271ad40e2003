package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/geom"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// Document is the JSON form of a [puzzle.Layout].
type Document struct {
	ID          string     `json:"id"`
	Seed        uint64     `json:"seed"`
	Box         puzzle.Box `json:"box"`
	MirrorIndex int        `json:"mirror_index"`
	CenterIndex int        `json:"center_index"`
	Attempts    int        `json:"attempts"`
	Requested   int        `json:"requested"`
	Complete    bool       `json:"complete"`
	Barriers    []Barrier  `json:"barriers"`
	Target      Target     `json:"target"`
	Style       string     `json:"style,omitempty"`
}

// Barrier is the per-barrier output record.
type Barrier struct {
	X1       float64  `json:"x1"`
	Y1       float64  `json:"y1"`
	X2       float64  `json:"x2"`
	Y2       float64  `json:"y2"`
	IsMirror bool     `json:"is_mirror"`
	Angle    float64  `json:"angle"`
	Facing   int      `json:"facing,omitempty"`
	CX       *float64 `json:"cx,omitempty"`
	CY       *float64 `json:"cy,omitempty"`
	Length   *float64 `json:"length,omitempty"`
}

// Target is the target point record.
type Target struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromLayout converts a layout into its JSON document.
func FromLayout(l puzzle.Layout) Document {
	doc := Document{
		ID:          l.ID,
		Seed:        l.Seed,
		Box:         l.Box,
		MirrorIndex: l.MirrorIndex,
		CenterIndex: l.CenterIndex,
		Attempts:    l.Attempts,
		Requested:   l.Requested,
		Complete:    l.Complete(),
		Barriers:    make([]Barrier, len(l.Barriers)),
		Target:      Target{X: l.Target.X, Y: l.Target.Y},
	}
	for i, b := range l.Barriers {
		cx, cy, length := b.Center.X, b.Center.Y, b.Length
		doc.Barriers[i] = Barrier{
			X1: b.Segment.A.X, Y1: b.Segment.A.Y,
			X2: b.Segment.B.X, Y2: b.Segment.B.Y,
			IsMirror: b.IsMirror(),
			Angle:    b.Angle,
			Facing:   b.Facing,
			CX:       &cx,
			CY:       &cy,
			Length:   &length,
		}
	}
	return doc
}

// Layout converts the document back into a layout. It checks only what a
// renderer relies on: a positive box and mirror facings of ±1.
func (d Document) Layout() (puzzle.Layout, error) {
	if err := errs.ValidateBox(d.Box.Width, d.Box.Height); err != nil {
		return puzzle.Layout{}, err
	}

	l := puzzle.Layout{
		ID:          d.ID,
		Seed:        d.Seed,
		Box:         d.Box,
		Barriers:    make([]puzzle.Barrier, len(d.Barriers)),
		Target:      puzzle.Target{X: d.Target.X, Y: d.Target.Y},
		MirrorIndex: d.MirrorIndex,
		CenterIndex: d.CenterIndex,
		Attempts:    d.Attempts,
		Requested:   d.Requested,
	}
	for i, b := range d.Barriers {
		seg := geom.Seg(b.X1, b.Y1, b.X2, b.Y2)
		pb := puzzle.Barrier{
			Segment: seg,
			Center:  seg.Midpoint(),
			Angle:   b.Angle,
			Length:  seg.Length(),
		}
		if b.CX != nil && b.CY != nil {
			pb.Center = geom.Pt(*b.CX, *b.CY)
		}
		if b.Length != nil {
			pb.Length = *b.Length
		}
		if b.IsMirror {
			if b.Facing != 1 && b.Facing != -1 {
				return puzzle.Layout{}, errs.New(errs.ErrCodeInvalidInput, "barrier %d: mirror facing must be -1 or 1, got %d", i, b.Facing)
			}
			pb.Role = puzzle.Mirror
			pb.Facing = b.Facing
		}
		l.Barriers[i] = pb
	}
	return l, nil
}

// MarshalJSON encodes l as an indented JSON document. style is recorded for
// documentation and may be empty.
func MarshalJSON(l puzzle.Layout, style string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocument(&buf, l, style); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON document into a layout.
func UnmarshalJSON(data []byte) (puzzle.Layout, error) {
	return ReadJSON(bytes.NewReader(data))
}

// WriteJSON encodes l as JSON and writes it to w.
func WriteJSON(l puzzle.Layout, w io.Writer) error {
	return writeDocument(w, l, "")
}

func writeDocument(w io.Writer, l puzzle.Layout, style string) error {
	doc := FromLayout(l)
	doc.Style = style

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON document from r. It does not close r.
func ReadJSON(r io.Reader) (puzzle.Layout, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return puzzle.Layout{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode layout")
	}
	return doc.Layout()
}

// ImportJSON reads the JSON document at path.
func ImportJSON(path string) (puzzle.Layout, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return puzzle.Layout{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return puzzle.Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := ReadJSON(f)
	if err != nil {
		return puzzle.Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ExportJSON writes l as a JSON document to path.
func ExportJSON(l puzzle.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(l, f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
