package graphviz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/laserbox/pkg/puzzle"
)

func testLayout(t *testing.T) puzzle.Layout {
	t.Helper()
	l, err := puzzle.Generate(puzzle.DefaultConfig(), 42)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return l
}

func TestToDOT(t *testing.T) {
	l := testLayout(t)
	dot := ToDOT(l, Options{})

	for _, want := range []string{
		"graph G {",
		"layout=neato;",
		"inputscale=72;",
		`"grid-h-0-a" [pos="0,0!"];`,
		`"grid-v-3-b" [pos="560,350!"];`,
		`"center-line-a" [pos="0,175!"];`,
		`"laser-a" [pos="-30,175!"];`,
		`"laser-b" [pos="20,175!"];`,
		`arrowhead=normal`,
		`"target" [pos="560,`,
		`xlabel="Target\n(`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}

	for i, b := range l.Barriers {
		id := fmt.Sprintf("barrier-%d", i)
		if !strings.Contains(dot, fmt.Sprintf(`id=%q`, id)) {
			t.Errorf("ToDOT() missing edge %s", id)
		}
		if b.IsMirror() && !strings.Contains(dot, fmt.Sprintf(`id="tick-%d"`, i)) {
			t.Errorf("ToDOT() missing tick for mirror %d", i)
		}
	}
	if !strings.Contains(dot, `color="#00ffff"`) {
		t.Error("mirror edge should be cyan")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("ToDOT() should close the graph")
	}
}

func TestToDOT_Options(t *testing.T) {
	l := testLayout(t)

	dot := ToDOT(l, Options{PointsPerUnit: 1, NoLabel: true})
	if strings.Contains(dot, "xlabel") {
		t.Error("NoLabel should omit the target label")
	}
	if !strings.Contains(dot, `"grid-v-3-b" [pos="56,35!"];`) {
		t.Error("PointsPerUnit should scale positions")
	}
}

func TestFitToViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"points to user units",
			`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50"><g/></svg>`,
		},
		{
			"origin kept",
			`<svg viewBox="-4.50 -2.00 60.50 40.25"><g/></svg>`,
			`<svg xmlns="http://www.w3.org/2000/svg" width="60.5" height="40.25" viewBox="-4.5 -2 60.5 40.25"><g/></svg>`,
		},
		{"no viewBox", `<svg><g/></svg>`, `<svg><g/></svg>`},
		{"empty viewBox", `<svg viewBox="0 0 0 10"><g/></svg>`, `<svg viewBox="0 0 0 10"><g/></svg>`},
		{"not svg", `<g viewBox="0 0 1 1"/>`, `<g viewBox="0 0 1 1"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(fitToViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("fitToViewBox() = %s, want %s", got, tt.want)
			}
		})
	}
}
