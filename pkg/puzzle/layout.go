package puzzle

import (
	"encoding/json"

	"github.com/google/uuid"
)

// idNamespace scopes layout IDs so they never collide with other UUIDv5 users.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/laserbox"))

// Layout is a generated puzzle: the accepted barriers in placement order plus
// the target. Layouts are never mutated after generation.
type Layout struct {
	ID          string
	Seed        uint64
	Box         Box
	Barriers    []Barrier
	Target      Target
	MirrorIndex int
	CenterIndex int
	Attempts    int
	Requested   int
}

// Complete reports whether all requested barriers were placed. A partial
// layout is still renderable, but callers should not present it as a full
// puzzle without saying so.
func (l Layout) Complete() bool { return len(l.Barriers) == l.Requested }

// Mirror returns the mirror barrier, if it was placed.
func (l Layout) Mirror() (Barrier, bool) {
	for _, b := range l.Barriers {
		if b.IsMirror() {
			return b, true
		}
	}
	return Barrier{}, false
}

// Generate builds a layout for cfg from a fresh [NewSource] seeded with seed.
// Barriers are placed first and the target is drawn afterwards from the same
// source. It fails only when cfg is invalid.
func Generate(cfg Config, seed uint64) (Layout, error) {
	g, err := NewGenerator(cfg, NewSource(seed))
	if err != nil {
		return Layout{}, err
	}

	p := g.Place()
	return Layout{
		ID:          LayoutID(cfg, seed),
		Seed:        seed,
		Box:         cfg.Box,
		Barriers:    p.Barriers,
		Target:      g.Target(),
		MirrorIndex: p.MirrorIndex,
		CenterIndex: p.CenterIndex,
		Attempts:    p.Attempts,
		Requested:   p.Requested,
	}, nil
}

// LayoutID returns the deterministic UUIDv5 identifying the layout that
// Generate(cfg, seed) produces.
func LayoutID(cfg Config, seed uint64) string {
	data, _ := json.Marshal(struct {
		Seed   uint64 `json:"seed"`
		Config Config `json:"config"`
	}{seed, cfg})
	return uuid.NewSHA1(idNamespace, data).String()
}
