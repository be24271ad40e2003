package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/laserbox/pkg/buildinfo"
	"github.com/matzehuels/laserbox/pkg/cache"
	"github.com/matzehuels/laserbox/pkg/config"
	errs "github.com/matzehuels/laserbox/pkg/errors"
	lbio "github.com/matzehuels/laserbox/pkg/io"
	"github.com/matzehuels/laserbox/pkg/observability"
	"github.com/matzehuels/laserbox/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	ts := httptest.NewServer(newServer(runner, config.Default(), logger).routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var info buildinfo.Info
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatal(err)
	}
	if info != buildinfo.Current() {
		t.Errorf("healthz = %+v, want %+v", info, buildinfo.Current())
	}
}

func TestServePuzzle(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		query       string
		contentType string
		contains    string
	}{
		{"default svg", "", "image/svg+xml", "<svg"},
		{"handdrawn", "?style=handdrawn", "image/svg+xml", "hd-rough"},
		{"json", "?format=json", "application/json", `"seed": 7`},
		{"no label", "?label=false", "image/svg+xml", "<svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/puzzles/7"+tt.query)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
			if resp.Header.Get("X-Laserbox-Id") == "" {
				t.Error("missing X-Laserbox-Id")
			}
			if c := resp.Header.Get("X-Laserbox-Complete"); c != "true" && c != "false" {
				t.Errorf("X-Laserbox-Complete = %q", c)
			}
		})
	}
}

func TestServePuzzleLabel(t *testing.T) {
	ts := newTestServer(t)

	_, with := get(t, ts.URL+"/puzzles/7")
	_, without := get(t, ts.URL+"/puzzles/7?label=false")
	if !strings.Contains(string(with), "Target") {
		t.Error("default render is missing the target label")
	}
	if strings.Contains(string(without), "Target") {
		t.Error("label=false still renders the target label")
	}
}

func TestServePuzzleDeterministic(t *testing.T) {
	ts := newTestServer(t)

	_, a := get(t, ts.URL+"/puzzles/12345?format=json")
	_, b := get(t, ts.URL+"/puzzles/12345?format=json")
	if string(a) != string(b) {
		t.Fatal("same seed served different puzzles")
	}
	l, err := lbio.UnmarshalJSON(a)
	if err != nil {
		t.Fatal(err)
	}
	if l.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", l.Seed)
	}
}

func TestServePuzzleBadRequest(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		path string
		code string
	}{
		{"seed not a number", "/puzzles/abc", "INVALID_SEED"},
		{"zero seed", "/puzzles/0", "INVALID_SEED"},
		{"format", "/puzzles/7?format=bmp", "INVALID_FORMAT"},
		{"dot for diagram", "/puzzles/7?format=dot", "INVALID_FORMAT"},
		{"style", "/puzzles/7?style=crayon", "INVALID_STYLE"},
		{"type", "/puzzles/7?type=ascii", "INVALID_VIZ_TYPE"},
		{"scale", "/puzzles/7?scale=big", "INVALID_INPUT"},
		{"NaN scale", "/puzzles/7?scale=NaN", "INVALID_INPUT"},
		{"infinite scale", "/puzzles/7?scale=Inf", "INVALID_INPUT"},
		{"label", "/puzzles/7?label=maybe", "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", resp.StatusCode, body)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatal(err)
			}
			if string(e.Code) != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
			if e.Error == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestServeNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Code != errs.ErrCodeNotFound {
		t.Errorf("code = %q, want %q", e.Code, errs.ErrCodeNotFound)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests int
	statuses []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestServeHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t)
	get(t, ts.URL+"/healthz")
	get(t, ts.URL+"/puzzles/abc")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusBadRequest {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}
