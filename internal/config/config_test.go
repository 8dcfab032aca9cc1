package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/reveal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Path != "" {
		t.Errorf("Path = %q, want empty", r.Path)
	}
	if r.Profile != dial.DefaultProfile() {
		t.Errorf("Profile = %+v, want default", r.Profile)
	}
	if r.Timing != reveal.DefaultTiming {
		t.Errorf("Timing = %+v", r.Timing)
	}
	if r.TickUnit != display.TickMinute || r.Locale != "en" || r.Background != "" {
		t.Errorf("Resolved = %+v", r)
	}
}

func TestResolveOverrides(t *testing.T) {
	dir := writeConfig(t, `
profile: duo-rect
label:
  top: 24
needle: false
reveal:
  slide_in: 250ms
  hold: 2s
tick: second
locale: fr
background: art/strip.png
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Path != filepath.Join(dir, FileName) {
		t.Errorf("Path = %q", r.Path)
	}
	p := r.Profile
	if p.Name != "duo-rect+custom" || p.TileCount != 2 || p.Anchor != dial.AnchorLeft {
		t.Errorf("profile = %+v", p)
	}
	if p.LabelTop != 24 || p.ShowNeedle {
		t.Errorf("label top %d, needle %v", p.LabelTop, p.ShowNeedle)
	}
	want := reveal.Timing{SlideIn: 250 * time.Millisecond, Hold: 2 * time.Second, SlideOut: 200 * time.Millisecond}
	if r.Timing != want {
		t.Errorf("Timing = %+v, want %+v", r.Timing, want)
	}
	if r.TickUnit != display.TickSecond || r.Locale != "fr" {
		t.Errorf("tick %v locale %q", r.TickUnit, r.Locale)
	}
	if r.Background != filepath.Join(dir, "art", "strip.png") {
		t.Errorf("Background = %q", r.Background)
	}
}

func TestResolveProfileKeepsOverrides(t *testing.T) {
	dir := writeConfig(t, `
profile: duo-rect
label:
  top: 24
reveal:
  hold: 1s
`)
	r, err := ResolveProfile(dir, "quad-round")
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	p := r.Profile
	if p.Name != "quad-round+custom" || p.TileCount != 4 || p.Shape != dial.ShapeRound {
		t.Errorf("profile = %+v", p)
	}
	if p.LabelTop != 24 {
		t.Errorf("LabelTop = %d, want 24 from the file", p.LabelTop)
	}
	if r.Timing.Hold != time.Second {
		t.Errorf("Hold = %v, want 1s", r.Timing.Hold)
	}

	if _, err := ResolveProfile(dir, "hex"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestResolveCustomScreen(t *testing.T) {
	dir := writeConfig(t, `
profile: quad-rect
screen: {width: 200, height: 228, shape: round}
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	p := r.Profile
	if p.Width != 200 || p.Height != 228 || p.Shape != dial.ShapeRound {
		t.Errorf("screen = %dx%d %v", p.Width, p.Height, p.Shape)
	}
	if p.LabelLeft != 102 || p.LabelWidth != 98 {
		t.Errorf("label left/width = %d/%d, want 102/98", p.LabelLeft, p.LabelWidth)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "profile: [", "failed to parse"},
		{"unknown profile", "profile: hex", `unknown profile "hex"`},
		{"three tiles", "tiles: {count: 3}", "tile count"},
		{"gap", "profile: duo-rect\ntiles: {anchor: center}", "gap"},
		{"bad anchor", "tiles: {anchor: right}", "tiles.anchor"},
		{"bad shape", "screen: {shape: hex}", "screen.shape"},
		{"negative hold", "reveal: {hold: -1s}", "negative duration"},
		{"bad tick", "tick: hour", "unknown tick unit"},
		{"label offscreen", "label: {top: 200}", "outside screen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			var de *errors.DialError
			if !stderrors.As(err, &de) || de.Kind != errors.KindConfig {
				t.Errorf("error %v is not a config DialError", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Error("Load of a missing file should fail")
	}
	cfg, err := LoadOptional(t.TempDir())
	if err != nil || cfg == nil {
		t.Errorf("LoadOptional = %v, %v", cfg, err)
	}
}

func TestResolvedOptions(t *testing.T) {
	r, err := (&Config{Locale: "de", Tick: "second"}).Resolve(".")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(r.Options(nil)); n != 3 {
		t.Errorf("Options(nil) returned %d options, want 3", n)
	}
	if r.LogValue().Kind().String() != "Group" {
		t.Errorf("LogValue kind = %v", r.LogValue().Kind())
	}
}
