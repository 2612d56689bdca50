package frame

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/silbinarywolf/cygnus-x1/internal/asset"
	"github.com/silbinarywolf/cygnus-x1/internal/fontguard"
	"github.com/silbinarywolf/cygnus-x1/internal/log"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer/headless"
	"github.com/silbinarywolf/cygnus-x1/internal/session"
)

type fixture struct {
	app    *headless.App
	fonts  *fontguard.Guard
	logBuf *bytes.Buffer
	r      *Renderer
}

func newFixture(t *testing.T, withFonts bool) *fixture {
	t.Helper()
	app := &headless.App{}
	bg, err := asset.LoadBackgrounds(app, nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	fonts := &fontguard.Guard{}
	if withFonts {
		for slot, size := range map[fontguard.Slot]float64{
			fontguard.SlotTitle:    asset.TitleFontSize,
			fontguard.SlotGameplay: asset.GameplayFontSize,
		} {
			f, err := app.NewFont(goregular.TTF, size)
			if err != nil {
				t.Fatal(err)
			}
			if err := fonts.Install(slot, f); err != nil {
				t.Fatal(err)
			}
		}
	}
	var buf bytes.Buffer
	logger := log.New(&buf, log.LevelDebug)
	return &fixture{
		app:    app,
		fonts:  fonts,
		logBuf: &buf,
		r:      New(DefaultLayout, bg, fonts, logger),
	}
}

func repeat(s string, n int) []string {
	r := make([]string, n)
	for i := range r {
		r[i] = s
	}
	return r
}

func TestTitleWithPhase(t *testing.T) {
	fx := newFixture(t, true)
	state := session.New(session.Options{})
	screen := &headless.Screen{}
	if skipped := fx.r.Draw(screen, state, true); skipped != 0 {
		t.Fatalf("skipped %d elements: %s", skipped, fx.logBuf.String())
	}
	if screen.Ops[0].Kind != headless.OpClear {
		t.Error("frame should start with a clear")
	}
	if screen.Ops[len(screen.Ops)-1].Kind != headless.OpPresent {
		t.Error("frame should end with present")
	}
	if screen.Count(headless.OpBackground) != 1 {
		t.Errorf("expected one background, got %d", screen.Count(headless.OpBackground))
	}
	want := append(repeat("cygnus ... x-1", 4), append(repeat("0001 ....", 3), repeat(".... 0010", 3)...)...)
	if got := screen.Texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("texts = %q\nexpected %q", got, want)
	}

	// last title layer is malachite at (450,100)
	var titleOps []headless.Op
	for _, op := range screen.Ops {
		if op.Kind == headless.OpText && op.Text == "cygnus ... x-1" {
			titleOps = append(titleOps, op)
		}
	}
	last := titleOps[len(titleOps)-1]
	if last.X != 450 || last.Y != 100 || last.Color != Malachite {
		t.Errorf("top title layer at (%v,%v) in %v", last.X, last.Y, last.Color)
	}
}

func TestTitleWithoutPhase(t *testing.T) {
	fx := newFixture(t, true)
	screen := &headless.Screen{}
	fx.r.Draw(screen, session.New(session.Options{}), false)
	if got := screen.Texts(); !reflect.DeepEqual(got, repeat("cygnus ... x-1", 4)) {
		t.Errorf("corners drawn with phase off: %q", got)
	}
}

func TestPlayingHUD(t *testing.T) {
	fx := newFixture(t, true)
	state := session.New(session.Options{})
	state.StartGame()
	state.AddPoints(10)
	state.TickStageAdvance()
	state.AddPoints(4)

	screen := &headless.Screen{}
	if skipped := fx.r.Draw(screen, state, true); skipped != 0 {
		t.Fatalf("skipped %d: %s", skipped, fx.logBuf.String())
	}
	if got := screen.Texts(); !reflect.DeepEqual(got, []string{"Stage: 2", "Points: 4 / 20"}) {
		t.Errorf("texts = %q", got)
	}
	stage2, _ := fx.r.Backgrounds.Stage(2)
	for _, op := range screen.Ops {
		if op.Kind == headless.OpBackground && op.Image != stage2 {
			t.Error("drew the wrong stage background")
		}
		if op.Kind == headless.OpText && op.Color != Malachite {
			t.Errorf("HUD text %q in %v", op.Text, op.Color)
		}
	}
}

func TestPlayingPastTheTableSkipsBackground(t *testing.T) {
	fx := newFixture(t, true)
	state := session.New(session.Options{OnExhausted: session.ExhaustKeepPlaying})
	state.StartGame()
	for _, needed := range []int{10, 20, 30} {
		state.AddPoints(needed)
		state.TickStageAdvance()
	}
	if state.Mode() != session.ModePlaying || state.StageIndex()-1 < state.Table().Len() {
		t.Fatalf("setup: mode %v stage %d", state.Mode(), state.StageIndex())
	}

	screen := &headless.Screen{}
	skipped := fx.r.Draw(screen, state, true)
	if skipped != 1 {
		t.Errorf("expected exactly the background to be skipped, got %d", skipped)
	}
	if screen.Count(headless.OpBackground) != 0 {
		t.Error("background drawn for an exhausted stage table")
	}
	if screen.Count(headless.OpText) != 2 {
		t.Error("HUD text should still be drawn")
	}
	if !strings.Contains(fx.logBuf.String(), "stage 4") {
		t.Errorf("skip not logged: %q", fx.logBuf.String())
	}
}

func TestDefaultLayoutLayers(t *testing.T) {
	if n := len(DefaultLayout.Title.Layers); n != 4 {
		t.Errorf("title has %d layers, expected 4", n)
	}
	for _, corner := range DefaultLayout.Corners {
		if n := len(corner.Layers); n != 3 {
			t.Errorf("corner %q has %d layers, expected 3", corner.Text, n)
		}
		for _, layer := range corner.Layers {
			if layer.Color == Yellow {
				t.Errorf("corner %q has a yellow layer", corner.Text)
			}
		}
	}
}

func TestMissingFontsAreSkipped(t *testing.T) {
	fx := newFixture(t, false)
	screen := &headless.Screen{}

	state := session.New(session.Options{})
	if skipped := fx.r.Draw(screen, state, true); skipped != 1 {
		t.Errorf("title: expected 1 skip, got %d", skipped)
	}
	if screen.Count(headless.OpText) != 0 {
		t.Error("text drawn without a font")
	}
	if n := strings.Count(fx.logBuf.String(), "font not loaded"); n != 1 {
		t.Errorf("expected the missing font to be logged once, got %d: %q", n, fx.logBuf.String())
	}

	state.StartGame()
	if skipped := fx.r.Draw(screen, state, true); skipped != 1 {
		t.Errorf("playing: expected 1 skip, got %d", skipped)
	}
}

func TestClosedFontIsSkipped(t *testing.T) {
	fx := newFixture(t, true)
	var title *headless.Font
	fx.fonts.With(fontguard.SlotTitle, func(f renderer.Font) error {
		title = f.(*headless.Font)
		return nil
	})
	title.Close()

	screen := &headless.Screen{}
	skipped := fx.r.Draw(screen, session.New(session.Options{}), false)
	if skipped != 4 {
		t.Errorf("expected all 4 title layers skipped, got %d", skipped)
	}
}

func TestGameOver(t *testing.T) {
	fx := newFixture(t, true)
	state := session.New(session.Options{})
	state.StartGame()
	for _, needed := range []int{10, 20, 30} {
		state.AddPoints(needed)
		state.TickStageAdvance()
	}
	screen := &headless.Screen{}
	fx.r.Draw(screen, state, true)
	if got := screen.Texts(); !reflect.DeepEqual(got, repeat("game over", 4)) {
		t.Errorf("texts = %q", got)
	}
	if screen.Count(headless.OpBackground) != 0 {
		t.Error("game over should not draw a background")
	}
}
