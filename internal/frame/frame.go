// frame decides what gets drawn each frame for the current session mode.
package frame

import (
	"fmt"

	"github.com/silbinarywolf/cygnus-x1/internal/asset"
	"github.com/silbinarywolf/cygnus-x1/internal/fontguard"
	"github.com/silbinarywolf/cygnus-x1/internal/log"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
	"github.com/silbinarywolf/cygnus-x1/internal/session"
)

type Renderer struct {
	Layout      Layout
	Backgrounds asset.Backgrounds
	Fonts       *fontguard.Guard
	Log         *log.Logger
}

func New(layout Layout, backgrounds asset.Backgrounds, fonts *fontguard.Guard, logger *log.Logger) *Renderer {
	return &Renderer{
		Layout:      layout,
		Backgrounds: backgrounds,
		Fonts:       fonts,
		Log:         logger,
	}
}

// Draw renders one frame. Elements that can't be drawn (missing
// background, unloaded font, failed text draw) are logged and skipped,
// the rest of the frame still goes out. It returns how many were
// skipped.
func (r *Renderer) Draw(screen renderer.Screen, state *session.State, phase bool) int {
	skipped := 0
	screen.Clear()
	switch state.Mode() {
	case session.ModeTitle:
		skipped += r.drawTitle(screen, phase)
	case session.ModePlaying:
		skipped += r.drawPlaying(screen, state)
	case session.ModeGameOver:
		skipped += r.drawGameOver(screen)
	}
	screen.Present()
	return skipped
}

func (r *Renderer) drawTitle(screen renderer.Screen, phase bool) int {
	skipped := 0
	if r.Backgrounds.Title != nil {
		screen.DrawBackground(r.Backgrounds.Title)
	} else {
		r.Log.Warnf("title background is not loaded")
		skipped++
	}
	err := r.Fonts.With(fontguard.SlotTitle, func(font renderer.Font) error {
		skipped += r.drawLayered(screen, r.Layout.Title, font)
		if !phase {
			return nil
		}
		for _, corner := range r.Layout.Corners {
			skipped += r.drawLayered(screen, corner, font)
		}
		return nil
	})
	if err != nil {
		r.Log.Warnf("skipping title text: %v", err)
		skipped++
	}
	return skipped
}

func (r *Renderer) drawPlaying(screen renderer.Screen, state *session.State) int {
	skipped := 0
	number := state.StageIndex()
	if bg, ok := r.Backgrounds.Stage(number); ok {
		screen.DrawBackground(bg)
	} else {
		r.Log.Warnf("invalid stage or missing background for stage %d", number)
		skipped++
	}
	// the HUD is drawn even without a background

	stageText := fmt.Sprintf("Stage: %d", number)
	pointsText := fmt.Sprintf("Points: %d / %d", state.Points(), state.PointsNeeded())
	err := r.Fonts.With(fontguard.SlotGameplay, func(font renderer.Font) error {
		skipped += r.drawText(screen, stageText, Layer{Pos: r.Layout.StagePos, Color: r.Layout.HUDColor}, font)
		skipped += r.drawText(screen, pointsText, Layer{Pos: r.Layout.PointsPos, Color: r.Layout.HUDColor}, font)
		return nil
	})
	if err != nil {
		r.Log.Warnf("skipping stage text: %v", err)
		skipped++
	}
	return skipped
}

func (r *Renderer) drawGameOver(screen renderer.Screen) int {
	skipped := 0
	err := r.Fonts.With(fontguard.SlotTitle, func(font renderer.Font) error {
		skipped += r.drawLayered(screen, r.Layout.GameOver, font)
		return nil
	})
	if err != nil {
		r.Log.Warnf("skipping game over text: %v", err)
		skipped++
	}
	return skipped
}

// drawLayered must be called with the font guard held.
func (r *Renderer) drawLayered(screen renderer.Screen, text LayeredText, font renderer.Font) int {
	skipped := 0
	for _, layer := range text.Layers {
		skipped += r.drawText(screen, text.Text, layer, font)
	}
	return skipped
}

func (r *Renderer) drawText(screen renderer.Screen, s string, layer Layer, font renderer.Font) int {
	if _, _, err := screen.DrawText(s, layer.Pos[0], layer.Pos[1], layer.Color, font); err != nil {
		r.Log.Warnf("could not draw %q: %v", s, err)
		return 1
	}
	return 0
}
