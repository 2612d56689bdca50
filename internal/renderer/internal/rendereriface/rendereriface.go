package rendereriface

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/input"
)

// ErrQuit is returned from Game.Update to stop RunGame cleanly
var ErrQuit = errors.New("quit requested")

// Image is a background texture loaded by the driver
type Image interface {
}

// Font is a font face loaded by the driver. Drivers may also implement
// io.Closer on it.
type Font interface {
}

// Game interface was copy-pasted out of Ebiten
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

type App interface {
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	RunGame(game Game) error
	NewImageFromImage(img image.Image) Image
	NewFont(ttf []byte, size float64) (Font, error)
	Input() input.Source
}

type Screen interface {
	// Clear fills the whole surface with black
	Clear()
	// DrawBackground stretches img over the whole surface
	DrawBackground(img Image)
	// DrawText draws s with its top-left corner at (x, y) and returns
	// the size of the drawn text.
	DrawText(s string, x, y float64, clr color.Color, font Font) (w, h float64, err error)
	// Present ends the frame
	Present()
}
