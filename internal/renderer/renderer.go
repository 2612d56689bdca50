package renderer

import (
	"github.com/silbinarywolf/cygnus-x1/internal/renderer/internal/rendereriface"
)

// Image is a background loaded by the renderer
type Image = rendereriface.Image

// Font is a font face loaded by the renderer
type Font = rendereriface.Font

type Screen = rendereriface.Screen

type Game = rendereriface.Game

// App is the implementation of the renderer, picked by build tag in cmd/cygnus
type App = rendereriface.App

// ErrQuit is returned from Game.Update to end the run loop without error
var ErrQuit = rendereriface.ErrQuit
