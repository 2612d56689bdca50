package ebiten

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/input"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

var ErrWrongFont = errors.New("ebiten: font was not created by this driver")

// keyMap maps the ebiten keys we care about onto input keys
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyDigit1:  input.Key1,
	ebiten.KeyNumpad1: input.Key1,
	ebiten.KeyDigit2:  input.Key2,
	ebiten.KeyNumpad2: input.Key2,
	ebiten.KeySpace:   input.KeySpace,
	ebiten.KeyEscape:  input.KeyEscape,
}

type App struct {
	queue input.Queue
	keys  []ebiten.Key
}

type ebitenGameAndScreen struct {
	rendereriface.Game
	app          *App
	screenDriver Screen
}

func (game *ebitenGameAndScreen) Update() error {
	game.app.pollEvents()
	err := game.Game.Update()
	if errors.Cause(err) == rendereriface.ErrQuit {
		return ebiten.Termination
	}
	return err
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.screen = screen
	game.Game.Draw(&game.screenDriver)
}

// pollEvents turns this tick's key presses and close requests into
// discrete events.
func (app *App) pollEvents() {
	if ebiten.IsWindowBeingClosed() {
		app.queue.Push(input.Quit())
	}
	app.keys = inpututil.AppendJustPressedKeys(app.keys[:0])
	for _, key := range app.keys {
		if k, ok := keyMap[key]; ok {
			app.queue.Push(input.KeyDown(k))
		}
	}
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) Input() input.Source {
	return &app.queue
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	return ebiten.NewImageFromImage(img)
}

func (app *App) NewFont(ttf []byte, size float64) (rendereriface.Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return &text.GoTextFace{
		Source: source,
		Size:   size,
	}, nil
}

func (app *App) RunGame(game rendereriface.Game) error {
	// closing the window becomes a quit event rather than an exit
	ebiten.SetWindowClosingHandled(true)
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	gameWrapper.app = app
	return ebiten.RunGame(&gameWrapper)
}

type Screen struct {
	screen *ebiten.Image
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) Clear() {
	driver.screen.Fill(color.Black)
}

func (driver *Screen) DrawBackground(img rendereriface.Image) {
	src, ok := img.(*ebiten.Image)
	if !ok || src == nil {
		return
	}
	srcBounds := src.Bounds()
	dstBounds := driver.screen.Bounds()
	if srcBounds.Dx() == 0 || srcBounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(dstBounds.Dx())/float64(srcBounds.Dx()),
		float64(dstBounds.Dy())/float64(srcBounds.Dy()),
	)
	driver.screen.DrawImage(src, op)
}

func (driver *Screen) DrawText(s string, x, y float64, clr color.Color, font rendereriface.Font) (float64, float64, error) {
	face, ok := font.(*text.GoTextFace)
	if !ok || face == nil {
		return 0, 0, errors.Wrapf(ErrWrongFont, "%T", font)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(driver.screen, s, face, op)
	w, h := text.Measure(s, face, 0)
	return w, h, nil
}

// Present is a no-op, ebiten presents once Draw returns
func (driver *Screen) Present() {
}
