// headless is the headless mode driver for the game so we can run and
// test it without building the ebiten library in.
package headless

import (
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/silbinarywolf/cygnus-x1/internal/input"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
)

var _ renderer.App = new(App)

var (
	ErrClosedFont = errors.New("headless: font used after close")
	ErrWrongFont  = errors.New("headless: font was not created by this driver")
)

type App struct {
	// MaxFrames stops RunGame after this many frames, zero runs until
	// the game quits.
	MaxFrames int
	// Tick is the time between frames. Zero runs frames back to back.
	Tick time.Duration

	Width, Height int
	Title         string

	// Queue is the input source handed to the game
	Queue input.Queue
	// Screen collects the draw calls of the most recent frame
	Screen Screen

	frames int
}

func (app *App) SetWindowSize(width, height int) {
	app.Width, app.Height = width, height
}

func (app *App) SetWindowTitle(title string) {
	app.Title = title
}

func (app *App) Input() input.Source {
	return &app.Queue
}

// Frames is how many frames RunGame has run.
func (app *App) Frames() int {
	return app.frames
}

func (app *App) RunGame(game renderer.Game) error {
	var tick <-chan time.Time
	if app.Tick > 0 {
		ticker := time.NewTicker(app.Tick)
		defer ticker.Stop()
		tick = ticker.C
	}
	for app.MaxFrames == 0 || app.frames < app.MaxFrames {
		if tick != nil {
			<-tick
		}
		err := game.Update()
		if errors.Cause(err) == renderer.ErrQuit {
			return nil
		}
		if err != nil {
			return err
		}
		app.Screen.reset()
		game.Draw(&app.Screen)
		app.frames++
	}
	return nil
}

func (app *App) NewImageFromImage(img image.Image) renderer.Image {
	return &Image{Bounds: img.Bounds()}
}

// NewFont parses the TrueType data so headless runs fail on bad fonts
// the same way the real driver would, and so text can be measured.
func (app *App) NewFont(ttf []byte, size float64) (renderer.Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create font face")
	}
	return &Font{Size: size, face: face}, nil
}

// Image stands in for a texture, only its size is kept
type Image struct {
	Bounds image.Rectangle
}

// Font is a measured font face. Using it after Close is reported as
// ErrClosedFont instead of crashing.
type Font struct {
	Size   float64
	face   font.Face
	closed atomic.Bool
}

func (f *Font) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	return f.face.Close()
}

func (f *Font) Closed() bool {
	return f.closed.Load()
}

func (f *Font) measure(s string) (w, h float64) {
	w = float64(font.MeasureString(f.face, s).Ceil())
	h = float64(f.face.Metrics().Height.Ceil())
	return w, h
}

// OpKind is the type of a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota + 1
	OpBackground
	OpText
	OpPresent
)

// Op is a single recorded draw call
type Op struct {
	Kind  OpKind
	Image renderer.Image
	Text  string
	X, Y  float64
	Color color.Color
	Font  renderer.Font
}

// Screen records draw calls instead of drawing them
type Screen struct {
	Ops []Op
}

var _ renderer.Screen = new(Screen)

func (screen *Screen) reset() {
	screen.Ops = screen.Ops[:0]
}

func (screen *Screen) Clear() {
	screen.Ops = append(screen.Ops, Op{Kind: OpClear})
}

func (screen *Screen) DrawBackground(img renderer.Image) {
	screen.Ops = append(screen.Ops, Op{Kind: OpBackground, Image: img})
}

func (screen *Screen) DrawText(s string, x, y float64, clr color.Color, f renderer.Font) (float64, float64, error) {
	headlessFont, ok := f.(*Font)
	if !ok || headlessFont == nil {
		return 0, 0, errors.Wrapf(ErrWrongFont, "%T", f)
	}
	if headlessFont.Closed() {
		return 0, 0, ErrClosedFont
	}
	screen.Ops = append(screen.Ops, Op{Kind: OpText, Text: s, X: x, Y: y, Color: clr, Font: f})
	w, h := headlessFont.measure(s)
	return w, h, nil
}

func (screen *Screen) Present() {
	screen.Ops = append(screen.Ops, Op{Kind: OpPresent})
}

// Texts returns the strings drawn, in order.
func (screen *Screen) Texts() []string {
	var r []string
	for _, op := range screen.Ops {
		if op.Kind == OpText {
			r = append(r, op.Text)
		}
	}
	return r
}

// Count returns how many ops of the given kind were recorded.
func (screen *Screen) Count(kind OpKind) int {
	n := 0
	for _, op := range screen.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
