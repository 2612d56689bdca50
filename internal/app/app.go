package app

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/silbinarywolf/cygnus-x1/internal/asset"
	"github.com/silbinarywolf/cygnus-x1/internal/config"
	"github.com/silbinarywolf/cygnus-x1/internal/effect"
	"github.com/silbinarywolf/cygnus-x1/internal/fontguard"
	"github.com/silbinarywolf/cygnus-x1/internal/frame"
	"github.com/silbinarywolf/cygnus-x1/internal/frametime"
	"github.com/silbinarywolf/cygnus-x1/internal/input"
	"github.com/silbinarywolf/cygnus-x1/internal/log"
	"github.com/silbinarywolf/cygnus-x1/internal/monotime"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
	"github.com/silbinarywolf/cygnus-x1/internal/session"
	"github.com/silbinarywolf/cygnus-x1/internal/stage"
)

// frameLogInterval is how many frames pass between frame time log lines
const frameLogInterval = 600

// SetupError is returned when the game could not be set up. Anything
// created before the failure has already been torn down.
type SetupError struct {
	Step string
	Err  error
}

func (err *SetupError) Error() string {
	return "setup: " + err.Step + ": " + err.Err.Error()
}

func (err *SetupError) Unwrap() error {
	return err.Err
}

// Options are the collaborators that tests swap out. Zero values use
// the real ones.
type Options struct {
	Clock monotime.Clock
	Table stage.Table
	// Layout defaults to frame.DefaultLayout
	Layout *frame.Layout
	// Assets overrides Config.AssetDir
	Assets fs.FS
}

// App is the game loop context. It owns everything the loop touches so
// nothing lives in package globals.
type App struct {
	renderer.App

	cfg        config.Config
	log        *log.Logger
	clock      monotime.Clock
	assets     fs.FS
	input      input.Source
	translator input.Translator

	session *session.State
	effect  *effect.Timer
	fonts   fontguard.Guard
	frame   *frame.Renderer

	frameTime frametime.Tracker
	lastMode  session.Mode
	lastStage int
	isSetup   bool
	released  bool
}

func New(driver renderer.App, cfg config.Config, logger *log.Logger, options Options) *App {
	if logger == nil {
		logger = log.Default()
	}
	clock := options.Clock
	if clock == nil {
		clock = monotime.System{}
	}
	layout := frame.DefaultLayout
	if options.Layout != nil {
		layout = *options.Layout
	}
	assets := options.Assets
	if assets == nil && cfg.AssetDir != "" {
		assets = os.DirFS(cfg.AssetDir)
	}
	onExhausted := session.ExhaustGameOver
	if !cfg.GameOver {
		onExhausted = session.ExhaustKeepPlaying
	}
	app := &App{
		App:        driver,
		cfg:        cfg,
		log:        logger,
		clock:      clock,
		assets:     assets,
		input:      driver.Input(),
		translator: input.NewTranslator(cfg.ScoreIncrement, cfg.Escape),
		session: session.New(session.Options{
			Table:       options.Table,
			OnExhausted: onExhausted,
		}),
		effect: effect.New(cfg.FlickerMinInterval),
	}
	app.frame = frame.New(layout, asset.Backgrounds{}, &app.fonts, logger)
	app.lastMode = app.session.Mode()
	app.lastStage = app.session.StageIndex()
	return app
}

func (app *App) Session() *session.State {
	return app.session
}

func (app *App) Effect() *effect.Timer {
	return app.effect
}

func (app *App) Fonts() *fontguard.Guard {
	return &app.fonts
}

// Setup loads backgrounds and fonts. On failure it tears down whatever
// it had created and returns a *SetupError.
func (app *App) Setup() error {
	app.log.Infof("loading backgrounds")
	bg, err := asset.LoadBackgrounds(app.App, app.assets, app.session.Table().Len())
	if err != nil {
		app.Teardown()
		return &SetupError{Step: "backgrounds", Err: err}
	}
	app.frame.Backgrounds = bg
	app.released = false
	app.log.Infof("loaded %d stage backgrounds", len(bg.Stages))

	if err := app.loadFonts(); err != nil {
		app.Teardown()
		return &SetupError{Step: "fonts", Err: err}
	}
	app.isSetup = true
	return nil
}

// loadFonts parses both fonts in parallel. Parsing happens outside the
// guard, only installing the handle takes it.
func (app *App) loadFonts() error {
	data, err := asset.FontData(app.assets)
	if err != nil {
		return err
	}
	var g errgroup.Group
	for slot, size := range map[fontguard.Slot]float64{
		fontguard.SlotTitle:    asset.TitleFontSize,
		fontguard.SlotGameplay: asset.GameplayFontSize,
	} {
		slot, size := slot, size
		g.Go(func() error {
			app.log.Infof("loading %v at %vpt", slot, size)
			f, err := app.NewFont(data, size)
			if err != nil {
				return errors.Wrapf(err, "load %v", slot)
			}
			if err := app.fonts.Install(slot, f); err != nil {
				return err
			}
			app.log.Infof("%v loaded", slot)
			return nil
		})
	}
	return g.Wait()
}

// Teardown releases fonts and backgrounds. It is safe to call on a
// partially set up App and more than once.
func (app *App) Teardown() {
	if err := app.fonts.Close(); err != nil {
		app.log.Errorf("closing fonts: %v", err)
	}
	if !app.released {
		bg := app.frame.Backgrounds
		for i, img := range bg.Stages {
			if deallocate(img) {
				app.log.Debugf("released stage %d background", i+1)
			}
		}
		if deallocate(bg.Title) {
			app.log.Debugf("released title background")
		}
		app.released = true
	}
	if app.isSetup {
		app.log.Infof("all cleaned up")
	}
	app.isSetup = false
}

// deallocate frees GPU memory for drivers whose images support it.
func deallocate(img renderer.Image) bool {
	if d, ok := img.(interface{ Deallocate() }); ok {
		d.Deallocate()
		return true
	}
	return img != nil
}

// Update runs one tick of game logic: input, stage advance, effect
// timer. It returns renderer.ErrQuit once the game should exit.
func (app *App) Update() error {
	app.translator.Drain(app.input, app.session)
	app.session.TickStageAdvance()
	now := app.clock.Now()
	app.effect.Advance(now)
	app.frameTime.Observe(now)
	if n := app.frameTime.Frames(); n > 0 && n%frameLogInterval == 0 {
		app.log.Debugf("frame time %v (%.1f fps)", app.frameTime.Average(), app.frameTime.FPS())
	}
	app.logTransitions()
	if app.session.ShouldExit() {
		app.log.Infof("exiting game")
		return renderer.ErrQuit
	}
	return nil
}

func (app *App) logTransitions() {
	mode, number := app.session.Mode(), app.session.StageIndex()
	if mode != app.lastMode {
		app.log.Infof("%v -> %v", app.lastMode, mode)
	} else if mode == session.ModePlaying && number != app.lastStage {
		app.log.Infof("stage %d -> %d", app.lastStage, number)
	}
	app.lastMode, app.lastStage = mode, number
}

func (app *App) Draw(screen renderer.Screen) {
	app.frame.Draw(screen, app.session, app.effect.Phase())
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return app.cfg.WindowWidth, app.cfg.WindowHeight
}

// Run sets up the game on driver, runs it until quit and tears it down.
func Run(driver renderer.App, cfg config.Config, logger *log.Logger) error {
	app := New(driver, cfg, logger, Options{})
	app.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	app.SetWindowTitle(cfg.WindowTitle)
	if err := app.Setup(); err != nil {
		return err
	}
	defer app.Teardown()
	app.log.Infof("entering game loop")
	if err := app.RunGame(app); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
