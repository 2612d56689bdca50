// config holds the runtime options for the game, loaded from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/input"
	"github.com/silbinarywolf/cygnus-x1/internal/log"
)

const (
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Cygnus x-1"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel log.Level `env:"CYGNUS_LOG_LEVEL" envDefault:"info"`

	WindowWidth  int    `env:"CYGNUS_WINDOW_WIDTH"  envDefault:"1200"`
	WindowHeight int    `env:"CYGNUS_WINDOW_HEIGHT" envDefault:"600"`
	WindowTitle  string `env:"CYGNUS_WINDOW_TITLE"  envDefault:"Cygnus x-1"`

	// AssetDir points at a directory holding title_screen.png, stage_N.png
	// and font.ttf. When empty, backgrounds are generated and the fonts
	// fall back to Go Regular.
	AssetDir string `env:"CYGNUS_ASSET_DIR"`

	// ScoreIncrement is how many points a single key press is worth.
	ScoreIncrement int                `env:"CYGNUS_SCORE_INCREMENT" envDefault:"1"`
	Escape         input.EscapeAction `env:"CYGNUS_ESCAPE"          envDefault:"exit"`
	// GameOver switches between entering game over once the stage table
	// is exhausted and the older keep-playing behaviour.
	GameOver bool `env:"CYGNUS_GAME_OVER" envDefault:"true"`

	// FlickerMinInterval is a floor on the title flicker interval. Zero
	// keeps the frame-delta based interval as-is.
	FlickerMinInterval time.Duration `env:"CYGNUS_FLICKER_MIN_INTERVAL" envDefault:"0s"`

	// HeadlessFrames stops a headless build after N frames. Zero runs
	// until quit.
	HeadlessFrames int `env:"CYGNUS_HEADLESS_FRAMES" envDefault:"0"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		LogLevel:       log.LevelInfo,
		WindowWidth:    DefaultWindowWidth,
		WindowHeight:   DefaultWindowHeight,
		WindowTitle:    DefaultWindowTitle,
		ScoreIncrement: 1,
		Escape:         input.EscapeExit,
		GameOver:       true,
	}
}

// Load parses the environment on top of the defaults and validates the result.
func Load() (Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith is Load with explicit env options, so tests can supply their
// own environment map.
func LoadWith(opts env.Options) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return errors.Wrapf(ErrInvalid, "window size %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.ScoreIncrement < 0 {
		return errors.Wrapf(ErrInvalid, "score increment %d is negative", cfg.ScoreIncrement)
	}
	if !cfg.Escape.Valid() {
		return errors.Wrapf(ErrInvalid, "escape action %q", cfg.Escape)
	}
	if cfg.FlickerMinInterval < 0 {
		return errors.Wrapf(ErrInvalid, "flicker min interval %v is negative", cfg.FlickerMinInterval)
	}
	if cfg.HeadlessFrames < 0 {
		return errors.Wrapf(ErrInvalid, "headless frames %d is negative", cfg.HeadlessFrames)
	}
	return nil
}
