// cygnus runs the Cygnus X-1 game. Build with -tags headless to run
// without a window.
package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/app"
	"github.com/silbinarywolf/cygnus-x1/internal/config"
	"github.com/silbinarywolf/cygnus-x1/internal/log"
)

func main() {
	logger := log.Default()
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	if err := app.Run(getRenderDriver(cfg), cfg, logger); err != nil {
		var setupErr *app.SetupError
		if errors.As(err, &setupErr) {
			logger.Errorf("could not start: %v", err)
		} else {
			logger.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
