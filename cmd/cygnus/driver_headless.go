//go:build headless
// +build headless

package main

import (
	"time"

	"github.com/silbinarywolf/cygnus-x1/internal/config"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer/headless"
)

func getRenderDriver(cfg config.Config) renderer.App {
	return &headless.App{
		MaxFrames: cfg.HeadlessFrames,
		Tick:      time.Second / 60,
	}
}
