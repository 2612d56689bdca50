//go:build !headless
// +build !headless

package main

import (
	"github.com/silbinarywolf/cygnus-x1/internal/config"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
	"github.com/silbinarywolf/cygnus-x1/internal/renderer/ebiten"
)

func getRenderDriver(cfg config.Config) renderer.App {
	return new(ebiten.App)
}
