package frame

import (
	"image/color"

	"golang.org/x/image/math/f64"
)

// Palette used by the title and HUD text
var (
	Malachite    = color.RGBA{0, 255, 65, 255}
	IslamicGreen = color.RGBA{0, 143, 17, 255}
	DarkGreen    = color.RGBA{0, 59, 0, 255}
	Yellow       = color.RGBA{238, 210, 2, 255}
)

// Layer is one pass of a layered string: later layers draw on top.
type Layer struct {
	Pos   f64.Vec2
	Color color.RGBA
}

// LayeredText is a string drawn several times at small offsets to fake
// a glow / drop shadow.
type LayeredText struct {
	Text   string
	Layers []Layer
}

// Layout holds every hand-tuned position and color the renderer uses.
type Layout struct {
	Title LayeredText
	// Corners flicker with the effect phase. They use three layers each,
	// one fewer than Title; there is no yellow pass.
	Corners []LayeredText
	// GameOver is drawn with the title font once the stages run out
	GameOver LayeredText

	StagePos  f64.Vec2
	PointsPos f64.Vec2
	HUDColor  color.RGBA
}

// DefaultLayout is tuned for a 1200x600 window.
var DefaultLayout = Layout{
	Title: LayeredText{
		Text: "cygnus ... x-1",
		Layers: []Layer{
			{Pos: f64.Vec2{460, 110}, Color: DarkGreen},
			{Pos: f64.Vec2{455, 105}, Color: IslamicGreen},
			{Pos: f64.Vec2{445, 95}, Color: Yellow},
			{Pos: f64.Vec2{450, 100}, Color: Malachite},
		},
	},
	Corners: []LayeredText{
		{
			Text: "0001 ....",
			Layers: []Layer{
				{Pos: f64.Vec2{108, 480}, Color: DarkGreen},
				{Pos: f64.Vec2{100, 485}, Color: IslamicGreen},
				{Pos: f64.Vec2{91, 490}, Color: Malachite},
			},
		},
		{
			Text: ".... 0010",
			Layers: []Layer{
				{Pos: f64.Vec2{879, 480}, Color: DarkGreen},
				{Pos: f64.Vec2{876, 485}, Color: IslamicGreen},
				{Pos: f64.Vec2{867, 490}, Color: Malachite},
			},
		},
	},
	GameOver: LayeredText{
		Text: "game over",
		Layers: []Layer{
			{Pos: f64.Vec2{460, 260}, Color: DarkGreen},
			{Pos: f64.Vec2{455, 255}, Color: IslamicGreen},
			{Pos: f64.Vec2{445, 245}, Color: Yellow},
			{Pos: f64.Vec2{450, 250}, Color: Malachite},
		},
	},
	StagePos:  f64.Vec2{5, 10},
	PointsPos: f64.Vec2{10, 50},
	HUDColor:  Malachite,
}
