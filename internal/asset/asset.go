// asset loads the backgrounds and font data the game draws with.
//
// Assets come from a directory when one is configured, otherwise the
// backgrounds are generated and the fonts use Go Regular.
package asset

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"strconv"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
)

const (
	TitleFontSize    = 92
	GameplayFontSize = 32

	// FontFile is the font looked up in an asset directory
	FontFile = "font.ttf"

	titleName = "title_screen"
)

var ErrMissing = errors.New("asset not found")

// imageExts are tried in order for each background
var imageExts = []string{".png", ".bmp"}

// Backgrounds holds the title screen and one image per stage
type Backgrounds struct {
	Title  renderer.Image
	Stages []renderer.Image
}

// Stage returns the background for a 1-based stage, or false when the
// stage has none.
func (bg Backgrounds) Stage(number int) (renderer.Image, bool) {
	if number < 1 || number > len(bg.Stages) {
		return nil, false
	}
	img := bg.Stages[number-1]
	return img, img != nil
}

// StageName is the file name (without extension) of a stage background.
func StageName(number int) string {
	return "stage_" + strconv.Itoa(number)
}

// LoadBackgrounds loads title_screen and stage_1..stage_n from fsys.
// With a nil fsys the images are generated.
func LoadBackgrounds(app renderer.App, fsys fs.FS, stages int) (Backgrounds, error) {
	var bg Backgrounds
	img, err := loadImage(fsys, titleName, titleColors)
	if err != nil {
		return Backgrounds{}, errors.Wrap(err, "title background")
	}
	bg.Title = app.NewImageFromImage(img)
	bg.Stages = make([]renderer.Image, stages)
	for i := range bg.Stages {
		img, err := loadImage(fsys, StageName(i+1), stageColors(i))
		if err != nil {
			return Backgrounds{}, errors.Wrapf(err, "stage %d background", i+1)
		}
		bg.Stages[i] = app.NewImageFromImage(img)
	}
	return bg, nil
}

// FontData returns the TrueType bytes for both fonts.
func FontData(fsys fs.FS) ([]byte, error) {
	if fsys == nil {
		return goregular.TTF, nil
	}
	data, err := fs.ReadFile(fsys, FontFile)
	if err != nil {
		return nil, errors.Wrapf(translateNotExist(err), "read %s", FontFile)
	}
	return data, nil
}

func loadImage(fsys fs.FS, name string, colors gradient) (image.Image, error) {
	if fsys == nil {
		return generate(colors), nil
	}
	for _, ext := range imageExts {
		data, err := fs.ReadFile(fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s%s", name, ext)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s%s", name, ext)
		}
		return img, nil
	}
	return nil, errors.Wrapf(ErrMissing, "%s.{png,bmp}", name)
}

func translateNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrMissing
	}
	return err
}

// gradient is a vertical two-color fill used for generated backgrounds
type gradient struct {
	Top, Bottom color.RGBA
}

var titleColors = gradient{
	Top:    color.RGBA{0, 0, 0, 255},
	Bottom: color.RGBA{0, 40, 8, 255},
}

func stageColors(i int) gradient {
	bottoms := []color.RGBA{
		{8, 8, 48, 255},
		{40, 8, 40, 255},
		{48, 24, 0, 255},
	}
	return gradient{
		Top:    color.RGBA{0, 0, 0, 255},
		Bottom: bottoms[i%len(bottoms)],
	}
}

const (
	generatedWidth  = 4
	generatedHeight = 64
)

// generate renders a small gradient; the renderer stretches it over the
// screen.
func generate(g gradient) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, generatedWidth, generatedHeight))
	for y := 0; y < generatedHeight; y++ {
		c := lerp(g.Top, g.Bottom, y, generatedHeight-1)
		for x := 0; x < generatedWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b color.RGBA, step, steps int) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(steps-step) + int(y)*step) / steps)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
