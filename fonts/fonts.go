package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	textv2 "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFonts registers the faces the game draws with.
func LoadFonts() {
	LoadFontWithSize(HUD, goregular.TTF, 22)
	LoadFontWithSize(Debug, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

var (
	uiSource     *textv2.GoTextFaceSource
	uiSourceOnce sync.Once
)

// UIFace returns a face for ebitenui widgets at the given size.
func UIFace(size float64) textv2.Face {
	uiSourceOnce.Do(func() {
		src, err := textv2.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("UI font: %v", err))
		}
		uiSource = src
	})
	return &textv2.GoTextFace{Source: uiSource, Size: size}
}
