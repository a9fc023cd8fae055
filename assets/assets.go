package assets

import (
	"bytes"
	"embed"
	"fmt"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/levels"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LayoutPath is the start layout bundled with the game.
const LayoutPath = "levels/meadow.tmx"

// LoadLayout parses a bundled TMX layout. Properties the map does not set
// keep the values from defaults.
func LoadLayout(path string, defaults levels.Layout) (*levels.Layout, error) {
	return levels.LoadLayout(levelFS, path, defaults)
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var imageLoader = NewImageLoader()

// GetImage returns the image registered under key.
func GetImage(key cfg.ImageKey) *ebiten.Image {
	info, ok := cfg.Images[key]
	if !ok {
		panic(fmt.Sprintf("Unknown image key %q", key))
	}
	return imageLoader.MustLoadImage(info.Path)
}

// PreloadAllImages decodes every keyed image so the first frame does not stall.
func PreloadAllImages() {
	for key := range cfg.Images {
		_ = GetImage(key)
	}
}
