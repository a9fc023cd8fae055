package levels

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadLayout parses a TMX file into a Layout. Map properties that are absent
// keep the values already set in defaults. The platform pool size is fixed by
// defaults; a map may only restate it.
func LoadLayout(fsys fs.FS, tmxPath string, defaults Layout) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := defaults
	if v := levelMap.Properties.GetInt("platformCount"); v != 0 && v != defaults.PlatformCount {
		return nil, fmt.Errorf("layout %s: platformCount %d, want %d", tmxPath, v, defaults.PlatformCount)
	}
	if v := levelMap.Properties.GetFloat("bandHeight"); v > 0 {
		layout.BandHeight = v
	}
	if v := levelMap.Properties.GetInt("platformMinX"); v > 0 {
		layout.PlatformMinX = v
	}
	if v := levelMap.Properties.GetInt("platformMaxX"); v > 0 {
		layout.PlatformMaxX = v
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		if len(og.Objects) > 0 {
			o := og.Objects[0]
			layout.Spawn = SpawnPoint{X: o.X, Y: o.Y}
		}
		break
	}

	if layout.PlatformMinX > layout.PlatformMaxX {
		return nil, fmt.Errorf("layout %s: platformMinX %d > platformMaxX %d",
			tmxPath, layout.PlatformMinX, layout.PlatformMaxX)
	}
	if layout.PlatformCount <= 0 {
		return nil, fmt.Errorf("layout %s: no platforms", tmxPath)
	}

	return &layout, nil
}
