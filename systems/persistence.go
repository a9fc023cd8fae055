package systems

import (
	"encoding/json"
	"strconv"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
	Debug bool `json:"debug"`
}

const (
	settingsItem = "settings"
	bestItem     = "best"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and best score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bunnyhop",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "error", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Warn("could not load settings", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "error", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "error", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Warn("could not save settings", "error", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings before the first scene is created.
// A saved overlay adds to the --debug flag; it never turns it off.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
	cfg.Debug.Overlay = cfg.Debug.Overlay || saved.Debug
}

// LoadBestScore returns the best carrot count on record, or 0.
func LoadBestScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem(bestItem)
	if err != nil {
		log.Warn("could not load best score", "error", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	best, err := strconv.Atoi(string(data))
	if err != nil {
		log.Warn("could not parse best score", "error", err)
		return 0
	}
	return best
}

// RecordScore stores score if it beats the best on record and returns the
// resulting best.
func RecordScore(score int) (best int, isNew bool) {
	best = LoadBestScore()
	if score <= best {
		return best, false
	}

	if gdataInitialized && gdataManager != nil {
		if err := gdataManager.SaveItem(bestItem, []byte(strconv.Itoa(score))); err != nil {
			log.Warn("could not save best score", "error", err)
		}
	}
	return score, true
}
