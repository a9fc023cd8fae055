package ui

import (
	"fmt"

	cfg "github.com/automoto/bunnyhop/config"
)

// NewTitleUI builds the start screen. best is the best carrot count on record.
func NewTitleUI(best int, onStart func()) *ScreenUI {
	lines := []string{
		"Arrow keys or A/D to steer",
		fmt.Sprintf("Best: %d carrots", best),
	}
	return newScreenUI(cfg.Title, lines, "Play", onStart)
}
