package ui

import (
	"fmt"

	cfg "github.com/automoto/bunnyhop/config"
)

// NewGameOverUI builds the end-of-run screen.
func NewGameOverUI(score, best int, isNewBest bool, onRestart func()) *ScreenUI {
	bestLine := fmt.Sprintf("Best: %d", best)
	if isNewBest {
		bestLine = "New best!"
	}
	lines := []string{
		fmt.Sprintf(cfg.HUD.LabelFormat, score),
		bestLine,
	}
	return newScreenUI(cfg.GameOver, lines, "Play again", onRestart)
}
