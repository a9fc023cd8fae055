package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoreLabel runs the label pulse started by a collection.
func UpdateScoreLabel(ecs *ecs.ECS) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	if score.Pulse == nil {
		return
	}

	scale, done := score.Pulse.Update(float32(cfg.StepSeconds()))
	score.LabelScale = float64(scale)
	if done {
		score.Pulse = nil
		score.LabelScale = 1
	}
}
