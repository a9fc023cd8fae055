package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFall ends the run once the player is more than the fail margin below
// the lowest platform. The run stays over once set.
func UpdateFall(ecs *ecs.ECS) {
	run := GetRun(ecs)
	if run.Over {
		return
	}

	bottom := BottomMostPlatform(ecs.World)
	if bottom == nil {
		return
	}

	withPlayer(ecs, func(e *donburi.Entry) {
		playerY := components.Transform.Get(e).Y
		bottomY := components.Transform.Get(bottom).Y
		if playerY > bottomY+cfg.Run.FailMargin {
			run.Over = true
			log.Info("run over", "carrots", GetScore(ecs), "playerY", playerY, "bottomY", bottomY)
		}
	})
}

// IsRunOver reports whether the fail condition has been reached.
func IsRunOver(ecs *ecs.ECS) bool {
	if entry, ok := components.Run.First(ecs.World); ok {
		return components.Run.Get(entry).Over
	}
	return false
}

// GetScore returns the number of carrots collected this run.
func GetScore(ecs *ecs.ECS) int {
	if entry, ok := components.Score.First(ecs.World); ok {
		return components.Score.Get(entry).Carrots
	}
	return 0
}

// GetRun returns the run state. A run is created with its state, so a
// missing one is a setup bug.
func GetRun(ecs *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(ecs.World)
	if !ok {
		panic("systems: no run state in world")
	}
	return components.Run.Get(entry)
}

func getScrollY(ecs *ecs.ECS) float64 {
	if entry, ok := components.Camera.First(ecs.World); ok {
		return components.Camera.Get(entry).ScrollY
	}
	return 0
}
