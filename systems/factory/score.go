package factory

import (
	"fmt"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateScore(ecs *ecs.ECS) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{
		Carrots:    0,
		Label:      fmt.Sprintf(cfg.HUD.LabelFormat, 0),
		LabelScale: 1,
	})
	return score
}
