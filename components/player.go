package components

import (
	"github.com/yohamta/donburi"
)

// Pose is the player's display state
type Pose int

const (
	PoseStanding Pose = iota
	PoseJumping
)

func (p Pose) String() string {
	switch p {
	case PoseStanding:
		return "standing"
	case PoseJumping:
		return "jumping"
	default:
		return "unknown"
	}
}

type PlayerData struct {
	Pose Pose
}

var Player = donburi.NewComponentType[PlayerData]()
