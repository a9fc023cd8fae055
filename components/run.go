package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RunData holds per-run state that is not tied to a single entity.
type RunData struct {
	Over bool // set once by the fail condition, never cleared
	Rand *rand.Rand
}

var Run = donburi.NewComponentType[RunData]()
