package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the collision space. Its origin follows the camera so the
// grid always covers the visible window no matter how far the run scrolls.
type SpaceData struct {
	*resolv.Space
	OriginX float64
	OriginY float64
}

var Space = donburi.NewComponentType[SpaceData]()
