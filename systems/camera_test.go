package systems

import (
	"testing"

	"github.com/automoto/bunnyhop/components"
)

func TestFollowAxis(t *testing.T) {
	tests := []struct {
		name     string
		scroll   float64
		target   float64
		view     float64
		deadZone float64
		want     float64
	}{
		{"zero dead-zone centres the target", 0, 100, 640, 0, -220},
		{"zero dead-zone follows down", -220, 500, 640, 0, 180},
		{"inside a wide dead-zone", 0, 500, 480, 720, 0},
		{"left of a wide dead-zone", 0, -130, 480, 720, -10},
		{"right of a wide dead-zone", 0, 610, 480, 720, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := followAxis(tt.scroll, tt.target, tt.view, tt.deadZone); got != tt.want {
				t.Errorf("followAxis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateCamera(t *testing.T) {
	e, player := newTestRun(t, 1)
	pt := components.Transform.Get(player)
	pt.X, pt.Y = -30, 100

	UpdateCamera(e)

	cameraEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if camera.ScrollY != 100-320 {
		t.Errorf("scrollY = %v, want %v", camera.ScrollY, 100-320)
	}
	if camera.ScrollX != 0 {
		t.Errorf("scrollX = %v, want 0 while the player is within the wrap bounds", camera.ScrollX)
	}
}
