package systems

import (
	"math"
	"testing"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
)

func TestPlayerLandsAndBounces(t *testing.T) {
	e, player := newTestRun(t, 2)
	platform := findPlatform(t, platforms(e), 300)
	pt := components.Transform.Get(platform)
	top := pt.Y - components.Body.Get(platform).Height/2

	body := components.Body.Get(player)
	t0 := components.Transform.Get(player)
	t0.X = pt.X
	t0.Y = top - body.Height/2 - 5
	body.Velocity.Y = 60

	jumped := false
	for frame := 0; frame < 60 && !jumped; frame++ {
		stepRun(e)
		jumped = components.Player.Get(player).Pose == components.PoseJumping
	}

	if !jumped {
		t.Fatal("player never bounced off the platform")
	}
	if body.Velocity.Y != -cfg.Player.JumpSpeed {
		t.Errorf("vy = %v after the bounce, want %v", body.Velocity.Y, -cfg.Player.JumpSpeed)
	}
	if got := GetOrCreateAudio(e).PendingSFX; len(got) != 1 {
		t.Errorf("queued sounds = %v, want one jump", got)
	}
}

func TestPlayerPassesUpThroughPlatform(t *testing.T) {
	e, player := newTestRun(t, 2)
	platform := findPlatform(t, platforms(e), 300)
	pt := components.Transform.Get(platform)

	body := components.Body.Get(player)
	t0 := components.Transform.Get(player)
	t0.X, t0.Y = pt.X, pt.Y+10
	body.Velocity.Y = -300

	UpdatePhysics(e)
	UpdateContacts(e)

	if body.TouchingDown {
		t.Error("rising player was stopped by a platform")
	}
	if body.Velocity.Y >= 0 {
		t.Errorf("vy = %v, want still rising", body.Velocity.Y)
	}
}

func TestCarrotRestsOnPlatform(t *testing.T) {
	e, player := newTestRun(t, 2)
	// Keep the player out of the way.
	components.Body.Get(player).Enabled = false

	platform := findPlatform(t, platforms(e), 300)
	top := components.Transform.Get(platform).Y - components.Body.Get(platform).Height/2
	carrot := SpawnCarrotAbove(e, platform)

	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
		UpdateContacts(e)
	}

	body := components.Body.Get(carrot)
	bottom := body.Bottom(components.Transform.Get(carrot).Y)
	if math.Abs(bottom-top) > 1e-9 {
		t.Errorf("carrot bottom = %v, want resting on %v", bottom, top)
	}
	if !body.TouchingDown {
		t.Error("resting carrot is not touching down")
	}
	if !components.Carrot.Get(carrot).Active {
		t.Error("carrot was retired")
	}
}

func TestPlayerCollectsOverlappingCarrot(t *testing.T) {
	e, player := newTestRun(t, 2)
	platform := findPlatform(t, platforms(e), 150)
	carrot := SpawnCarrotAbove(e, platform)

	ct := components.Transform.Get(carrot)
	pt := components.Transform.Get(player)
	pt.X, pt.Y = ct.X, ct.Y
	components.Body.Get(player).Velocity.Y = -300

	UpdatePhysics(e)
	UpdateContacts(e)

	if score(e).Carrots != 1 {
		t.Errorf("score = %d, want 1", score(e).Carrots)
	}
	assertRetired(t, carrot)
}

func TestContactsFollowCamera(t *testing.T) {
	e, player := newTestRun(t, 2)
	platform := findPlatform(t, platforms(e), 0)

	// Far above the start, outside the space's original bounds
	const y = -50000.0
	components.Transform.Get(platform).Y = y
	setScrollY(e, y-300)

	body := components.Body.Get(player)
	pt := components.Transform.Get(player)
	top := y - components.Body.Get(platform).Height/2
	pt.X = components.Transform.Get(platform).X
	pt.Y = top - body.Height/2 - 1
	body.Velocity.Y = 120

	UpdatePhysics(e)
	UpdateContacts(e)

	if !body.TouchingDown {
		t.Error("player did not land on a platform far above the start")
	}
}
