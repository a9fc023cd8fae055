package systems

import (
	"testing"

	"github.com/automoto/bunnyhop/components"
	"github.com/yohamta/donburi"
)

func findPlatform(t *testing.T, pool []*donburi.Entry, y float64) *donburi.Entry {
	t.Helper()
	for _, p := range pool {
		if components.Transform.Get(p).Y == y {
			return p
		}
	}
	t.Fatalf("no platform at y = %v", y)
	return nil
}

func TestSpawnCarrotAbove(t *testing.T) {
	e, _ := newTestRun(t, 11)
	platform := findPlatform(t, platforms(e), 300)
	pt := components.Transform.Get(platform)

	carrot := SpawnCarrotAbove(e, platform)

	ct := components.Transform.Get(carrot)
	if ct.X != pt.X || ct.Y != pt.Y-47 {
		t.Errorf("carrot at (%v, %v), want (%v, %v)", ct.X, ct.Y, pt.X, pt.Y-47)
	}
	if !components.Carrot.Get(carrot).Active || !components.Sprite.Get(carrot).Visible {
		t.Error("spawned carrot is not active and visible")
	}
	body := components.Body.Get(carrot)
	if !body.Enabled {
		t.Error("spawned carrot body is disabled")
	}
	if body.Width != 32 || body.Height != 40 {
		t.Errorf("carrot body = %vx%v, want 32x40", body.Width, body.Height)
	}
	if components.Object.Get(carrot).Space == nil {
		t.Error("spawned carrot is not in the collision space")
	}
}

func TestSpawnCarrotAboveReusesRetired(t *testing.T) {
	e, _ := newTestRun(t, 11)
	platform := findPlatform(t, platforms(e), 150)

	first := SpawnCarrotAbove(e, platform)
	retireCarrot(e, first)
	second := SpawnCarrotAbove(e, platform)

	if first != second {
		t.Error("a retired carrot was not reused")
	}
	if n := len(carrots(e)); n != 1 {
		t.Errorf("carrot pool = %d, want 1", n)
	}

	third := SpawnCarrotAbove(e, platform)
	if third == second {
		t.Error("an active carrot was handed out again")
	}
	if n := len(carrots(e)); n != 2 {
		t.Errorf("carrot pool = %d, want 2", n)
	}
}

func TestCollectCarrot(t *testing.T) {
	e, player := newTestRun(t, 11)
	carrot := SpawnCarrotAbove(e, findPlatform(t, platforms(e), 450))
	components.Body.Get(player).TouchingDown = true

	CollectCarrot(e, player, carrot)

	s := score(e)
	if s.Carrots != 1 || s.Label != "Carrots: 1" {
		t.Errorf("score = %d %q, want 1 \"Carrots: 1\"", s.Carrots, s.Label)
	}
	if s.Pulse == nil {
		t.Error("collection did not start the label pulse")
	}
	if components.Body.Get(player).TouchingDown {
		t.Error("collection left the player touching down")
	}
	assertRetired(t, carrot)

	// A retired carrot scores nothing.
	CollectCarrot(e, player, carrot)
	if s.Carrots != 1 {
		t.Errorf("score = %d after collecting a retired carrot, want 1", s.Carrots)
	}
}

func TestRetireCarrotIdempotent(t *testing.T) {
	e, _ := newTestRun(t, 11)
	carrot := SpawnCarrotAbove(e, findPlatform(t, platforms(e), 0))

	retireCarrot(e, carrot)
	retireCarrot(e, carrot)

	assertRetired(t, carrot)
	if score(e).Carrots != 0 {
		t.Error("retiring changed the score")
	}
}

func TestUpdateCarrotsRetiresMissed(t *testing.T) {
	e, _ := newTestRun(t, 11)
	carrot := SpawnCarrotAbove(e, findPlatform(t, platforms(e), 600))
	kept := SpawnCarrotAbove(e, findPlatform(t, platforms(e), 0))

	components.Transform.Get(carrot).Y = scrollY(e) + 700
	UpdateCarrots(e)

	assertRetired(t, carrot)
	if !components.Carrot.Get(kept).Active {
		t.Error("an on-screen carrot was retired")
	}
	if score(e).Carrots != 0 {
		t.Error("a missed carrot was scored")
	}
}

func TestScoreLabelPulse(t *testing.T) {
	e, player := newTestRun(t, 11)
	carrot := SpawnCarrotAbove(e, findPlatform(t, platforms(e), 0))
	CollectCarrot(e, player, carrot)

	s := score(e)
	if s.LabelScale <= 1 {
		t.Fatalf("label scale = %v right after a collection, want > 1", s.LabelScale)
	}
	for i := 0; i < 60; i++ {
		UpdateScoreLabel(e)
	}
	if s.Pulse != nil || s.LabelScale != 1 {
		t.Errorf("pulse not finished after a second: scale %v", s.LabelScale)
	}
}

func assertRetired(t *testing.T, carrot *donburi.Entry) {
	t.Helper()
	if components.Carrot.Get(carrot).Active {
		t.Error("carrot still active")
	}
	if components.Sprite.Get(carrot).Visible {
		t.Error("carrot still visible")
	}
	if components.Body.Get(carrot).Enabled {
		t.Error("carrot body still enabled")
	}
	if components.Object.Get(carrot).Space != nil {
		t.Error("carrot still in the collision space")
	}
}
