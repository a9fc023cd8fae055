package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestRun builds a run world the way the game scene does, without
// rendering or audio.
func newTestRun(t *testing.T, seed uint64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	layout := factory.DefaultLayout()
	player := factory.CreateRun(e, &layout, rand.New(rand.NewPCG(seed, seed)))
	RegisterRunContacts(e)
	return e, player
}

// stepRun advances one frame in the game scene's system order. Input polling
// and audio playback are left out; tests set input state directly.
func stepRun(e *ecs.ECS) {
	UpdatePhysics(e)
	UpdateContacts(e)
	UpdatePlatforms(e)
	UpdateCarrots(e)
	UpdateJump(e)
	UpdateLanding(e)
	UpdateSteering(e)
	UpdateWrap(e)
	UpdateFall(e)
	UpdateCamera(e)
	UpdateScoreLabel(e)
}

func platforms(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func carrots(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Carrot.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func scrollY(e *ecs.ECS) float64 {
	return getScrollY(e)
}

func setScrollY(e *ecs.ECS, y float64) {
	entry, _ := components.Camera.First(e.World)
	components.Camera.Get(entry).ScrollY = y
}

func score(e *ecs.ECS) *components.ScoreData {
	entry, _ := components.Score.First(e.World)
	return components.Score.Get(entry)
}

func TestCreateRun(t *testing.T) {
	e, player := newTestRun(t, 1)

	pool := platforms(e)
	if len(pool) != cfg.Platform.Count {
		t.Fatalf("platforms = %d, want %d", len(pool), cfg.Platform.Count)
	}
	seenY := map[float64]bool{}
	for _, p := range pool {
		pt := components.Transform.Get(p)
		if pt.X < float64(cfg.Platform.MinX) || pt.X > float64(cfg.Platform.MaxX) {
			t.Errorf("platform x = %v, outside [%d, %d]", pt.X, cfg.Platform.MinX, cfg.Platform.MaxX)
		}
		if pt.X != float64(int(pt.X)) {
			t.Errorf("platform x = %v, want an integer", pt.X)
		}
		seenY[pt.Y] = true
		if s := components.Sprite.Get(p); s.Scale != 0.5 {
			t.Errorf("platform scale = %v, want 0.5", s.Scale)
		}
		if !components.Body.Get(p).Static {
			t.Error("platform body is not static")
		}
	}
	for i := 0; i < cfg.Platform.Count; i++ {
		if !seenY[150*float64(i)] {
			t.Errorf("no platform at y = %v", 150*float64(i))
		}
	}

	pt := components.Transform.Get(player)
	if pt.X != 240 || pt.Y != 320 {
		t.Errorf("player at (%v, %v), want (240, 320)", pt.X, pt.Y)
	}
	if pose := components.Player.Get(player).Pose; pose != components.PoseStanding {
		t.Errorf("player pose = %v, want standing", pose)
	}
	sides := components.Body.Get(player).CheckCollision
	if sides.Up || sides.Left || sides.Right || !sides.Down {
		t.Errorf("player collision sides = %+v, want down only", sides)
	}

	if len(carrots(e)) != 0 {
		t.Errorf("carrot pool = %d, want empty", len(carrots(e)))
	}

	s := score(e)
	if s.Carrots != 0 || s.Label != "Carrots: 0" {
		t.Errorf("score = %d %q, want 0 \"Carrots: 0\"", s.Carrots, s.Label)
	}

	contactsEntry, _ := components.Contacts.First(e.World)
	rules := components.Contacts.Get(contactsEntry).Rules
	if len(rules) != 3 {
		t.Fatalf("contact rules = %d, want 3", len(rules))
	}
	if rules[2].Kind != components.ContactOverlap || rules[2].Handler == nil {
		t.Error("player/carrot rule should be an overlap with a handler")
	}

	if scrollY(e) != 0 {
		t.Errorf("scrollY = %v, want 0", scrollY(e))
	}
}

func TestUpdateFall(t *testing.T) {
	tests := []struct {
		name     string
		playerY  float64
		wantOver bool
	}{
		{"above bottom platform", 100, false},
		{"just inside margin", 600 + 199, false},
		{"exactly at margin", 600 + 200, false},
		{"past margin", 600 + 201, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestRun(t, 1)
			components.Transform.Get(player).Y = tt.playerY

			UpdateFall(e)

			if got := IsRunOver(e); got != tt.wantOver {
				t.Errorf("IsRunOver = %v, want %v", got, tt.wantOver)
			}
		})
	}
}

func TestRunOverIsOneWay(t *testing.T) {
	e, player := newTestRun(t, 1)
	components.Transform.Get(player).Y = 900
	UpdateFall(e)
	if !IsRunOver(e) {
		t.Fatal("run should be over")
	}

	components.Transform.Get(player).Y = 0
	UpdateFall(e)
	if !IsRunOver(e) {
		t.Error("run came back after being over")
	}
}

func TestRunInvariants(t *testing.T) {
	e, player := newTestRun(t, 7)
	input := getOrCreateInput(e)
	halfWidth := components.Sprite.Get(player).DisplayWidth() / 2
	lastScore := 0

	// Stack the start platforms under the spawn point so the bunny climbs
	// without steering until the pool starts recycling.
	spawnX := components.Transform.Get(player).X
	lastY := map[*donburi.Entry]float64{}
	for i, p := range platforms(e) {
		pt := components.Transform.Get(p)
		pt.X, pt.Y = spawnX, 450-150*float64(i)
		components.Body.Get(p).PrevY = pt.Y
		lastY[p] = pt.Y
	}
	startScroll := scrollY(e)
	recycledAt := -1

	for frame := 0; frame < 1200; frame++ {
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		if recycledAt >= 0 {
			// Alternate steering so the bunny crosses both screen edges.
			switch (frame / 90) % 3 {
			case 0:
				input.Current[cfg.ActionMoveLeft] = true
			case 1:
				input.Current[cfg.ActionMoveRight] = true
			}
		}

		stepRun(e)

		if n := len(platforms(e)); n != cfg.Platform.Count {
			t.Fatalf("frame %d: platforms = %d, want %d", frame, n, cfg.Platform.Count)
		}
		for _, p := range platforms(e) {
			y := components.Transform.Get(p).Y
			if y < lastY[p] && recycledAt < 0 {
				recycledAt = frame
				if got := scrollY(e); got > startScroll-200 {
					t.Errorf("frame %d: recycled with scrollY = %v, want a climb of at least 200 from %v",
						frame, got, startScroll)
				}
			}
			lastY[p] = y
		}
		if recycledAt < 0 && IsRunOver(e) {
			t.Fatalf("frame %d: run ended before any platform was recycled", frame)
		}

		for _, c := range carrots(e) {
			active := components.Carrot.Get(c).Active
			visible := components.Sprite.Get(c).Visible
			enabled := components.Body.Get(c).Enabled
			inSpace := components.Object.Get(c).Space != nil
			if active != visible || active != enabled || active != inSpace {
				t.Fatalf("frame %d: carrot state split: active=%v visible=%v enabled=%v inSpace=%v",
					frame, active, visible, enabled, inSpace)
			}
		}

		s := score(e).Carrots
		if s < lastScore {
			t.Fatalf("frame %d: score went down from %d to %d", frame, lastScore, s)
		}
		lastScore = s

		x := components.Transform.Get(player).X
		if x < -halfWidth || x > float64(cfg.C.Width)+halfWidth {
			t.Fatalf("frame %d: player x = %v outside wrap bounds", frame, x)
		}
	}

	if recycledAt < 0 {
		t.Fatal("no platform was recycled")
	}
	if recycledAt > 600 {
		t.Errorf("first recycle at frame %d, want within 600 frames", recycledAt)
	}
}
