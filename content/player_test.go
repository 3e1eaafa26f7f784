package content

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/sound"
)

func TestPlayerStandsOnStartTile(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)
	require.Equal(t, 54, p.groundOffset)
	require.Equal(t, 330.0, p.pos.Y)

	for i := 0; i < 30; i++ {
		p.Update(frame(m, 0))
	}
	require.True(t, p.onGround)
	require.Equal(t, 330.0, p.pos.Y)
	require.Equal(t, 128.0, p.pos.X)
}

func TestPlayerBowRelease(t *testing.T) {
	tests := []struct {
		name      string
		walkLeft  bool
		held      int
		wantSpeed float64
		wantAngle float64
	}{
		{name: "tap uses min draw", held: 0, wantSpeed: 1000, wantAngle: -math.Pi / 4},
		{name: "partial draw", held: 18, wantSpeed: 1500, wantAngle: -math.Pi / 4},
		{name: "long draw caps", held: 120, wantSpeed: 2000, wantAngle: -math.Pi / 4},
		{name: "facing left mirrors", walkLeft: true, wantSpeed: 1000, wantAngle: math.Pi + math.Pi/4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, fx := newTestKit(t)
			m := testMap(t)
			p := NewPlayer(k, 128, 320)

			if tc.walkLeft {
				p.Update(frame(m, entity.ControlLeft))
				require.True(t, p.facingLeft)
			}
			for i := 0; i <= tc.held; i++ {
				f := frame(m, entity.ControlFire)
				p.Update(f)
				require.Zero(t, f.Spawn.Len())
				require.True(t, p.bowDrawn)
			}

			f := frame(m, 0)
			p.Update(f)
			spawned := f.Spawn.Drain()
			require.Len(t, spawned, 1)
			a, ok := spawned[0].(*Arrow)
			require.True(t, ok)
			require.InDelta(t, tc.wantSpeed, a.vel.Length(), 1e-6)
			require.InDelta(t, tc.wantAngle, a.angle, 1e-9)
			require.Equal(t, p.pos, a.pos)
			require.False(t, p.bowDrawn)
			require.Equal(t, []sound.Effect{sound.EffectArrow}, fx.played)
		})
	}
}

func TestPlayerAimIsBounded(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	for i := 0; i < 120; i++ {
		p.Update(frame(m, entity.ControlFire|entity.ControlUp))
	}
	require.LessOrEqual(t, p.angle, -math.Pi/2)
	require.GreaterOrEqual(t, p.angle, -math.Pi/2-dt*k.Player.AimSpeed)

	for i := 0; i < 120; i++ {
		p.Update(frame(m, entity.ControlFire|entity.ControlDown))
	}
	require.GreaterOrEqual(t, p.angle, math.Pi/2)
	require.LessOrEqual(t, p.angle, math.Pi/2+dt*k.Player.AimSpeed)
}

func TestPlayerJumpAndLand(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	p.Update(frame(m, entity.ControlJump))
	require.Equal(t, -k.Player.JumpSpeed, p.yvel)
	require.Zero(t, p.jumpCounter)

	top := p.pos.Y
	for i := 0; i < 10; i++ {
		p.Update(frame(m, entity.ControlJump))
		top = math.Min(top, p.pos.Y)
	}
	require.Equal(t, k.Player.JumpHoldFrames, p.jumpCounter)
	require.False(t, p.onGround)
	require.Less(t, top, 330.0-50)

	for i := 0; i < 180; i++ {
		p.Update(frame(m, 0))
	}
	require.True(t, p.onGround)
	require.Equal(t, 330.0, p.pos.Y)
}

func TestPlayerHeldJumpDoesNotRepeat(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	for i := 0; i < 240; i++ {
		p.Update(frame(m, entity.ControlJump))
	}
	require.True(t, p.onGround)
	require.Zero(t, p.yvel)
	require.Equal(t, 330.0, p.pos.Y)
}

func TestPlayerWalksUntilWall(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	p.Update(frame(m, entity.ControlLeft))
	require.True(t, p.running)
	require.InDelta(t, 128-k.Player.RunSpeed*dt, p.pos.X, 1e-9)

	for i := 0; i < 120; i++ {
		p.Update(frame(m, entity.ControlLeft))
	}
	// The wall occupies x < 64 and the probe reaches 16 pixels ahead.
	require.Less(t, p.pos.X, 80.0)
	require.GreaterOrEqual(t, p.pos.X, 80-k.Player.RunSpeed*dt)
	require.False(t, p.running)
	require.Zero(t, p.runFrame)
}

func TestPlayerRunAnimation(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		p.Update(frame(m, entity.ControlRight))
		seen[p.runFrame] = true
	}
	require.Len(t, seen, 3)
	require.False(t, p.facingLeft)

	p.Update(frame(m, 0))
	require.False(t, p.running)
	require.Zero(t, p.runFrame)
	require.Zero(t, p.frameTime)
}

func TestPlayerClimbsLadder(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 448, 320)

	// Grabbing the ladder takes a frame and drops the bow.
	p.bowDrawn = true
	p.Update(frame(m, entity.ControlUp))
	require.True(t, p.climbing)
	require.False(t, p.bowDrawn)
	require.Equal(t, 330.0, p.pos.Y)

	for i := 0; i < 10; i++ {
		p.Update(frame(m, entity.ControlUp))
	}
	require.InDelta(t, 330-10*k.Player.ClimbSpeed*dt, p.pos.Y, 1e-9)

	// No gravity while on the ladder.
	y := p.pos.Y
	p.Update(frame(m, 0))
	require.Equal(t, y, p.pos.Y)

	// Climbing down stops at the floor.
	for i := 0; i < 120; i++ {
		p.Update(frame(m, entity.ControlDown))
	}
	require.True(t, p.climbing)
	feet := p.y() + p.groundOffset
	require.GreaterOrEqual(t, feet, 6*64)
	require.Less(t, feet, 6*64+3)
}

func TestPlayerLeavesLadderAtTop(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 448, 320)

	p.Update(frame(m, entity.ControlUp))
	left := false
	for i := 0; i < 200 && !left; i++ {
		p.Update(frame(m, entity.ControlUp))
		left = !p.climbing
	}
	require.True(t, left)
	require.Less(t, p.y()+p.groundOffset, 3*64)
}

func TestPlayerDeath(t *testing.T) {
	k, fx := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 128, 320)

	p.Collide(nil)
	p.Collide(nil)
	require.True(t, p.Killed())
	require.True(t, p.IsLive())
	require.Equal(t, []sound.Effect{sound.EffectDeath}, fx.played)

	p.Update(frame(m, entity.ControlRight|entity.ControlJump))
	require.Equal(t, 128.0, p.pos.X)
	require.Equal(t, 330.0, p.pos.Y)
}

func TestPlayerDraw(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	sp := k.Sprites

	tests := []struct {
		name  string
		setup func(p *Player)
		want  []placement
	}{
		{
			name:  "idle",
			setup: func(p *Player) { p.Update(frame(m, 0)) },
			want: []placement{
				{128, 330, sp.BowOnBack, 0, false},
				{128, 330, sp.BodyIdle, 0, false},
				{128, 330, sp.ArmsIdle, 0, false},
			},
		},
		{
			name: "aiming left",
			setup: func(p *Player) {
				p.facingLeft = true
				p.Update(frame(m, entity.ControlFire))
			},
			want: []placement{
				{128, 330, sp.BodyIdle, 0, true},
				{128, 330, sp.BowDrawn, math.Pi / 4, true},
			},
		},
		{
			name: "airborne",
			setup: func(p *Player) {
				p.Update(frame(m, entity.ControlJump))
				p.Update(frame(m, entity.ControlJump))
			},
		},
		{
			name:  "dead",
			setup: func(p *Player) { p.Collide(nil) },
			want:  []placement{{128, 330, sp.Dead, 0, false}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(k, 128, 320)
			tc.setup(p)
			pl := &recordingPlacer{}
			p.Draw(pl)
			if tc.want == nil {
				require.Len(t, pl.placed, 3)
				require.Equal(t, sp.BodyJump, pl.placed[1].sprite)
				return
			}
			require.Equal(t, tc.want, pl.placed)
		})
	}
}

func TestPlayerDrawClimbing(t *testing.T) {
	k, _ := newTestKit(t)
	m := testMap(t)
	p := NewPlayer(k, 448, 320)
	p.Update(frame(m, entity.ControlUp))

	pl := &recordingPlacer{}
	p.Draw(pl)
	require.Len(t, pl.placed, 1)
	// 448+330 = 778, 778 % 64 = 10.
	require.Equal(t, k.Sprites.Climb[1], pl.placed[0].sprite)
}
