package content

import (
	"fmt"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/archer/entity"
	"github.com/milk9111/archer/gfx"
	"github.com/milk9111/archer/prefabs"
	"github.com/milk9111/archer/sound"
)

// Collision classes.
const (
	ClassMissile entity.Class = 1 << iota
	ClassPlayer
	ClassObject
)

// BalloonObject is the tile map object name that spawns a Balloon.
const BalloonObject = "Balloon"

// Sprites are the atlas images used by the game objects.
type Sprites struct {
	Arrow     gfx.Sprite
	Balloon   gfx.Sprite
	Dead      gfx.Sprite
	BowDrawn  gfx.Sprite
	BowOnBack gfx.Sprite
	BodyIdle  gfx.Sprite
	BodyJump  gfx.Sprite
	BodyRun   [3]gfx.Sprite
	Climb     [2]gfx.Sprite
	ArmsIdle  gfx.Sprite
	ArmsRun   [3]gfx.Sprite
}

// LoadSprites resolves every sprite in sheet, failing on the first missing one.
func LoadSprites(sheet *gfx.Sheet) (Sprites, error) {
	sp, err := sheet.Lookup(
		"arrow", "balloon",
		"player_dead", "player_bow_drawn", "player_bow_on_back",
		"player_body_idle", "player_body_jump",
		"player_body_run1", "player_body_run2", "player_body_run3",
		"player_climb1", "player_climb2",
		"player_arms_idle", "player_arms_run1", "player_arms_run2", "player_arms_run3",
	)
	if err != nil {
		return Sprites{}, fmt.Errorf("content: %w", err)
	}
	return Sprites{
		Arrow:     sp[0],
		Balloon:   sp[1],
		Dead:      sp[2],
		BowDrawn:  sp[3],
		BowOnBack: sp[4],
		BodyIdle:  sp[5],
		BodyJump:  sp[6],
		BodyRun:   [3]gfx.Sprite{sp[7], sp[8], sp[9]},
		Climb:     [2]gfx.Sprite{sp[10], sp[11]},
		ArmsIdle:  sp[12],
		ArmsRun:   [3]gfx.Sprite{sp[13], sp[14], sp[15]},
	}, nil
}

// Kit is everything the game objects share: sprites, tuning, sound and the
// compiled balloon script.
type Kit struct {
	Sprites Sprites
	Player  prefabs.PlayerSpec
	Arrow   prefabs.ArrowSpec
	Balloon prefabs.BalloonSpec
	Sound   sound.Effects

	bob *tengo.Compiled
}

// LoadKit resolves sprites from sheet and loads the prefab specs and scripts.
// A nil fx plays nothing.
func LoadKit(sheet *gfx.Sheet, fx sound.Effects) (*Kit, error) {
	if fx == nil {
		fx = sound.Nop{}
	}
	sprites, err := LoadSprites(sheet)
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	arrow, err := prefabs.LoadArrowSpec()
	if err != nil {
		return nil, err
	}
	balloon, err := prefabs.LoadBalloonSpec()
	if err != nil {
		return nil, err
	}
	src, err := prefabs.LoadScript(balloon.Script)
	if err != nil {
		return nil, fmt.Errorf("content: load script %s: %w", balloon.Script, err)
	}
	bob, err := compileBob(src, balloon.Bob)
	if err != nil {
		return nil, err
	}

	return &Kit{
		Sprites: sprites,
		Player:  player,
		Arrow:   arrow,
		Balloon: balloon,
		Sound:   fx,
		bob:     bob,
	}, nil
}

// Register adds the player and every object type to r.
func Register(r *entity.Registry, k *Kit) error {
	r.RegisterPlayer(func(x, y int) entity.Entity {
		return NewPlayer(k, x, y)
	})
	return r.Register(BalloonObject, func(x, y int) entity.Entity {
		return NewBalloon(k, x, y)
	})
}
