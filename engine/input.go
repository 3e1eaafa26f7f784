package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/archer/entity"
)

// InputSource supplies the control bitmask once per frame. quit is true when
// the player asked to leave the game.
type InputSource interface {
	Poll() (buttons entity.Buttons, quit bool)
}

// Controls maps control names used in configuration files to their bit.
var Controls = map[string]entity.Buttons{
	"up":    entity.ControlUp,
	"down":  entity.ControlDown,
	"left":  entity.ControlLeft,
	"right": entity.ControlRight,
	"fire":  entity.ControlFire,
	"jump":  entity.ControlJump,
	"menu":  entity.ControlMenu,
}

var keyNames = map[string]ebiten.Key{
	"ArrowUp":      ebiten.KeyArrowUp,
	"ArrowDown":    ebiten.KeyArrowDown,
	"ArrowLeft":    ebiten.KeyArrowLeft,
	"ArrowRight":   ebiten.KeyArrowRight,
	"Space":        ebiten.KeySpace,
	"Enter":        ebiten.KeyEnter,
	"Escape":       ebiten.KeyEscape,
	"Tab":          ebiten.KeyTab,
	"Backspace":    ebiten.KeyBackspace,
	"ShiftLeft":    ebiten.KeyShiftLeft,
	"ShiftRight":   ebiten.KeyShiftRight,
	"ControlLeft":  ebiten.KeyControlLeft,
	"ControlRight": ebiten.KeyControlRight,
	"AltLeft":      ebiten.KeyAltLeft,
	"AltRight":     ebiten.KeyAltRight,
	"A":            ebiten.KeyA,
	"C":            ebiten.KeyC,
	"D":            ebiten.KeyD,
	"E":            ebiten.KeyE,
	"F":            ebiten.KeyF,
	"J":            ebiten.KeyJ,
	"K":            ebiten.KeyK,
	"P":            ebiten.KeyP,
	"Q":            ebiten.KeyQ,
	"S":            ebiten.KeyS,
	"W":            ebiten.KeyW,
	"X":            ebiten.KeyX,
	"Z":            ebiten.KeyZ,
}

// Bindings maps each control bit to the keys that press it.
type Bindings map[entity.Buttons][]ebiten.Key

// DefaultBindings are the arrow keys with X to fire, Z to jump and Escape for
// the menu.
func DefaultBindings() Bindings {
	return Bindings{
		entity.ControlUp:    {ebiten.KeyArrowUp},
		entity.ControlDown:  {ebiten.KeyArrowDown},
		entity.ControlLeft:  {ebiten.KeyArrowLeft},
		entity.ControlRight: {ebiten.KeyArrowRight},
		entity.ControlFire:  {ebiten.KeyX},
		entity.ControlJump:  {ebiten.KeyZ},
		entity.ControlMenu:  {ebiten.KeyEscape},
	}
}

// ParseBindings converts control name -> key names, as found in the config
// file, on top of DefaultBindings. A control listed in keys replaces its
// default keys.
func ParseBindings(keys map[string][]string) (Bindings, error) {
	b := DefaultBindings()

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		control, ok := Controls[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("engine: unknown control %q", name)
		}
		var bound []ebiten.Key
		for _, kn := range keys[name] {
			k, ok := keyNames[kn]
			if !ok {
				return nil, fmt.Errorf("engine: control %s: unknown key %q", name, kn)
			}
			bound = append(bound, k)
		}
		b[control] = bound
	}
	return b, nil
}

// KeyboardInput reads the keyboard and the first standard gamepad. F12 quits.
type KeyboardInput struct {
	bindings Bindings
}

func NewKeyboardInput(b Bindings) *KeyboardInput {
	if b == nil {
		b = DefaultBindings()
	}
	return &KeyboardInput{bindings: b}
}

func (i *KeyboardInput) Poll() (entity.Buttons, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return 0, true
	}

	var buttons entity.Buttons
	for control, keys := range i.bindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				buttons |= control
				break
			}
		}
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		buttons |= gamepadButtons(ids[0])
	}
	return buttons, false
}

var padButtons = []struct {
	button  ebiten.StandardGamepadButton
	control entity.Buttons
}{
	{ebiten.StandardGamepadButtonLeftTop, entity.ControlUp},
	{ebiten.StandardGamepadButtonLeftBottom, entity.ControlDown},
	{ebiten.StandardGamepadButtonLeftLeft, entity.ControlLeft},
	{ebiten.StandardGamepadButtonLeftRight, entity.ControlRight},
	{ebiten.StandardGamepadButtonRightBottom, entity.ControlJump},
	{ebiten.StandardGamepadButtonRightLeft, entity.ControlFire},
	{ebiten.StandardGamepadButtonFrontBottomRight, entity.ControlFire},
	{ebiten.StandardGamepadButtonCenterRight, entity.ControlMenu},
}

const stickThreshold = 0.3

func gamepadButtons(id ebiten.GamepadID) entity.Buttons {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}

	var buttons entity.Buttons
	for _, pb := range padButtons {
		if ebiten.IsStandardGamepadButtonPressed(id, pb.button) {
			buttons |= pb.control
		}
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch {
	case x < -stickThreshold:
		buttons |= entity.ControlLeft
	case x > stickThreshold:
		buttons |= entity.ControlRight
	}
	switch {
	case y < -stickThreshold:
		buttons |= entity.ControlUp
	case y > stickThreshold:
		buttons |= entity.ControlDown
	}
	return buttons
}
