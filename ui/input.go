package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"strawberry-snake/game/types"
)

// keyBindings is checked in order, so Up wins over Left when both are held.
var keyBindings = [...]struct {
	keys [2]int32
	dir  types.Direction
}{
	{[2]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[2]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[2]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[2]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// Keyboard samples the raylib key state.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reports the held heading key, if any, and whether the player wants out.
func (k *Keyboard) Poll() (types.Direction, bool, bool) {
	rl.PollInputEvents()
	if rl.WindowShouldClose() || rl.IsKeyDown(rl.KeyEscape) || rl.IsKeyDown(rl.KeyQ) {
		return types.Down, false, true
	}
	for _, b := range keyBindings {
		if rl.IsKeyDown(b.keys[0]) || rl.IsKeyDown(b.keys[1]) {
			return b.dir, true, false
		}
	}
	return types.Down, false, false
}
