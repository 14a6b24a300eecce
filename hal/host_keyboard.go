//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var keyBindings = [NumButtons][]ebiten.Key{
	ButtonUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	ButtonDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	ButtonLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	ButtonRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	ButtonL:     {ebiten.KeyQ},
	ButtonR:     {ebiten.KeyE},
}

// keyboardButtons must be called from the ebiten game loop.
func keyboardButtons(b Button) bool {
	if b >= NumButtons {
		return false
	}
	for _, k := range keyBindings[b] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
