package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/roborun/internal/core"
)

// heldBindings are read every frame while the key is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionShoot: {ebiten.KeySpace},
}

// pressBindings fire once on the frame the key goes down.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionStart:      {ebiten.KeyR, ebiten.KeyEnter},
	core.ActionRestart:    {ebiten.KeyR},
	core.ActionPause:      {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:       {ebiten.KeyQ},
	core.ActionFullscreen: {ebiten.KeyF},
}

// keyState abstracts the keyboard so input mapping can be tested
// without a running game loop.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// pollInput builds the frame for the current keyboard state.
func pollInput(keys keyState) core.InputFrame {
	f := core.NewInputFrame()
	for a, ks := range heldBindings {
		for _, k := range ks {
			if keys.Pressed(k) {
				f.Set(a)
				break
			}
		}
	}
	for a, ks := range pressBindings {
		for _, k := range ks {
			if keys.JustPressed(k) {
				f.Set(a)
				break
			}
		}
	}
	return f
}
