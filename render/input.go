package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sunnyland/engine"
)

const stickDeadZone = 0.3

// Input polls the keyboard and the first standard gamepad once per update.
type Input struct {
	held [3]bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	left := ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		if ebiten.IsStandardGamepadLayoutAvailable(gid) {
			x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
			left = left || x < -stickDeadZone ||
				ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
			right = right || x > stickDeadZone ||
				ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
			jump = jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		}
	}

	i.held[engine.ButtonLeft] = left
	i.held[engine.ButtonRight] = right
	i.held[engine.ButtonJump] = jump
}

func (i *Input) Held(b engine.Button) bool {
	if int(b) >= len(i.held) {
		return false
	}
	return i.held[b]
}
