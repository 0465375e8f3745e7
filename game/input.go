package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dodgecircles/sim"
)

// Controls are the frontend key presses polled each frame
type Controls struct {
	Start       bool
	ToggleMute  bool
	VolumeUp    bool
	VolumeDown  bool
	TogglePerf  bool
	ToggleDebug bool
}

// PlayerInput polls the keyboard and mouse
type PlayerInput struct {
	pointer sim.Vec2
}

// NewPlayerInput creates a new player input poller
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{}
}

// Poll reads this frame's simulation input
func (p *PlayerInput) Poll() sim.Input {
	move := sim.Intent(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	)

	// The last known position is kept while the cursor is outside the window
	x, y := ebiten.CursorPosition()
	if x != 0 || y != 0 {
		p.pointer = sim.Vec2{X: float64(x), Y: float64(y)}
	}

	return sim.Input{
		Move:         move,
		Pointer:      p.pointer,
		FirePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		FireReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// PollControls reads the frontend keys
func PollControls() Controls {
	return Controls{
		Start:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ToggleMute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		VolumeUp:    inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd),
		VolumeDown:  inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract),
		TogglePerf:  inpututil.IsKeyJustPressed(ebiten.KeyF2),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
