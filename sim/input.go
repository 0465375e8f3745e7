package sim

// Input is one frame of decoded player input.
type Input struct {
	// Move is the held direction, each axis -1, 0 or 1
	Move Vec2

	// Pointer is the aim point in screen coordinates
	Pointer Vec2

	// FirePressed and FireReleased are this frame's button edges
	FirePressed  bool
	FireReleased bool
}

// Intent converts held direction keys into a movement intent
func Intent(up, down, left, right bool) Vec2 {
	var v Vec2
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	return v
}
