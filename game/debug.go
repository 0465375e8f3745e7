package game

// DebugState holds global debug flags that persist across rounds
type DebugState struct {
	ShowPerf   bool // Show the frame rate and population overlay
	ShowBounds bool // Outline collision shapes
}

// Global debug state instance (persists across rounds)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
