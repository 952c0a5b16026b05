package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - more power
	ActionDown            // S, Down arrow - less power
	ActionLeft            // A, Left arrow - rotate aim
	ActionRight           // D, Right arrow - rotate aim
	ActionShoot           // Space - take the shot
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - new round after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause
	ActionZoomIn          // +
	ActionZoomOut         // -
	ActionCenter          // C - fit the view
	ActionPanUp           // Shift+Up / K
	ActionPanDown         // Shift+Down / J
	ActionPanLeft         // Shift+Left / H
	ActionPanRight        // Shift+Right / L
	ActionAddPlayer       // N - add a simulated player
	ActionRemovePlayer    // X - remove the current player
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionShoot:        "Shoot",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
	ActionZoomIn:       "ZoomIn",
	ActionZoomOut:      "ZoomOut",
	ActionCenter:       "Center",
	ActionPanUp:        "PanUp",
	ActionPanDown:      "PanDown",
	ActionPanLeft:      "PanLeft",
	ActionPanRight:     "PanRight",
	ActionAddPlayer:    "AddPlayer",
	ActionRemovePlayer: "RemovePlayer",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "Unknown"
}

// Pointer is a mouse click in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for a single tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Click is the last mouse press this frame, if any.
	Click Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetClick records a mouse press at cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = Pointer{X: x, Y: y, Valid: true}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Click = f.Click
	return clone
}
