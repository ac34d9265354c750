// Package input turns terminal events into game intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Game intents
	IntentAction  // Space, left click
	IntentRestart // Enter, r
)

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentAction:     "action",
	IntentRestart:    "restart",
}

func (i IntentType) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
