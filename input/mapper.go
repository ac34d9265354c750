package input

import "github.com/gdamore/tcell/v2"

// Mapper converts raw terminal events to intents
// Mouse clicks fire on press only; holding or dragging does not repeat
type Mapper struct {
	table       *KeyTable
	lastButtons tcell.ButtonMask
}

// NewMapper creates a mapper over table, nil uses the default bindings
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table}
}

// Map returns the intent for ev, IntentNone for unbound input
func (m *Mapper) Map(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.table.Lookup(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
		m.lastButtons = buttons
		if pressed {
			return IntentAction
		}

	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
