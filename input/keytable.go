package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to logical keys
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Escape)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings, matched case-insensitively
	Runes map[rune]Key
}

// DefaultKeyTable returns the default key bindings
// Arrows and a/d strafe, space fires, q/Esc/Ctrl+C quit, r restarts, m mutes
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyUp:     KeyShoot,
			tcell.KeyEnter:  KeyShoot,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'a': KeyLeft,
			'h': KeyLeft,
			'd': KeyRight,
			'l': KeyRight,
			' ': KeyShoot,
			'k': KeyShoot,
			'q': KeyQuit,
			'r': KeyRestart,
			'm': KeyMute,
		},
	}
}

// Lookup resolves a terminal key event to a logical key
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := kt.SpecialKeys[ev.Key()]
	return k, ok
}
