package input

import (
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vecedit/internal/editor"
)

// Bindings maps key codes to editor actions.
type Bindings struct {
	keys map[sdl.Keycode]editor.Action
}

// NewBindings resolves a configuration key map (action name to SDL key name,
// e.g. "rotate_cw": "J") into bindings. An empty key name leaves the action
// unbound.
func NewBindings(names map[string]string) (*Bindings, error) {
	return parseBindings(names, sdl.GetKeyFromName)
}

func parseBindings(names map[string]string, lookup func(string) sdl.Keycode) (*Bindings, error) {
	b := &Bindings{keys: make(map[sdl.Keycode]editor.Action, len(names))}

	// Sorted so that duplicate errors name the same pair every run.
	actions := make([]string, 0, len(names))
	for name := range names {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		action, err := editor.ParseAction(name)
		if err != nil {
			return nil, err
		}
		keyName := names[name]
		if keyName == "" {
			continue
		}
		key := lookup(keyName)
		if key == sdl.K_UNKNOWN {
			return nil, fmt.Errorf("action %s: unknown key %q", name, keyName)
		}
		if prev, ok := b.keys[key]; ok {
			return nil, fmt.Errorf("key %q bound to both %s and %s", keyName, prev, action)
		}
		b.keys[key] = action
	}
	return b, nil
}

// Action returns the action bound to key, or editor.ActionNone.
func (b *Bindings) Action(key sdl.Keycode) editor.Action {
	return b.keys[key]
}

// Len returns the number of bound keys.
func (b *Bindings) Len() int {
	return len(b.keys)
}
