package addon

import (
	"fmt"

	"github.com/Aspecky/better-parenting/internal/ops"
)

// Default shortcut chords; prefs can override them.
const (
	DefaultDeleteChord = "ctrl+x"
	DefaultSelectChord = "shift+q"
)

// Options configures Install. Zero value = defaults.
type Options struct {
	// DeleteChord and SelectChord override the default shortcuts
	// (chord strings like "ctrl+x"). Empty = default.
	DeleteChord string
	SelectChord string
	// ParentToEmpty carries the operator defaults (placement, display
	// flags), typically loaded from prefs. Nil = host defaults.
	ParentToEmpty *ops.ParentToEmpty
}

// Installed is the live registration: everything Install set up, remembered
// so Uninstall can reverse it symmetrically. Menu entries, key bindings, and
// registry entries are all removed in Uninstall; nothing else is touched.
type Installed struct {
	reg    *Registry
	menus  *Menus
	keymap *Keymap

	opIDs     []string
	menuByOp  map[string]string
	chordByOp map[string]Chord
}

// Install registers the addon's three operators, appends them to the host
// menus, and binds their shortcuts: delete recursive into the object menu
// with ctrl+x, parent to empty into the add menu, select descendants on
// shift+q. On any failure everything already set up is torn down again and
// the error returned, so a failed Install leaves no trace.
func Install(reg *Registry, menus *Menus, keymap *Keymap, opts Options) (*Installed, error) {
	inst := &Installed{
		reg:       reg,
		menus:     menus,
		keymap:    keymap,
		menuByOp:  make(map[string]string),
		chordByOp: make(map[string]Chord),
	}

	pte := ops.NewParentToEmpty()
	if opts.ParentToEmpty != nil {
		pte = *opts.ParentToEmpty
	}

	steps := []struct {
		op    ops.Operator
		menu  string // "" = no menu entry
		chord string // "" = no shortcut
	}{
		{ops.DeleteRecursive{}, MenuObject, chordOr(opts.DeleteChord, DefaultDeleteChord)},
		{pte, MenuAdd, ""},
		{ops.SelectDescendants{}, "", chordOr(opts.SelectChord, DefaultSelectChord)},
	}

	for _, st := range steps {
		if err := inst.install(st.op, st.menu, st.chord); err != nil {
			inst.Uninstall()
			return nil, fmt.Errorf("install %s: %w", st.op.ID(), err)
		}
	}
	return inst, nil
}

func chordOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// install registers one operator with its optional menu entry and shortcut,
// recording each acquisition so Uninstall can release it.
func (inst *Installed) install(op ops.Operator, menu, chord string) error {
	if err := inst.reg.Register(op); err != nil {
		return err
	}
	inst.opIDs = append(inst.opIDs, op.ID())

	if menu != "" {
		inst.menus.Append(menu, op.ID())
		inst.menuByOp[op.ID()] = menu
	}
	if chord != "" {
		c, err := ParseChord(chord)
		if err != nil {
			return err
		}
		if err := inst.keymap.Bind(c, op.ID()); err != nil {
			return err
		}
		inst.chordByOp[op.ID()] = c
	}
	return nil
}

// Uninstall reverses Install: menu entries removed, chords unbound,
// operators unregistered. Safe to call twice and after a partial Install.
func (inst *Installed) Uninstall() {
	for _, id := range inst.opIDs {
		if menu, ok := inst.menuByOp[id]; ok {
			inst.menus.Remove(menu, id)
			delete(inst.menuByOp, id)
		}
		if c, ok := inst.chordByOp[id]; ok {
			inst.keymap.Unbind(c)
			delete(inst.chordByOp, id)
		}
		inst.reg.Unregister(id)
	}
	inst.opIDs = nil
}
