package addon

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aspecky/better-parenting/internal/ops"
)

func TestInstallRegistersEverything(t *testing.T) {
	reg := NewRegistry()
	menus := NewMenus()
	keymap := NewKeymap(ContextViewport)

	inst, err := Install(reg, menus, keymap, Options{})
	require.NoError(t, err)

	_, ok := reg.Lookup(ops.IDDeleteRecursive)
	assert.True(t, ok)
	_, ok = reg.Lookup(ops.IDSelectDescendants)
	assert.True(t, ok)
	_, ok = reg.Lookup(ops.IDParentToEmpty)
	assert.True(t, ok)

	assert.Equal(t, []string{ops.IDDeleteRecursive}, menus.Items(MenuObject))
	assert.Equal(t, []string{ops.IDParentToEmpty}, menus.Items(MenuAdd))

	del := Chord{Key: rl.KeyX, Ctrl: true}
	sel := Chord{Key: rl.KeyQ, Shift: true}
	id, ok := keymap.Lookup(del)
	assert.True(t, ok)
	assert.Equal(t, ops.IDDeleteRecursive, id)
	id, ok = keymap.Lookup(sel)
	assert.True(t, ok)
	assert.Equal(t, ops.IDSelectDescendants, id)

	inst.Uninstall()
}

func TestUninstallIsSymmetric(t *testing.T) {
	reg := NewRegistry()
	menus := NewMenus()
	keymap := NewKeymap(ContextViewport)

	inst, err := Install(reg, menus, keymap, Options{})
	require.NoError(t, err)
	inst.Uninstall()

	assert.Empty(t, reg.Operators())
	assert.Empty(t, menus.Items(MenuObject))
	assert.Empty(t, menus.Items(MenuAdd))
	assert.Equal(t, 0, keymap.Len())

	// Idempotent: a second teardown changes nothing.
	inst.Uninstall()
	assert.Empty(t, reg.Operators())
}

func TestInstallTwiceFailsCleanly(t *testing.T) {
	reg := NewRegistry()
	menus := NewMenus()
	keymap := NewKeymap(ContextViewport)

	inst, err := Install(reg, menus, keymap, Options{})
	require.NoError(t, err)

	// A second install collides on operator ids and must leave no trace
	// of its partial setup.
	before := len(reg.Operators())
	_, err = Install(reg, menus, keymap, Options{})
	assert.Error(t, err)
	assert.Len(t, reg.Operators(), before)
	assert.Equal(t, []string{ops.IDDeleteRecursive}, menus.Items(MenuObject))

	inst.Uninstall()
}

func TestInstallChordOverrides(t *testing.T) {
	reg := NewRegistry()
	menus := NewMenus()
	keymap := NewKeymap(ContextViewport)

	inst, err := Install(reg, menus, keymap, Options{DeleteChord: "ctrl+shift+d"})
	require.NoError(t, err)
	defer inst.Uninstall()

	id, ok := keymap.Lookup(Chord{Key: rl.KeyD, Ctrl: true, Shift: true})
	assert.True(t, ok)
	assert.Equal(t, ops.IDDeleteRecursive, id)
	_, ok = keymap.Lookup(Chord{Key: rl.KeyX, Ctrl: true})
	assert.False(t, ok)
}

func TestInstallBadChord(t *testing.T) {
	reg := NewRegistry()
	menus := NewMenus()
	keymap := NewKeymap(ContextViewport)

	_, err := Install(reg, menus, keymap, Options{DeleteChord: "ctrl+banana"})
	assert.Error(t, err)
	assert.Empty(t, reg.Operators())
	assert.Equal(t, 0, keymap.Len())
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(ops.DeleteRecursive{}))
	assert.Error(t, reg.Register(ops.DeleteRecursive{}))
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		in   string
		want Chord
	}{
		{"ctrl+x", Chord{Key: rl.KeyX, Ctrl: true}},
		{"shift+q", Chord{Key: rl.KeyQ, Shift: true}},
		{"ctrl+alt+delete", Chord{Key: rl.KeyDelete, Ctrl: true, Alt: true}},
		{"Z", Chord{Key: rl.KeyZ}},
	}
	for _, tt := range tests {
		got, err := ParseChord(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "ctrl+", "meta+x", "ctrl+xyz", "ctrl"} {
		_, err := ParseChord(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeymapBindConflict(t *testing.T) {
	km := NewKeymap(ContextViewport)
	c := Chord{Key: rl.KeyX, Ctrl: true}
	require.NoError(t, km.Bind(c, "a.one"))
	assert.Error(t, km.Bind(c, "a.two"))

	km.Unbind(c)
	assert.NoError(t, km.Bind(c, "a.two"))
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "ctrl+x", Chord{Key: rl.KeyX, Ctrl: true}.String())
	assert.Equal(t, "ctrl+shift+q", Chord{Key: rl.KeyQ, Ctrl: true, Shift: true}.String())
}
