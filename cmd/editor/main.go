package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/addon"
	"github.com/Aspecky/better-parenting/internal/console"
	"github.com/Aspecky/better-parenting/internal/debug"
	"github.com/Aspecky/better-parenting/internal/graphics"
	"github.com/Aspecky/better-parenting/internal/logger"
	"github.com/Aspecky/better-parenting/internal/ops"
	"github.com/Aspecky/better-parenting/internal/prefs"
	"github.com/Aspecky/better-parenting/internal/scene"
)

func main() {
	log := logger.New()
	pr, _ := prefs.Load()

	scn := scene.New()
	seedScene(scn)

	reg := addon.NewRegistry()
	menus := addon.NewMenus()
	keymap := addon.NewKeymap(addon.ContextViewport)

	pte := ops.NewParentToEmpty()
	if loc, err := ops.ParsePlacement(pr.Placement); err == nil {
		pte.Location = loc
	}
	pte.ShowName = pr.ShowName
	pte.ShowAxes = pr.ShowAxes
	pte.ShowInFront = pr.ShowInFront

	inst, err := addon.Install(reg, menus, keymap, addon.Options{
		DeleteChord:   pr.DeleteChord,
		SelectChord:   pr.SelectChord,
		ParentToEmpty: &pte,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "better-parenting:", err)
		os.Exit(1)
	}
	defer inst.Uninstall()

	con := console.New(log, reg, scn)
	view := scene.NewViewport()
	view.GridVisible = pr.GridVisible
	dbg := debug.New()
	dbg.ShowFPS = pr.ShowFPS
	dbg.ShowMemAlloc = pr.ShowMemAlloc

	log.Log("better-parenting installed; ESC for console, Tab cycles selection")
	for _, op := range reg.Operators() {
		log.Log("  " + op.ID())
	}

	cycle := newSelectionCycler(scn)
	update := func() {
		con.Update()
		if con.IsOpen() {
			return
		}
		view.Update()
		cycle()
		dispatch(keymap, reg, scn, log)
	}
	draw := func() {
		view.Draw(scn)
		con.Draw()
		dbg.Draw()
	}
	graphics.Run("Better Parenting", update, draw)
}

// dispatch runs the keymap: a matched chord executes its operator when Poll
// allows it. Ctrl+Z is the editor's own undo, outside the addon keymap.
func dispatch(keymap *addon.Keymap, reg *addon.Registry, scn *scene.Scene, log *logger.Logger) {
	if id, ok := keymap.Pressed(); ok {
		op, ok := reg.Lookup(id)
		if !ok || !op.Poll(scn) {
			return
		}
		if err := op.Execute(scn); err != nil {
			log.Log(err.Error())
		} else {
			log.Log(op.Label())
		}
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		if label, ok := scn.Undo(); ok {
			log.Log("undo: " + label)
		}
	}
}

// newSelectionCycler returns a per-frame func: Tab selects the next object
// (replacing the selection), Shift+Tab extends the selection instead.
func newSelectionCycler(scn *scene.Scene) func() {
	next := 0
	return func() {
		if !rl.IsKeyPressed(rl.KeyTab) {
			return
		}
		objs := scn.Objects()
		if len(objs) == 0 {
			return
		}
		if next >= len(objs) {
			next = 0
		}
		shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		if !shift {
			scn.DeselectAll()
		}
		obj := objs[next]
		scn.Select(obj)
		scn.SetActive(obj)
		next++
	}
}
