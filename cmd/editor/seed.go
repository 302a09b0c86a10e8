package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/mesh"
	"github.com/Aspecky/better-parenting/internal/scene"
)

// seedScene fills the demo editor with a small hierarchy to exercise the
// operators on: a table (top parented over four legs), a loose crate, a lamp
// rig under an empty, and a floor plane.
func seedScene(scn *scene.Scene) {
	scn.AddMesh("Floor", rl.NewVector3(0, 0, 0), mesh.Plane(12, 12))

	top := scn.AddMesh("TableTop", rl.NewVector3(0, 1, 0), mesh.Cube(3, 0.2, 1.5))
	legPos := []rl.Vector3{
		{X: -1.3, Y: 0.45, Z: -0.55},
		{X: 1.3, Y: 0.45, Z: -0.55},
		{X: -1.3, Y: 0.45, Z: 0.55},
		{X: 1.3, Y: 0.45, Z: 0.55},
	}
	for _, p := range legPos {
		leg := scn.AddMesh("Leg", p, mesh.Cube(0.15, 0.9, 0.15))
		_ = scn.SetParentKeepTransform(leg, top)
	}

	scn.AddMesh("Crate", rl.NewVector3(3, 0.5, -2), mesh.Cube(1, 1, 1))

	rig := scn.AddEmpty("LampRig", rl.NewVector3(-3, 0, 2))
	rig.Display.ShowName = true
	pole := scn.AddMesh("LampPole", rl.NewVector3(-3, 1, 2), mesh.Cube(0.1, 2, 0.1))
	shade := scn.AddMesh("LampShade", rl.NewVector3(-3, 2.1, 2), mesh.Pyramid(0.4))
	_ = scn.SetParentKeepTransform(pole, rig)
	_ = scn.SetParentKeepTransform(shade, pole)
}
