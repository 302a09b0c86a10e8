package ops

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/scene"
)

// BoundingBox computes the axis-aligned world-space bounding box of the
// given mesh objects: every vertex of every object, transformed by that
// object's world matrix, with min/max tracked independently per axis.
// Returns the box center ((min+max)/2) and size (max-min).
//
// The reduction over an empty set is undefined (min starts at +Inf, max at
// -Inf per axis), so callers must branch on mesh count before calling; a
// collection with no vertices at all yields a degenerate box and is the
// caller's bug.
func BoundingBox(objs []*scene.Object) (center, size rl.Vector3) {
	min := rl.NewVector3(math32.Inf(1), math32.Inf(1), math32.Inf(1))
	max := rl.NewVector3(math32.Inf(-1), math32.Inf(-1), math32.Inf(-1))
	for _, obj := range objs {
		if obj.Mesh == nil {
			continue
		}
		world := obj.World()
		for _, v := range obj.Mesh.Vertices {
			p := rl.Vector3Transform(v, world)
			min.X = math32.Min(min.X, p.X)
			min.Y = math32.Min(min.Y, p.Y)
			min.Z = math32.Min(min.Z, p.Z)
			max.X = math32.Max(max.X, p.X)
			max.Y = math32.Max(max.Y, p.Y)
			max.Z = math32.Max(max.Z, p.Z)
		}
	}
	center = rl.Vector3Scale(rl.Vector3Add(min, max), 0.5)
	size = rl.Vector3Subtract(max, min)
	return center, size
}
