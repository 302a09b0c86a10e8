package mesh

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Data holds the CPU-side vertex positions of a mesh object, in model space.
// The editor only needs positions (for bounding boxes and wireframe drawing);
// normals/UVs belong to the host's render path and are not kept here.
type Data struct {
	Vertices []rl.Vector3
}

// defaultPyramidBase is the base half-width of the pyramid primitive, so the
// default pyramid fits the same unit footprint as the cube.
const defaultPyramidBase = 0.5

// Cube returns the 8 corner vertices of an axis-aligned box with the given
// side lengths, centered at the model-space origin (matching raylib's
// GenMeshCube centering).
func Cube(width, height, length float32) *Data {
	hw, hh, hl := width/2, height/2, length/2
	return &Data{Vertices: []rl.Vector3{
		{X: -hw, Y: -hh, Z: -hl},
		{X: hw, Y: -hh, Z: -hl},
		{X: hw, Y: hh, Z: -hl},
		{X: -hw, Y: hh, Z: -hl},
		{X: -hw, Y: -hh, Z: hl},
		{X: hw, Y: -hh, Z: hl},
		{X: hw, Y: hh, Z: hl},
		{X: -hw, Y: hh, Z: hl},
	}}
}

// Plane returns the 4 corner vertices of a quad on the XZ plane (Y=0),
// centered at the model-space origin (raylib's plane is centered too).
func Plane(width, length float32) *Data {
	hw, hl := width/2, length/2
	return &Data{Vertices: []rl.Vector3{
		{X: -hw, Y: 0, Z: -hl},
		{X: hw, Y: 0, Z: -hl},
		{X: hw, Y: 0, Z: hl},
		{X: -hw, Y: 0, Z: hl},
	}}
}

// Pyramid returns a 4-sided pyramid: unit square base on Y=0 and an apex at
// the given height. Base is centered so the model-space origin is the base
// center, same convention as Plane.
func Pyramid(height float32) *Data {
	b := float32(defaultPyramidBase)
	return &Data{Vertices: []rl.Vector3{
		{X: -b, Y: 0, Z: -b},
		{X: b, Y: 0, Z: -b},
		{X: b, Y: 0, Z: b},
		{X: -b, Y: 0, Z: b},
		{X: 0, Y: height, Z: 0},
	}}
}

// Clone returns a deep copy of the mesh data. Used by the scene's undo
// snapshots so a restored object does not alias live vertex slices.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := &Data{Vertices: make([]rl.Vector3, len(d.Vertices))}
	copy(out.Vertices, d.Vertices)
	return out
}
