package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/mesh"
)

// Kind enumerates the types of objects in the scene graph.
type Kind int

const (
	// Empty is a non-renderable object used purely as a parent transform
	// (drawn as an axis gizmo in the editor viewport).
	Empty Kind = iota
	// Mesh is an object with vertex data.
	Mesh
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// DisplayFlags controls how an object is drawn in the editor viewport.
// Each flag is independently toggleable.
type DisplayFlags struct {
	ShowName    bool // draw the object name next to it
	ShowAxes    bool // draw local axis lines
	ShowInFront bool // draw on top of other geometry (depth test off)
}

// Object is a node of the scene graph. The scene owns all objects; parent is
// a plain pointer back into the graph (nil = top level) and children are kept
// in insertion order. Local is the transform relative to the parent; use
// Scene.World / Scene.SetWorld for global-space access.
type Object struct {
	Name     string
	Kind     Kind
	Local    rl.Matrix
	Parent   *Object
	Children []*Object
	Display  DisplayFlags
	Mesh     *mesh.Data // non-nil only for Kind == Mesh

	selected bool
}

// Selected reports whether the object is in the scene's selection.
// Selection state is mutated through the Scene so the selection list and the
// per-object flag never disagree.
func (o *Object) Selected() bool {
	return o.selected
}

// LocalPosition returns the translation component of the local transform.
func (o *Object) LocalPosition() rl.Vector3 {
	return rl.NewVector3(o.Local.M12, o.Local.M13, o.Local.M14)
}

// World returns the object's world transform: its local transform chained
// through every ancestor. raylib's MatrixMultiply applies the left operand
// first, so the local transform is the left operand at every step.
func (o *Object) World() rl.Matrix {
	if o.Parent == nil {
		return o.Local
	}
	return rl.MatrixMultiply(o.Local, o.Parent.World())
}

// WorldPosition returns the translation component of the world transform.
func (o *Object) WorldPosition() rl.Vector3 {
	w := o.World()
	return rl.NewVector3(w.M12, w.M13, w.M14)
}

// SetWorld sets the local transform so that the object's world transform
// equals w, given its current parent.
func (o *Object) SetWorld(w rl.Matrix) {
	if o.Parent == nil {
		o.Local = w
		return
	}
	o.Local = rl.MatrixMultiply(w, rl.MatrixInvert(o.Parent.World()))
}

// IsDescendantOf reports whether o is a transitive descendant of ancestor.
// An object is not a descendant of itself.
func (o *Object) IsDescendantOf(ancestor *Object) bool {
	for p := o.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// translationMatrix returns a pure translation transform. Rotation and scale
// stay identity, matching how the host creates new empties.
func translationMatrix(pos rl.Vector3) rl.Matrix {
	return rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
}
