package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/mesh"
)

// Scene is the host-owned scene graph: the flat object registry plus the
// parent/child structure hanging off it, the current selection, and the undo
// stack. All mutation goes through Scene methods so selection state, child
// lists, and undo snapshots stay consistent. Single-threaded: the editor
// serializes user actions, so there is no locking here.
type Scene struct {
	objects  []*Object // creation order
	selected []*Object // insertion order, no duplicates
	active   *Object
	undo     undoStack
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Objects returns all objects in creation order. The returned slice is a
// copy; the objects themselves are shared.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Contains reports whether obj is currently part of this scene.
func (s *Scene) Contains(obj *Object) bool {
	for _, o := range s.objects {
		if o == obj {
			return true
		}
	}
	return false
}

// uniqueName returns name, or name with a numeric suffix (Cube.001 style)
// when an object with that name already exists.
func (s *Scene) uniqueName(name string) string {
	taken := func(n string) bool {
		for _, o := range s.objects {
			if o.Name == n {
				return true
			}
		}
		return false
	}
	if !taken(name) {
		return name
	}
	for i := 1; ; i++ {
		n := fmt.Sprintf("%s.%03d", name, i)
		if !taken(n) {
			return n
		}
	}
}

// AddEmpty creates a top-level empty at the given world position with
// identity rotation/scale and adds it to the scene. The name is made unique.
func (s *Scene) AddEmpty(name string, pos rl.Vector3) *Object {
	obj := &Object{
		Name:  s.uniqueName(name),
		Kind:  Empty,
		Local: translationMatrix(pos),
	}
	s.objects = append(s.objects, obj)
	return obj
}

// AddMesh creates a top-level mesh object at the given world position and
// adds it to the scene. The name is made unique.
func (s *Scene) AddMesh(name string, pos rl.Vector3, data *mesh.Data) *Object {
	obj := &Object{
		Name:  s.uniqueName(name),
		Kind:  Mesh,
		Local: translationMatrix(pos),
		Mesh:  data,
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Remove deletes exactly one object from the scene: it is detached from its
// parent, dropped from selection (and as active object), and its children
// become top level with their world transforms preserved. Removing a whole
// subtree is an operator concern, not the scene's.
func (s *Scene) Remove(obj *Object) {
	idx := -1
	for i, o := range s.objects {
		if o == obj {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Orphan children to top level, keeping their world placement.
	for _, child := range append([]*Object(nil), obj.Children...) {
		w := child.World()
		s.detach(child)
		child.SetWorld(w)
	}

	s.detach(obj)
	s.Deselect(obj)
	if s.active == obj {
		s.active = nil
	}
	s.objects = append(s.objects[:idx], s.objects[idx+1:]...)
	obj.Parent = nil
	obj.Children = nil
}

// detach unlinks obj from its current parent, if any. The local transform is
// left as-is; callers decide whether to preserve the world transform.
func (s *Scene) detach(obj *Object) {
	p := obj.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == obj {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	obj.Parent = nil
}

// SetParent relinks child under parent (nil = top level) without adjusting
// transforms: the local transform is kept, so the object moves in world space
// if the new parent's transform differs. Returns an error if the relink would
// create a cycle (parent inside child's own subtree, or child itself).
func (s *Scene) SetParent(child, parent *Object) error {
	if parent != nil && (parent == child || parent.IsDescendantOf(child)) {
		return fmt.Errorf("set parent: %q is in the subtree of %q", parent.Name, child.Name)
	}
	s.detach(child)
	if parent != nil {
		child.Parent = parent
		parent.Children = append(parent.Children, child)
	}
	return nil
}

// SetParentKeepTransform relinks child under parent while preserving the
// child's world transform: the world matrix is captured before the relink and
// reapplied after, so the object's visual placement is unchanged.
func (s *Scene) SetParentKeepTransform(child, parent *Object) error {
	w := child.World()
	if err := s.SetParent(child, parent); err != nil {
		return err
	}
	child.SetWorld(w)
	return nil
}

// Select adds obj to the selection. Selecting an already-selected object is
// a no-op, so the selection list never holds duplicates.
func (s *Scene) Select(obj *Object) {
	if obj == nil || obj.selected {
		return
	}
	obj.selected = true
	s.selected = append(s.selected, obj)
}

// Deselect removes obj from the selection.
func (s *Scene) Deselect(obj *Object) {
	if obj == nil || !obj.selected {
		return
	}
	obj.selected = false
	for i, o := range s.selected {
		if o == obj {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			break
		}
	}
}

// DeselectAll clears the selection. The active object is kept (active and
// selected are separate states, as in the host application).
func (s *Scene) DeselectAll() {
	for _, o := range s.selected {
		o.selected = false
	}
	s.selected = s.selected[:0]
}

// Selected returns the selection in insertion order. The returned slice is a
// copy.
func (s *Scene) Selected() []*Object {
	out := make([]*Object, len(s.selected))
	copy(out, s.selected)
	return out
}

// SetActive marks obj as the active object (the one shown in property panels
// and used as the target of single-object actions). The active object is
// usually, but not necessarily, selected.
func (s *Scene) SetActive(obj *Object) {
	s.active = obj
}

// Active returns the active object, or nil.
func (s *Scene) Active() *Object {
	return s.active
}
