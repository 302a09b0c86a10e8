package scene

// Undo here is snapshot-based: before an operator mutates the scene, it calls
// Snapshot once, and the whole graph (objects, links, transforms, selection)
// is deep-copied onto a stack. One snapshot per user action gives the
// all-or-nothing grouping the operators rely on; selections are user-sized,
// so full copies are cheap enough.

// maxUndoDepth bounds the undo stack; the oldest snapshot is dropped when
// the stack is full.
const maxUndoDepth = 64

// undoRecord is one saved scene state with the label of the action that is
// about to change it.
type undoRecord struct {
	label    string
	objects  []*Object
	selected []*Object
	active   *Object
}

type undoStack struct {
	records []undoRecord
}

// Snapshot saves the current scene state under the given action label.
// Call once per operator invocation, before mutating.
func (s *Scene) Snapshot(label string) {
	rec := undoRecord{label: label}
	rec.objects, rec.selected, rec.active = s.cloneState()
	if len(s.undo.records) >= maxUndoDepth {
		copy(s.undo.records, s.undo.records[1:])
		s.undo.records = s.undo.records[:len(s.undo.records)-1]
	}
	s.undo.records = append(s.undo.records, rec)
}

// Undo restores the most recent snapshot and returns its label.
// ok is false when the stack is empty.
func (s *Scene) Undo() (label string, ok bool) {
	n := len(s.undo.records)
	if n == 0 {
		return "", false
	}
	rec := s.undo.records[n-1]
	s.undo.records = s.undo.records[:n-1]
	s.objects = rec.objects
	s.selected = rec.selected
	s.active = rec.active
	return rec.label, true
}

// UndoDepth returns the number of snapshots on the stack.
func (s *Scene) UndoDepth() int {
	return len(s.undo.records)
}

// cloneState deep-copies the object graph, remapping parent/child pointers,
// the selection list, and the active object onto the copies.
func (s *Scene) cloneState() (objects, selected []*Object, active *Object) {
	remap := make(map[*Object]*Object, len(s.objects))
	objects = make([]*Object, len(s.objects))
	for i, o := range s.objects {
		c := &Object{
			Name:     o.Name,
			Kind:     o.Kind,
			Local:    o.Local,
			Display:  o.Display,
			Mesh:     o.Mesh.Clone(),
			selected: o.selected,
		}
		remap[o] = c
		objects[i] = c
	}
	for i, o := range s.objects {
		c := objects[i]
		if o.Parent != nil {
			c.Parent = remap[o.Parent]
		}
		if len(o.Children) > 0 {
			c.Children = make([]*Object, len(o.Children))
			for j, ch := range o.Children {
				c.Children[j] = remap[ch]
			}
		}
	}
	selected = make([]*Object, len(s.selected))
	for i, o := range s.selected {
		selected[i] = remap[o]
	}
	if s.active != nil {
		active = remap[s.active]
	}
	return objects, selected, active
}
