package ops

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/scene"
)

// Placement selects where on the selection's bounding box the new empty is
// placed, along the up axis (+Y in this editor).
type Placement int

const (
	// PlaceCenter puts the empty at the bounding box center.
	PlaceCenter Placement = iota
	// PlaceTop puts the empty at the center of the top face.
	PlaceTop
	// PlaceBottom puts the empty at the center of the bottom face.
	PlaceBottom
)

func (p Placement) String() string {
	switch p {
	case PlaceTop:
		return "top"
	case PlaceBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ParsePlacement converts "top", "center", or "bottom" into a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "top":
		return PlaceTop, nil
	case "center":
		return PlaceCenter, nil
	case "bottom":
		return PlaceBottom, nil
	}
	return PlaceCenter, fmt.Errorf("unknown placement %q (want top, center, or bottom)", s)
}

// emptyName is the base name for the new anchor; the scene uniquifies it.
const emptyName = "Empty"

// ParentToEmpty creates a new empty over the selection and parents the
// selection under it, preserving every object's world placement. The empty's
// position comes from the mesh bounding box when the selection has any mesh
// objects, and from the mean of the selected translations otherwise.
type ParentToEmpty struct {
	Location Placement
	// Display flags applied to the new empty.
	ShowName    bool
	ShowAxes    bool
	ShowInFront bool
}

// NewParentToEmpty returns the operator with the host defaults: centered,
// name shown, axes hidden, drawn in front.
func NewParentToEmpty() ParentToEmpty {
	return ParentToEmpty{
		Location:    PlaceCenter,
		ShowName:    true,
		ShowAxes:    false,
		ShowInFront: true,
	}
}

func (ParentToEmpty) ID() string    { return IDParentToEmpty }
func (ParentToEmpty) Label() string { return "Parent to Empty" }

func (ParentToEmpty) Poll(s *scene.Scene) bool { return hasSelection(s) }

func (op ParentToEmpty) Execute(s *scene.Scene) error {
	sel := s.Selected()
	if len(sel) == 0 {
		return fmt.Errorf("%s: nothing selected", op.ID())
	}
	s.Snapshot(op.Label())

	pos := op.anchorPosition(sel)
	empty := s.AddEmpty(emptyName, pos)
	empty.Display = scene.DisplayFlags{
		ShowName:    op.ShowName,
		ShowAxes:    op.ShowAxes,
		ShowInFront: op.ShowInFront,
	}

	// Top-level members of the selection: objects whose parent is not also
	// selected. Nested selected objects follow their selected ancestor and
	// must not be relinked. Name-sorted so the external-parent pick below is
	// deterministic regardless of selection order.
	inSel := make(map[*scene.Object]bool, len(sel))
	for _, o := range sel {
		inSel[o] = true
	}
	var top []*scene.Object
	for _, o := range sel {
		if o.Parent == nil || !inSel[o.Parent] {
			top = append(top, o)
		}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Name < top[j].Name })

	var external *scene.Object
	for _, o := range top {
		if external == nil && o.Parent != nil {
			external = o.Parent
		}
		if err := s.SetParentKeepTransform(o, empty); err != nil {
			return fmt.Errorf("%s: %w", op.ID(), err)
		}
	}

	// If any top-level member used to hang under a parent outside the
	// selection, the empty takes that slot so the hierarchy above the
	// selection is preserved. The external parent cannot be in the selection
	// (it failed the top-level test above), so this can never cycle.
	if external != nil {
		if err := s.SetParentKeepTransform(empty, external); err != nil {
			return fmt.Errorf("%s: %w", op.ID(), err)
		}
	}

	s.DeselectAll()
	s.Select(empty)
	s.SetActive(empty)
	return nil
}

// anchorPosition derives the empty's world position: the unweighted mean of
// all selected world translations, replaced by a bounding-box placement when
// the selection contains mesh objects.
func (op ParentToEmpty) anchorPosition(sel []*scene.Object) rl.Vector3 {
	var sum rl.Vector3
	for _, o := range sel {
		sum = rl.Vector3Add(sum, o.WorldPosition())
	}
	pos := rl.Vector3Scale(sum, 1/float32(len(sel)))

	var meshes []*scene.Object
	for _, o := range sel {
		if o.Kind == scene.Mesh {
			meshes = append(meshes, o)
		}
	}
	if len(meshes) == 0 {
		return pos
	}

	center, size := BoundingBox(meshes)
	switch op.Location {
	case PlaceTop:
		return rl.Vector3Add(center, rl.NewVector3(0, size.Y/2, 0))
	case PlaceBottom:
		return rl.Vector3Subtract(center, rl.NewVector3(0, size.Y/2, 0))
	default:
		return center
	}
}
