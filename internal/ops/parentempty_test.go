package ops

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aspecky/better-parenting/internal/mesh"
	"github.com/Aspecky/better-parenting/internal/scene"
)

// runParentToEmpty executes the operator on the current selection and
// returns the created empty (the sole selected object afterwards).
func runParentToEmpty(t *testing.T, s *scene.Scene, op ParentToEmpty) *scene.Object {
	t.Helper()
	require.NoError(t, op.Execute(s))
	sel := s.Selected()
	require.Len(t, sel, 1)
	require.Equal(t, scene.Empty, sel[0].Kind)
	return sel[0]
}

func TestParentToEmptyMeanTranslation(t *testing.T) {
	s := scene.New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	b := s.AddEmpty("B", rl.NewVector3(2, 0, 0))
	s.Select(a)
	s.Select(b)

	// No mesh objects selected, so the anchor lands on the mean translation.
	empty := runParentToEmpty(t, s, NewParentToEmpty())
	assertVec3(t, rl.NewVector3(1, 0, 0), empty.WorldPosition())
	assert.Equal(t, empty, s.Active())
}

func TestParentToEmptyPlacements(t *testing.T) {
	// Box spanning (-1,0,-1)..(1,2,1): center (0,1,0), size (2,2,2).
	tests := []struct {
		name string
		loc  Placement
		want rl.Vector3
	}{
		{"center", PlaceCenter, rl.NewVector3(0, 1, 0)},
		{"top", PlaceTop, rl.NewVector3(0, 2, 0)},
		{"bottom", PlaceBottom, rl.NewVector3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New()
			box := s.AddMesh("Box", rl.NewVector3(0, 1, 0), mesh.Cube(2, 2, 2))
			s.Select(box)

			op := NewParentToEmpty()
			op.Location = tt.loc
			empty := runParentToEmpty(t, s, op)
			assertVec3(t, tt.want, empty.WorldPosition())
		})
	}
}

func TestParentToEmptyPreservesWorldTransform(t *testing.T) {
	s := scene.New()
	a := s.AddMesh("A", rl.NewVector3(5, 0, 0), mesh.Cube(1, 1, 1))
	s.Select(a)

	empty := runParentToEmpty(t, s, NewParentToEmpty())
	assert.Equal(t, empty, a.Parent)
	assertVec3(t, rl.NewVector3(5, 0, 0), a.WorldPosition())
}

func TestParentToEmptyNestedSelectionKeepsInnerLinks(t *testing.T) {
	s := scene.New()
	a := s.AddMesh("A", rl.NewVector3(0, 0, 0), mesh.Cube(1, 1, 1))
	b := s.AddMesh("B", rl.NewVector3(1, 0, 0), mesh.Cube(1, 1, 1))
	require.NoError(t, s.SetParentKeepTransform(b, a))
	s.Select(a)
	s.Select(b)

	empty := runParentToEmpty(t, s, NewParentToEmpty())
	// Only the top-level member A is relinked; B stays under A.
	assert.Equal(t, empty, a.Parent)
	assert.Equal(t, a, b.Parent)
	assertVec3(t, rl.NewVector3(1, 0, 0), b.WorldPosition())
}

func TestParentToEmptyReanchorsUnderExternalParent(t *testing.T) {
	s := scene.New()
	rig := s.AddEmpty("Rig", rl.NewVector3(0, 0, 0))
	a := s.AddMesh("A", rl.NewVector3(1, 0, 0), mesh.Cube(1, 1, 1))
	require.NoError(t, s.SetParentKeepTransform(a, rig))
	s.Select(a)

	empty := runParentToEmpty(t, s, NewParentToEmpty())
	// A's old parent is outside the selection, so the empty takes its slot.
	assert.Equal(t, rig, empty.Parent)
	assert.Equal(t, empty, a.Parent)
	assertVec3(t, rl.NewVector3(1, 0, 0), a.WorldPosition())
}

func TestParentToEmptyExternalParentTieBreakByName(t *testing.T) {
	s := scene.New()
	rigB := s.AddEmpty("RigB", rl.NewVector3(0, 0, 0))
	rigA := s.AddEmpty("RigA", rl.NewVector3(0, 0, 0))
	x := s.AddMesh("X", rl.NewVector3(1, 0, 0), mesh.Cube(1, 1, 1))
	y := s.AddMesh("Y", rl.NewVector3(2, 0, 0), mesh.Cube(1, 1, 1))
	require.NoError(t, s.SetParentKeepTransform(x, rigB))
	require.NoError(t, s.SetParentKeepTransform(y, rigA))

	// Selection order is Y then X; the tie-break is name order, so X's
	// parent (RigB) wins regardless.
	s.Select(y)
	s.Select(x)

	empty := runParentToEmpty(t, s, NewParentToEmpty())
	assert.Equal(t, rigB, empty.Parent)
}

func TestParentToEmptyAnchorParentNeverSelected(t *testing.T) {
	s := scene.New()
	rig := s.AddEmpty("Rig", rl.NewVector3(0, 0, 0))
	a := s.AddMesh("A", rl.NewVector3(1, 0, 0), mesh.Cube(1, 1, 1))
	require.NoError(t, s.SetParentKeepTransform(a, rig))
	s.Select(rig)
	s.Select(a)

	// Both the rig and its child are selected: the rig is the only
	// top-level member and has no external parent, so the empty stays top
	// level. Its parent must never be a member of the old selection.
	empty := runParentToEmpty(t, s, NewParentToEmpty())
	assert.Nil(t, empty.Parent)
	assert.Equal(t, empty, rig.Parent)
}

func TestParentToEmptySingleNonMesh(t *testing.T) {
	s := scene.New()
	a := s.AddEmpty("A", rl.NewVector3(3, 1, 2))
	s.Select(a)

	empty := runParentToEmpty(t, s, NewParentToEmpty())
	assertVec3(t, rl.NewVector3(3, 1, 2), empty.WorldPosition())
}

func TestParentToEmptyDisplayFlags(t *testing.T) {
	s := scene.New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	s.Select(a)

	op := NewParentToEmpty()
	op.ShowName = false
	op.ShowAxes = true
	op.ShowInFront = false
	empty := runParentToEmpty(t, s, op)
	assert.Equal(t, scene.DisplayFlags{ShowName: false, ShowAxes: true, ShowInFront: false}, empty.Display)
}

func TestParentToEmptyEmptySelection(t *testing.T) {
	s := scene.New()
	op := NewParentToEmpty()
	assert.False(t, op.Poll(s))
	assert.Error(t, op.Execute(s))
}

func TestParsePlacement(t *testing.T) {
	for _, want := range []Placement{PlaceTop, PlaceCenter, PlaceBottom} {
		got, err := ParsePlacement(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePlacement("sideways")
	assert.Error(t, err)
}
