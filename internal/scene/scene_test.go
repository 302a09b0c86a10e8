package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aspecky/better-parenting/internal/mesh"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps)
	assert.InDelta(t, want.Y, got.Y, eps)
	assert.InDelta(t, want.Z, got.Z, eps)
}

func TestWorldTransformChains(t *testing.T) {
	s := New()
	p := s.AddEmpty("P", rl.NewVector3(1, 2, 3))
	c := s.AddEmpty("C", rl.NewVector3(0, 0, 0))
	require.NoError(t, s.SetParent(c, p))
	c.Local = rl.MatrixTranslate(10, 0, 0)

	assertVec3(t, rl.NewVector3(11, 2, 3), c.WorldPosition())
}

func TestSetParentKeepTransformPreservesWorld(t *testing.T) {
	s := New()
	anchor := s.AddEmpty("Anchor", rl.NewVector3(0, 0, 0))
	obj := s.AddMesh("Obj", rl.NewVector3(5, 0, 0), mesh.Cube(1, 1, 1))

	require.NoError(t, s.SetParentKeepTransform(obj, anchor))
	assert.Equal(t, anchor, obj.Parent)
	assertVec3(t, rl.NewVector3(5, 0, 0), obj.WorldPosition())
}

func TestSetParentKeepTransformScaledParent(t *testing.T) {
	s := New()
	parent := s.AddEmpty("P", rl.NewVector3(0, 0, 0))
	parent.Local = rl.MatrixMultiply(rl.MatrixScale(2, 2, 2), rl.MatrixTranslate(1, 0, 0))
	obj := s.AddEmpty("O", rl.NewVector3(5, 0, 0))

	require.NoError(t, s.SetParentKeepTransform(obj, parent))
	assertVec3(t, rl.NewVector3(5, 0, 0), obj.WorldPosition())
}

func TestSetParentRejectsCycles(t *testing.T) {
	s := New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	b := s.AddEmpty("B", rl.NewVector3(0, 0, 0))
	require.NoError(t, s.SetParent(b, a))

	assert.Error(t, s.SetParent(a, b))
	assert.Error(t, s.SetParent(a, a))
	// The failed relinks must not have changed anything.
	assert.Nil(t, a.Parent)
	assert.Equal(t, a, b.Parent)
}

func TestRemoveOrphansChildrenToTopLevel(t *testing.T) {
	s := New()
	p := s.AddEmpty("P", rl.NewVector3(1, 1, 1))
	c := s.AddMesh("C", rl.NewVector3(2, 1, 1), mesh.Cube(1, 1, 1))
	require.NoError(t, s.SetParentKeepTransform(c, p))

	s.Remove(p)
	assert.False(t, s.Contains(p))
	assert.Nil(t, c.Parent)
	assertVec3(t, rl.NewVector3(2, 1, 1), c.WorldPosition())
}

func TestRemoveClearsSelectionAndActive(t *testing.T) {
	s := New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	s.Select(a)
	s.SetActive(a)

	s.Remove(a)
	assert.Empty(t, s.Selected())
	assert.Nil(t, s.Active())
}

func TestUniqueNames(t *testing.T) {
	s := New()
	a := s.AddEmpty("Empty", rl.NewVector3(0, 0, 0))
	b := s.AddEmpty("Empty", rl.NewVector3(0, 0, 0))
	c := s.AddEmpty("Empty", rl.NewVector3(0, 0, 0))

	assert.Equal(t, "Empty", a.Name)
	assert.Equal(t, "Empty.001", b.Name)
	assert.Equal(t, "Empty.002", c.Name)
}

func TestSelectionNoDuplicates(t *testing.T) {
	s := New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	s.Select(a)
	s.Select(a)

	assert.Len(t, s.Selected(), 1)
	assert.True(t, a.Selected())

	s.Deselect(a)
	assert.Empty(t, s.Selected())
	assert.False(t, a.Selected())
}

func TestDeselectAll(t *testing.T) {
	s := New()
	a := s.AddEmpty("A", rl.NewVector3(0, 0, 0))
	b := s.AddEmpty("B", rl.NewVector3(0, 0, 0))
	s.Select(a)
	s.Select(b)

	s.DeselectAll()
	assert.Empty(t, s.Selected())
	assert.False(t, a.Selected())
	assert.False(t, b.Selected())
}
