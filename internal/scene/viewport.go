package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// emptyGizmoSize is the half-length of the axis lines drawn for an empty.
	emptyGizmoSize = 0.5
	// vertexPointSize is the radius of the dots drawn at mesh vertices.
	vertexPointSize = 0.03
	labelFontSize   = 16
)

var (
	colorUnselected = rl.NewColor(200, 200, 200, 255)
	colorSelected   = rl.NewColor(255, 160, 40, 255)
	colorActive     = rl.NewColor(255, 220, 80, 255)
)

// Viewport holds the editor camera and draws a scene's object graph.
// Update runs camera logic (orbital); Draw renders between BeginMode3D and
// EndMode3D, then overlays name labels in screen space. Camera setup follows
// raylib examples/core/core_3d_camera_free.
type Viewport struct {
	Camera      rl.Camera3D
	GridVisible bool

	// labels collected during the 3D pass, drawn after EndMode3D.
	labelTexts []string
	labelPos   []rl.Vector2
}

// NewViewport returns a viewport with a perspective camera looking at the
// origin: position (8,6,8), target (0,0,0), up (0,1,0), fovy 45°. Grid on.
func NewViewport() *Viewport {
	v := &Viewport{}
	v.Camera.Position = rl.NewVector3(8, 6, 8)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	v.GridVisible = true
	return v
}

// Update runs once per frame; orbital camera so the hierarchy is visible from
// all sides without capturing the cursor (the console needs it).
func (v *Viewport) Update() {
	rl.UpdateCamera(&v.Camera, rl.CameraOrbital)
}

// Draw renders the grid and every object of the scene. Mesh objects are
// drawn as their world-space bounding wires plus vertex dots; empties as axis
// gizmos. Selected objects are tinted; the active object brightest. Name
// labels (ShowName) are drawn in a 2D pass after the 3D mode ends.
func (v *Viewport) Draw(s *Scene) {
	v.labelTexts = v.labelTexts[:0]
	v.labelPos = v.labelPos[:0]

	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawEditorGrid()
	}
	for _, obj := range s.Objects() {
		v.drawObject(s, obj)
	}
	rl.EndMode3D()

	for i, text := range v.labelTexts {
		p := v.labelPos[i]
		rl.DrawText(text, int32(p.X), int32(p.Y), labelFontSize, rl.RayWhite)
	}
}

func (v *Viewport) drawObject(s *Scene, obj *Object) {
	color := colorUnselected
	if obj.Selected() {
		color = colorSelected
	}
	if s.Active() == obj {
		color = colorActive
	}

	if obj.Display.ShowInFront {
		rl.DisableDepthTest()
	}
	world := obj.World()
	switch obj.Kind {
	case Mesh:
		drawMeshWires(obj, world, color)
	default:
		drawEmptyGizmo(world, color)
	}
	if obj.Display.ShowAxes && obj.Kind != Empty {
		drawEmptyGizmo(world, color)
	}
	if obj.Display.ShowInFront {
		rl.EnableDepthTest()
	}

	if obj.Display.ShowName || obj.Selected() {
		p := rl.GetWorldToScreen(rl.NewVector3(world.M12, world.M13, world.M14), v.Camera)
		v.labelTexts = append(v.labelTexts, obj.Name)
		v.labelPos = append(v.labelPos, p)
	}
}

// drawMeshWires draws the world-space bounding box of the mesh as wires and a
// dot per vertex. The editor does not keep mesh topology, so the box is the
// honest thing to draw.
func drawMeshWires(obj *Object, world rl.Matrix, color rl.Color) {
	if obj.Mesh == nil || len(obj.Mesh.Vertices) == 0 {
		drawEmptyGizmo(world, color)
		return
	}
	first := rl.Vector3Transform(obj.Mesh.Vertices[0], world)
	min, max := first, first
	rl.DrawSphere(first, vertexPointSize, color)
	for _, vtx := range obj.Mesh.Vertices[1:] {
		p := rl.Vector3Transform(vtx, world)
		rl.DrawSphere(p, vertexPointSize, color)
		min.X, max.X = minMax(min.X, max.X, p.X)
		min.Y, max.Y = minMax(min.Y, max.Y, p.Y)
		min.Z, max.Z = minMax(min.Z, max.Z, p.Z)
	}
	center := rl.Vector3Scale(rl.Vector3Add(min, max), 0.5)
	size := rl.Vector3Subtract(max, min)
	rl.DrawCubeWiresV(center, size, color)
}

func minMax(lo, hi, v float32) (float32, float32) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}

// drawEmptyGizmo draws three local axis lines through the object origin.
func drawEmptyGizmo(world rl.Matrix, color rl.Color) {
	origin := rl.NewVector3(world.M12, world.M13, world.M14)
	axes := []rl.Vector3{
		{X: emptyGizmoSize}, {Y: emptyGizmoSize}, {Z: emptyGizmoSize},
	}
	for _, a := range axes {
		tip := rl.Vector3Transform(a, world)
		back := rl.Vector3Subtract(rl.Vector3Scale(origin, 2), tip)
		rl.DrawLine3D(back, tip, color)
	}
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis
// lines through the origin (X=red, Y=green, Z=blue).
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
