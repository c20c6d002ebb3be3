package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/animviewer/system"
)

const (
	collisionTypeGazeTarget cp.CollisionType = iota + 1
	collisionTypeFloor
)

const (
	categoryGaze uint = 1 << iota
	categoryFloor
)

// GazeWorld is the chipmunk space the viewer ray-casts against: one static
// box per gaze target plus floor segments for hit-test placement.
type GazeWorld struct {
	space *cp.Space

	shapeToTarget map[*cp.Shape]*GazeTarget
	targets       []*GazeTarget

	// gaze point for the current tick, in world coordinates
	lookX, lookY float64
}

func NewGazeWorld() *GazeWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	return &GazeWorld{
		space:         space,
		shapeToTarget: make(map[*cp.Shape]*GazeTarget),
	}
}

// AddTarget registers t as a static gaze box.
func (gw *GazeWorld) AddTarget(t *GazeTarget) {
	if gw == nil || gw.space == nil || t == nil {
		return
	}
	bb := cp.BB{L: t.X - t.W/2, B: t.Y - t.H/2, R: t.X + t.W/2, T: t.Y + t.H/2}
	// not a sensor: chipmunk queries skip sensor shapes
	shape := cp.NewBox2(gw.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeGazeTarget)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryGaze, cp.ALL_CATEGORIES))
	gw.space.AddShape(shape)
	gw.shapeToTarget[shape] = t
	gw.targets = append(gw.targets, t)
}

// AddFloor adds a floor segment used by HitTest.
func (gw *GazeWorld) AddFloor(x0, y0, x1, y1 float64) {
	if gw == nil || gw.space == nil {
		return
	}
	shape := cp.NewSegment(gw.space.StaticBody, cp.Vector{X: x0, Y: y0}, cp.Vector{X: x1, Y: y1}, 1)
	shape.SetCollisionType(collisionTypeFloor)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryFloor, cp.ALL_CATEGORIES))
	gw.space.AddShape(shape)
}

// Targets returns the gaze targets in creation order.
func (gw *GazeWorld) Targets() []*GazeTarget {
	if gw == nil {
		return nil
	}
	return append([]*GazeTarget(nil), gw.targets...)
}

// GazeAt returns the target whose box contains world point (x, y). When boxes
// overlap the nearest shape wins.
func (gw *GazeWorld) GazeAt(x, y float64) (*GazeTarget, bool) {
	if gw == nil || gw.space == nil {
		return nil, false
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryGaze)
	info := gw.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, filter)
	if info == nil || info.Shape == nil {
		return nil, false
	}
	t, ok := gw.shapeToTarget[info.Shape]
	return t, ok
}

// HitTest casts a ray straight down from (x, y) for at most depth pixels and
// returns the first floor point it meets.
func (gw *GazeWorld) HitTest(x, y, depth float64) (float64, float64, bool) {
	if gw == nil || gw.space == nil || depth <= 0 {
		return 0, 0, false
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryFloor)
	start := cp.Vector{X: x, Y: y}
	end := cp.Vector{X: x, Y: y + depth}
	info := gw.space.SegmentQueryFirst(start, end, 0, filter)
	if info.Shape == nil {
		return 0, 0, false
	}
	return info.Point.X, info.Point.Y, true
}

// LookAt sets the gaze point used by GazeTarget.
func (gw *GazeWorld) LookAt(x, y float64) {
	if gw == nil {
		return
	}
	gw.lookX = x
	gw.lookY = y
}

// GazeTarget implements system.GazeSource for the current look point.
func (gw *GazeWorld) GazeTarget() (system.GazeTarget, bool) {
	t, ok := gw.GazeAt(gw.lookX, gw.lookY)
	if !ok {
		return nil, false
	}
	return t, true
}
