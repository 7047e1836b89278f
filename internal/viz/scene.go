package viz

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

// Segment is a line between two body-frame points.
type Segment struct {
	A, B r3.Vec
}

// Body is a wireframe expressed in its own frame.
type Body []Segment

func CubeBody(size float64) Body {
	s := size / 2
	v := []r3.Vec{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	b := make(Body, 0, len(edges))
	for _, e := range edges {
		b = append(b, Segment{v[e[0]], v[e[1]]})
	}
	return b
}

// AxesBody is a body-frame triad; the x axis carries an arrow head so the
// handedness stays readable after projection.
func AxesBody(l float64) Body {
	o := r3.Vec{}
	x := r3.Vec{X: l}
	return Body{
		{o, x},
		{o, r3.Vec{Y: l}},
		{o, r3.Vec{Z: l}},
		{x, r3.Vec{X: 0.8 * l, Y: 0.1 * l}},
		{x, r3.Vec{X: 0.8 * l, Y: -0.1 * l}},
	}
}

// Rotated maps the body into the world frame through the rotation matrix of
// r, which may belong to any SO(3) parameterization.
func (b Body) Rotated(r lie.GroupElement) Body {
	m := r.Group().ToMatrix(r)
	out := make(Body, len(b))
	for i, s := range b {
		out[i] = Segment{apply(m, s.A), apply(m, s.B)}
	}
	return out
}

func apply(m mat.Matrix, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Camera looks down its own z axis at the origin from Distance. View is the
// world-to-camera rotation as a direction-cosine matrix.
type Camera struct {
	View     lie.GroupElement
	Distance float64
	Zoom     float64
}

// NewCamera returns a camera tilted so that all three world axes are visible.
func NewCamera() *Camera {
	dcm := so3.StdDcm()
	tilt := dcm.Exp(so3.StdAlgebra().Element(-0.45, 0, 0))
	pan := dcm.Exp(so3.StdAlgebra().Element(0, 0.6, 0))
	view, _ := dcm.Product(tilt, pan)
	return &Camera{View: view, Distance: 6, Zoom: 1}
}

// Orbit turns the camera about a camera-frame axis.
func (c *Camera) Orbit(axis r3.Vec, angle float64) {
	dcm := so3.StdDcm()
	turn := dcm.Exp(so3.StdAlgebra().FromVec(r3.Scale(angle, axis)))
	c.View, _ = dcm.Product(turn, c.View)
}

func (c *Camera) ZoomIn()  { c.Zoom = min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = max(0.1, c.Zoom/1.2) }

// Project maps a world point to dot coordinates on a w×h canvas.
func (c *Camera) Project(p r3.Vec, w, h int) (x, y int, depth float64, ok bool) {
	v := r3.Scale(c.Zoom, apply(so3.StdDcm().ToMatrix(c.View), p))
	if v.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - v.Z)
	unit := float64(min(w, h)) / 3
	x = int(v.X*persp*unit) + w/2
	y = int(-v.Y*persp*unit) + h/2
	return x, y, v.Z, true
}

// Render draws a world-frame body back to front.
func Render(cv *Canvas, b Body, cam *Camera) {
	type projected struct {
		x0, y0, x1, y1 int
		depth          float64
	}
	w, h := cv.Dots()
	segs := make([]projected, 0, len(b))
	for _, s := range b {
		x0, y0, d0, ok0 := cam.Project(s.A, w, h)
		x1, y1, d1, ok1 := cam.Project(s.B, w, h)
		if ok0 && ok1 {
			segs = append(segs, projected{x0, y0, x1, y1, (d0 + d1) / 2})
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].depth < segs[j].depth })
	for _, s := range segs {
		cv.Line(s.x0, s.y0, s.x1, s.y1)
	}
}

// DrawAttitude clears the canvas and draws a cube with its body axes
// rotated by r.
func DrawAttitude(cv *Canvas, r lie.GroupElement, cam *Camera) {
	cv.Clear()
	body := append(CubeBody(1.2), AxesBody(1.3)...)
	Render(cv, body.Rotated(r), cam)
}
