package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/attitude"
	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	require.Equal(t, 8, w)
	require.Equal(t, 8, h)

	c.Line(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		require.True(t, c.IsSet(i, i), "dot %d", i)
	}
	require.False(t, c.IsSet(7, 0))

	c.Set(-1, 100)
	rows := strings.Split(c.String(), "\n")
	require.Len(t, rows, 2)
	require.Len(t, []rune(rows[0]), 4)

	c.Clear()
	require.False(t, c.IsSet(3, 3))
}

func TestBodyRotatedMatchesEveryParameterization(t *testing.T) {
	x := so3.StdAlgebra().Element(0, 0, math.Pi/2)
	rotations := []lie.GroupElement{so3.StdQuat().Exp(x), so3.StdDcm().Exp(x), so3.StdEulerB321().Exp(x)}

	for _, r := range rotations {
		body := Body{{A: r3.Vec{}, B: r3.Vec{X: 1}}}.Rotated(r)
		name := r.Group().Name()
		require.InDelta(t, 0, body[0].B.X, 1e-12, name)
		require.InDelta(t, 1, body[0].B.Y, 1e-12, name)
		require.InDelta(t, 0, body[0].B.Z, 1e-12, name)
	}
}

func TestDrawAttitudeLightsCanvas(t *testing.T) {
	cv := NewCanvas(20, 10)
	DrawAttitude(cv, so3.StdQuat().Identity(), NewCamera())
	require.NotEqual(t, NewCanvas(20, 10).String(), cv.String())
}

func TestCameraOrbit(t *testing.T) {
	cam := &Camera{View: so3.StdDcm().Identity(), Distance: 6, Zoom: 1}

	x, y, _, ok := cam.Project(r3.Vec{X: 1}, 60, 60)
	require.True(t, ok)
	require.Greater(t, x, 30)
	require.Equal(t, 30, y)

	cam.Orbit(r3.Vec{Y: 1}, math.Pi)
	x, _, _, ok = cam.Project(r3.Vec{X: 1}, 60, 60)
	require.True(t, ok)
	require.Less(t, x, 30)

	_, _, _, ok = cam.Project(r3.Vec{Z: -10}, 60, 60)
	require.False(t, ok)
}

func TestInspect(t *testing.T) {
	r, err := Inspect(r3.Vec{Z: math.Pi / 2})
	require.NoError(t, err)
	require.True(t, r.Consistent)
	require.InDelta(t, math.Pi/2, r.Angle, 1e-12)
	require.InDelta(t, math.Sqrt2/2, r.Quaternion.Real, 1e-12)
	require.True(t, mat.EqualApprox(r.Dcm, mat.NewDense(3, 3, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}), 1e-12))
	require.InDelta(t, math.Pi/2, r.Euler[0], 1e-12)
	require.Len(t, r.RoundTrip, 3)
	for _, rt := range r.RoundTrip {
		require.InDelta(t, math.Pi/2, rt.RotVec.Z, 1e-9, rt.Group)
	}
}

func TestExplorerKeys(t *testing.T) {
	var m tea.Model = NewExplorer(r3.Vec{})

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("right"))
	require.InDelta(t, 1.0/16, m.(Explorer).RotVec().Y, 1e-15)

	m, _ = m.Update(key("r"))
	require.Equal(t, r3.Vec{}, m.(Explorer).RotVec())

	m, _ = m.Update(key("+"))
	m, _ = m.Update(key("z"))
	require.InDelta(t, 1.0/8, m.(Explorer).RotVec().Z, 1e-12)

	m, _ = m.Update(key("Z"))
	require.InDelta(t, 0, r3.Norm(m.(Explorer).RotVec()), 1e-12)

	require.Contains(t, m.View(), "QUATERNION")

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
}

func TestPlayerSeeksWithinBounds(t *testing.T) {
	poses := []attitude.Pose{
		attitude.Identity(),
		attitude.NewPose(r3.Vec{Z: 0.1}, r3.Vec{}),
		attitude.NewPose(r3.Vec{Z: 0.2}, r3.Vec{}),
	}
	var m tea.Model = NewPlayer("spin", poses, []float64{0, 0.1, 0.2})

	m, _ = m.Update(key(" "))
	m, _ = m.Update(key("["))
	require.Equal(t, 0, m.(Player).Frame())

	for i := 0; i < 5; i++ {
		m, _ = m.Update(key("]"))
	}
	require.Equal(t, 2, m.(Player).Frame())
	require.Contains(t, m.View(), "PAUSED")

	m, _ = m.Update(key("r"))
	m, _ = m.Update(key(" "))
	m, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.(Player).Frame())
}

func TestCanvasSVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasSVG(c, 10, "#00ff00")
	require.True(t, strings.HasPrefix(svg, "<?xml"))
	require.Equal(t, 2, strings.Count(svg, "<circle"))
	require.Contains(t, svg, `cx="5.0" cy="5.0"`)
	require.Contains(t, svg, `cx="35.0" cy="35.0"`)
	require.Contains(t, svg, `width="40" height="40"`)
}

func TestSeriesSVG(t *testing.T) {
	require.Empty(t, SeriesSVG([]float64{1}, 100, 50, "#fff"))

	svg := SeriesSVG([]float64{0, 1, 0.5}, 100, 60, "#00ffff")
	require.Contains(t, svg, `stroke="#00ffff"`)
	require.Contains(t, svg, "M0.0,55.0")
	require.Contains(t, svg, " L50.0,5.0")
	require.Contains(t, svg, " L100.0,30.0")
}
