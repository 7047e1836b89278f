package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

const (
	historyCap = 120
	minStep    = 1.0 / 1024
	maxStep    = 1.0
)

var (
	axes = [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	r3X  = axes[0]
	r3Y  = axes[1]
)

// Explorer is an interactive view of a single rotation. The rotation
// vector can be edited directly or turned about body axes, and every
// change is read back through all SO(3) parameterizations.
type Explorer struct {
	rotvec   r3.Vec
	cursor   int
	step     float64
	camera   *Camera
	canvas   *Canvas
	history  []float64
	err      error
	showHelp bool
}

func NewExplorer(rotvec r3.Vec) Explorer {
	return Explorer{
		rotvec:  rotvec,
		step:    1.0 / 16,
		camera:  NewCamera(),
		canvas:  NewCanvas(36, 16),
		history: []float64{r3.Norm(rotvec)},
	}
}

// RotVec returns the rotation vector currently shown.
func (m Explorer) RotVec() r3.Vec { return m.rotvec }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor + 2) % 3
	case "down", "j":
		m.cursor = (m.cursor + 1) % 3
	case "left", "h":
		m.nudge(-m.step)
	case "right", "l":
		m.nudge(m.step)
	case "x", "y", "z":
		m.turn(axes[s[0]-'x'], m.step)
	case "X", "Y", "Z":
		m.turn(axes[s[0]-'X'], -m.step)
	case "+", "=":
		m.step = min(maxStep, m.step*2)
	case "-", "_":
		m.step = max(minStep, m.step/2)
	case "a":
		m.camera.Orbit(r3Y, -0.1)
	case "d":
		m.camera.Orbit(r3Y, 0.1)
	case "w":
		m.camera.Orbit(r3X, -0.1)
	case "s":
		m.camera.Orbit(r3X, 0.1)
	case "0", "r":
		m.rotvec = r3.Vec{}
		m.record()
	case "t":
		NextTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Explorer) nudge(delta float64) {
	switch m.cursor {
	case 0:
		m.rotvec.X += delta
	case 1:
		m.rotvec.Y += delta
	case 2:
		m.rotvec.Z += delta
	}
	m.record()
}

// turn right-multiplies the current rotation by a body-axis rotation and
// takes the matrix logarithm, so the result stays within angle π.
func (m *Explorer) turn(axis r3.Vec, angle float64) {
	alg := so3.StdAlgebra()
	g := so3.StdDcm().Exp(alg.FromVec(m.rotvec))
	h, err := lie.Retract(g, alg.FromVec(r3.Scale(angle, axis)))
	if err != nil {
		m.err = err
		return
	}
	x, err := so3.StdDcm().Log(h)
	if err != nil {
		m.err = err
		return
	}
	m.rotvec = alg.Vec(x)
	m.record()
}

func (m *Explorer) record() {
	m.history = append(m.history, r3.Norm(m.rotvec))
	if len(m.history) > historyCap {
		m.history = m.history[len(m.history)-historyCap:]
	}
}

func (m Explorer) View() string {
	r, err := Inspect(m.rotvec)
	if err == nil {
		err = m.err
	}

	DrawAttitude(m.canvas, so3.StdQuat().FromNumber(r.Quaternion), m.camera)
	left := Panel.Render(Title.Render("ATTITUDE") + "\n" + m.canvas.String())

	var s strings.Builder
	s.WriteString(HeaderStyle.Render("ROTATION VECTOR") + "\n")
	for i, name := range []string{"x", "y", "z"} {
		line := fmt.Sprintf("%s %10.5f", name, []float64{m.rotvec.X, m.rotvec.Y, m.rotvec.Z}[i])
		if i == m.cursor {
			s.WriteString(Highlight.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + Value.Render(line) + "\n")
		}
	}
	s.WriteString(KV("step", fmt.Sprintf("%.4f rad", m.step)) + "\n")
	s.WriteString(KV("angle", fmt.Sprintf("%.5f rad", r.Angle)) + "\n")
	s.WriteString(Sparkline(m.history, 30) + "\n\n")

	q := r.Quaternion
	s.WriteString(HeaderStyle.Render("QUATERNION (x y z w)") + "\n")
	s.WriteString(Value.Render(FormatVec([]float64{q.Imag, q.Jmag, q.Kmag, q.Real})) + "\n\n")
	s.WriteString(HeaderStyle.Render("DCM") + "\n")
	s.WriteString(Value.Render(FormatMatrix(r.Dcm)) + "\n\n")
	s.WriteString(HeaderStyle.Render("EULER B321 (psi theta phi)") + "\n")
	s.WriteString(Value.Render(FormatVec(r.Euler[:])) + "\n\n")

	s.WriteString(HeaderStyle.Render("LOG ROUND TRIP") + "\n")
	for _, rt := range r.RoundTrip {
		s.WriteString(KV(strings.TrimPrefix(rt.Group, "SO3"), FormatVec([]float64{rt.RotVec.X, rt.RotVec.Y, rt.RotVec.Z})) + "\n")
	}
	switch {
	case err != nil:
		s.WriteString(StatusBad.Render("error: "+err.Error()) + "\n")
	case r.Consistent:
		s.WriteString(StatusGood.Render("all parameterizations agree") + "\n")
	default:
		s.WriteString(StatusBad.Render("parameterizations disagree") + "\n")
	}

	s.WriteString("\n" + KeyHint.Render("↑↓ select  ←→ adjust  xyz/XYZ turn  +- step  wasd orbit  r reset  ? help  q quit"))
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, Panel.Render(s.String()))
	if m.showHelp {
		return Panel.Render(explorerHelp) + "\n" + view
	}
	return view
}

const explorerHelp = `↑/↓ k/j   select rotation vector component
←/→ h/l   add or subtract one step
x y z     turn about body axis by +step
X Y Z     turn about body axis by -step
+ / -     double or halve the step
w a s d   orbit the camera
r 0       reset to identity
t         cycle color theme
q         quit`

// RunExplorer starts the explorer full screen and blocks until it exits.
func RunExplorer(rotvec r3.Vec) error {
	_, err := tea.NewProgram(NewExplorer(rotvec), tea.WithAltScreen()).Run()
	return err
}
