package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/liesim/internal/attitude"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Player animates a recorded pose trajectory.
type Player struct {
	title   string
	poses   []attitude.Pose
	times   []float64
	angles  []float64
	frame   int
	speed   int
	playing bool
	camera  *Camera
	canvas  *Canvas
}

func NewPlayer(title string, poses []attitude.Pose, times []float64) Player {
	angles := make([]float64, len(poses))
	for i, p := range poses {
		angles[i] = p.Angle()
	}
	return Player{
		title:   title,
		poses:   poses,
		times:   times,
		angles:  angles,
		speed:   1,
		playing: true,
		camera:  NewCamera(),
		canvas:  NewCanvas(36, 16),
	}
}

// Frame returns the index of the pose on screen.
func (m Player) Frame() int { return m.frame }

func (m Player) Init() tea.Cmd { return tick() }

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.playing = !m.playing
		case "[":
			m.seek(-m.speed)
		case "]":
			m.seek(m.speed)
		case "+", "=":
			m.speed = min(64, m.speed*2)
		case "-", "_":
			m.speed = max(1, m.speed/2)
		case "r":
			m.frame = 0
		case "a":
			m.camera.Orbit(r3Y, -0.1)
		case "d":
			m.camera.Orbit(r3Y, 0.1)
		case "t":
			NextTheme()
		}
	case TickMsg:
		if m.playing {
			m.seek(m.speed)
			if m.frame == len(m.poses)-1 {
				m.playing = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Player) seek(delta int) {
	m.frame = min(max(0, m.frame+delta), max(0, len(m.poses)-1))
}

func (m Player) View() string {
	if len(m.poses) == 0 {
		return StatusBad.Render("no poses recorded") + "\n"
	}

	p := m.poses[m.frame]
	DrawAttitude(m.canvas, p.Rotation, m.camera)
	left := Panel.Render(Title.Render(strings.ToUpper(m.title)) + "\n" + m.canvas.String())

	status := StatusGood.Render("PLAYING")
	if !m.playing {
		status = Subtle.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(status + fmt.Sprintf("  x%d\n", m.speed))
	s.WriteString(ProgressBar(float64(m.frame)/float64(max(1, len(m.poses)-1)), 30) + "\n\n")
	s.WriteString(KV("time", fmt.Sprintf("%.3f s", m.times[m.frame])) + "\n")
	s.WriteString(KV("angle", fmt.Sprintf("%.5f rad", m.angles[m.frame])) + "\n")
	pos := p.Translation()
	s.WriteString(KV("position", FormatVec([]float64{pos.X, pos.Y, pos.Z})) + "\n\n")

	if m.frame > 0 {
		chart := asciigraph.Plot(m.angles[:m.frame+1],
			asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("rotation angle"))
		s.WriteString(Value.Render(chart) + "\n\n")
	}
	s.WriteString(KeyHint.Render("space pause  [ ] step  +- speed  a d orbit  r restart  q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, Panel.Render(s.String()))
}

// RunReplay plays a trajectory full screen and blocks until it exits.
func RunReplay(title string, poses []attitude.Pose, times []float64) error {
	_, err := tea.NewProgram(NewPlayer(title, poses, times), tea.WithAltScreen()).Run()
	return err
}
