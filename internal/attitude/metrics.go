package attitude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/so3"
)

type Metric interface {
	Name() string
	Observe(p Pose, t float64)
	Value() float64
	Reset()
}

// NormDrift tracks the largest deviation of the quaternion modulus from 1.
type NormDrift struct {
	maxDrift float64
}

func NewNormDrift() *NormDrift { return &NormDrift{} }

func (m *NormDrift) Name() string { return "norm_drift" }

func (m *NormDrift) Observe(p Pose, _ float64) {
	drift := math.Abs(so3.StdQuat().Norm(p.Rotation) - 1)
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *NormDrift) Value() float64 { return m.maxDrift }
func (m *NormDrift) Reset()         { m.maxDrift = 0 }

// RotationAngle reports the rotation angle of the last observed pose.
type RotationAngle struct {
	last float64
}

func NewRotationAngle() *RotationAngle { return &RotationAngle{} }

func (m *RotationAngle) Name() string              { return "rotation_angle" }
func (m *RotationAngle) Observe(p Pose, _ float64) { m.last = p.Angle() }
func (m *RotationAngle) Value() float64            { return m.last }
func (m *RotationAngle) Reset()                    { m.last = 0 }

// PathLength accumulates the distance travelled by the position.
type PathLength struct {
	prev    r3.Vec
	started bool
	total   float64
}

func NewPathLength() *PathLength { return &PathLength{} }

func (m *PathLength) Name() string { return "path_length" }

func (m *PathLength) Observe(p Pose, _ float64) {
	pos := p.Translation()
	if m.started {
		m.total += r3.Norm(r3.Sub(pos, m.prev))
	}
	m.prev, m.started = pos, true
}

func (m *PathLength) Value() float64 { return m.total }

func (m *PathLength) Reset() {
	m.prev, m.started, m.total = r3.Vec{}, false, 0
}
