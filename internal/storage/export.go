package storage

import "github.com/san-kum/liesim/internal/attitude"

type ExportData struct {
	RunMetadata
	Times       []float64   `json:"times"`
	Quaternions [][]float64 `json:"quaternions"`
	Positions   [][]float64 `json:"positions"`
	RotVecs     [][]float64 `json:"rotvecs"`
}

// ExportJSON writes a whole run, including the rotation vector of every
// attitude, as a single JSON document.
func ExportJSON(path string, meta RunMetadata, poses []attitude.Pose, times []float64) error {
	data := ExportData{
		RunMetadata: meta,
		Times:       times,
		Quaternions: make([][]float64, len(poses)),
		Positions:   make([][]float64, len(poses)),
		RotVecs:     make([][]float64, len(poses)),
	}

	for i, p := range poses {
		data.Quaternions[i] = p.Rotation.Param()
		data.Positions[i] = p.Position.Param()
		x, err := p.Rotation.Group().Log(p.Rotation)
		if err != nil {
			return err
		}
		data.RotVecs[i] = x.Param()
	}

	return writeJSON(path, data)
}
