package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/liesim/internal/attitude"
	"github.com/san-kum/liesim/internal/rn"
	"github.com/san-kum/liesim/internal/so3"
)

// ErrMalformed indicates a poses.csv row that cannot be parsed.
var ErrMalformed = errors.New("storage: malformed pose record")

var poseHeader = []string{"t", "qx", "qy", "qz", "qw", "px", "py", "pz"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Stepper   string             `json:"stepper"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and poses.csv under a fresh run directory and
// returns the run id. ID, Timestamp, Steps and Metrics are filled in here.
func (s *Store) Save(meta RunMetadata, result *attitude.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Scenario, now.UnixNano())
	meta.Timestamp = now
	meta.Steps = result.StepsTaken
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "poses.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(poseHeader); err != nil {
		return "", err
	}
	for i, p := range result.Poses {
		q, pos := p.Rotation.Param(), p.Position.Param()
		row := []string{formatFloat(result.Times[i])}
		for _, v := range append(q, pos...) {
			row = append(row, formatFloat(v))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoses reads poses.csv back into poses and their times.
func (s *Store) LoadPoses(runID string) ([]attitude.Pose, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "poses.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(poseHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) < 2 {
		return []attitude.Pose{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	poses := make([]attitude.Pose, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d column %s: %v", ErrMalformed, i+1, poseHeader[j], err)
			}
			vals[j] = v
		}
		times = append(times, vals[0])
		poses = append(poses, attitude.Pose{
			Rotation: so3.StdQuat().Element(vals[1], vals[2], vals[3], vals[4]),
			Position: rn.Group3().Element(vals[5], vals[6], vals[7]),
		})
	}

	return poses, times, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
