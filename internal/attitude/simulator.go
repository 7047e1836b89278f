package attitude

import (
	"context"
	"fmt"
)

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.01, Duration: 10.0}
}

type Result struct {
	Times      []float64
	Poses      []Pose
	Metrics    map[string]float64
	StepsTaken int
}

type Simulator struct {
	stepper Stepper
	profile TwistProfile
	metrics []Metric
}

func New(stepper Stepper, profile TwistProfile) *Simulator {
	return &Simulator{
		stepper: stepper,
		profile: profile,
		metrics: make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Run(ctx context.Context, p0 Pose, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Poses:   make([]Pose, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	p := p0
	t := 0.0
	s.record(result, p, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next, err := s.stepper.Step(p, s.profile, t, cfg.Dt)
		if err != nil {
			return result, &StepError{Step: i, Time: t, Wrapped: err}
		}

		p = next
		t = float64(i+1) * cfg.Dt
		result.StepsTaken++
		s.record(result, p, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(r *Result, p Pose, t float64) {
	for _, m := range s.metrics {
		m.Observe(p, t)
	}
	r.Poses = append(r.Poses, p)
	r.Times = append(r.Times, t)
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}
