package attitude

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

// BodyRates recovers the body angular velocity over each step of a
// trajectory as log(R_k⁻¹·R_{k+1}) / (t_{k+1} − t_k).
func BodyRates(poses []Pose, times []float64) ([]r3.Vec, error) {
	if len(poses) != len(times) {
		return nil, fmt.Errorf("%w: %d poses for %d times", ErrInvalidConfig, len(poses), len(times))
	}
	if len(poses) < 2 {
		return []r3.Vec{}, nil
	}

	rates := make([]r3.Vec, 0, len(poses)-1)
	prev, err := lie.Convert(so3.StdDcm(), poses[0].Rotation)
	if err != nil {
		return nil, err
	}
	for k := 1; k < len(poses); k++ {
		cur, err := lie.Convert(so3.StdDcm(), poses[k].Rotation)
		if err != nil {
			return nil, err
		}
		d, err := lie.Difference(cur, prev)
		if err != nil {
			return nil, err
		}
		dt := times[k] - times[k-1]
		if dt <= 0 {
			return nil, fmt.Errorf("%w: non-increasing time at sample %d", ErrInvalidConfig, k)
		}
		rates = append(rates, r3.Scale(1/dt, so3.StdAlgebra().Vec(d)))
		prev = cur
	}
	return rates, nil
}

// Peak is the strongest non-constant component of a sampled signal.
type Peak struct {
	Frequency float64
	Amplitude float64
}

// DominantFrequency returns the largest spectral peak, excluding the mean,
// of samples taken dt apart. Amplitude is scaled so that a pure sinusoid on
// a frequency bin reports its own amplitude.
func DominantFrequency(samples []float64, dt float64) Peak {
	n := len(samples)
	if n < 2 || dt <= 0 {
		return Peak{}
	}

	centered := make([]float64, n)
	copy(centered, samples)
	floats.AddConst(-floats.Sum(samples)/float64(n), centered)

	spectrum := fft.FFTReal(centered)
	var best Peak
	for k := 1; k <= n/2; k++ {
		amp := 2 * cmplx.Abs(spectrum[k]) / float64(n)
		if k == n-k {
			amp /= 2
		}
		if amp > best.Amplitude {
			best = Peak{Frequency: float64(k) / (float64(n) * dt), Amplitude: amp}
		}
	}
	return best
}
