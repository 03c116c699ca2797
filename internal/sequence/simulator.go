package sequence

import (
	"context"
	"errors"
	"fmt"

	"blochsim/internal/model"
	"blochsim/internal/operator"
)

var (
	// ErrEmptySequence indicates a sequence with no intervals.
	ErrEmptySequence = errors.New("sequence: empty interval list")

	// ErrInvalidDuration indicates a non-positive interval duration.
	ErrInvalidDuration = errors.New("sequence: interval duration must be positive")
)

// Result holds the sampled trajectory of one simulation run. Samples
// are recorded at readout intervals only; each sample carries the full
// augmented state (magnetization plus sensitivity blocks) without the
// homogeneous coordinate, in the order given by Labels.
type Result struct {
	Labels  []string
	Times   []float64
	Samples [][]float64
	Steps   int
}

// Simulator advances one voxel's augmented state through a discretized
// pulse sequence, one exact matrix-exponential step per interval.
type Simulator struct {
	model model.Model
}

func New(m model.Model) *Simulator {
	return &Simulator{model: m}
}

// Run simulates the sequence from thermal equilibrium.
func (s *Simulator) Run(ctx context.Context, seq []Interval) (*Result, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	labels := s.model.Labels()
	result := &Result{
		Labels:  labels,
		Times:   make([]float64, 0, len(seq)),
		Samples: make([][]float64, 0, len(seq)),
	}

	x := s.model.Equilibrium()
	t := 0.0

	for i, iv := range seq {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if iv.Dur <= 0 {
			return nil, fmt.Errorf("%w: interval %d has duration %g", ErrInvalidDuration, i, iv.Dur)
		}

		a := s.model.Operator(iv.B, iv.RF)
		x = operator.Propagate(a, iv.Dur, x)
		t += iv.Dur
		result.Steps++

		if iv.Readout {
			sample := make([]float64, len(labels))
			for j := range sample {
				sample[j] = x.AtVec(j)
			}
			result.Times = append(result.Times, t)
			result.Samples = append(result.Samples, sample)
		}
	}

	return result, nil
}

// Duration returns the total length of a sequence in seconds.
func Duration(seq []Interval) float64 {
	total := 0.0
	for _, iv := range seq {
		total += iv.Dur
	}
	return total
}
