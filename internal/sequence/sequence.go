// Package sequence discretizes pulse sequences into intervals of
// piecewise-constant field and relaxation parameters and advances the
// augmented magnetization state one matrix exponential per interval.
package sequence

import (
	"errors"
	"fmt"
	"math"

	"blochsim/internal/bloch"
	"blochsim/internal/model"
)

// ErrInvalidTiming indicates sequence timing parameters that cannot
// produce positive interval durations.
var ErrInvalidTiming = errors.New("sequence: invalid timing")

// Interval is one piecewise-constant segment of a pulse sequence.
type Interval struct {
	Dur     float64   // seconds
	B       bloch.Vec // effective field including the RF drive (rad/s)
	RF      model.RF  // drive description for B1-sensitive models
	Readout bool      // sample the state at the end of the interval
}

// Pulse returns a hard-pulse interval applying the given flip angle
// (rad) at the given phase over dur seconds. The drive axis is
// (cos(phase), -sin(phase), 0), matching ExcitePhased.
func Pulse(angle, phase, dur float64) Interval {
	amp := angle / dur
	s, c := math.Sincos(phase)
	return Interval{
		Dur: dur,
		B:   bloch.Vec{X: amp * c, Y: -amp * s},
		RF:  model.RF{Amplitude: amp, Phase: phase},
	}
}

// Delay returns a free-precession interval at the given off-resonance
// frequency (rad/s).
func Delay(dur, offres float64) Interval {
	return Interval{Dur: dur, B: bloch.Vec{Z: offres}}
}

// Readout is a Delay that samples the state at its end.
func Readout(dur, offres float64) Interval {
	iv := Delay(dur, offres)
	iv.Readout = true
	return iv
}

// FLASH returns a gradient-echo readout train: reps repetitions of an
// RF pulse followed by free precession to the echo time and the
// remainder of the repetition time. No RF spoiling is applied; the
// pulse phase is constant. Each repetition needs
// tr > te + pulseDur so the post-echo delay is positive.
func FLASH(flip, phase, pulseDur, tr, te, offres float64, reps int) ([]Interval, error) {
	switch {
	case pulseDur <= 0:
		return nil, fmt.Errorf("%w: pulse duration %g must be positive", ErrInvalidTiming, pulseDur)
	case te <= 0:
		return nil, fmt.Errorf("%w: echo time %g must be positive", ErrInvalidTiming, te)
	case tr <= te+pulseDur:
		return nil, fmt.Errorf("%w: repetition time %g must exceed echo time %g plus pulse duration %g",
			ErrInvalidTiming, tr, te, pulseDur)
	case reps <= 0:
		return nil, fmt.Errorf("%w: repetition count %d must be positive", ErrInvalidTiming, reps)
	}

	seq := make([]Interval, 0, 3*reps)
	for i := 0; i < reps; i++ {
		seq = append(seq,
			Pulse(flip, phase, pulseDur),
			Readout(te, offres),
			Delay(tr-te-pulseDur, offres),
		)
	}
	return seq, nil
}

// InversionRecovery prepends a 180-degree inversion pulse and an
// inversion delay ti to the given readout train.
func InversionRecovery(ti, pulseDur, offres float64, train []Interval) []Interval {
	seq := make([]Interval, 0, len(train)+2)
	seq = append(seq,
		Pulse(math.Pi, 0, pulseDur),
		Delay(ti, offres),
	)
	return append(seq, train...)
}
