package config

import (
	"fmt"
	"math"

	"blochsim/internal/sequence"
)

// BuildSequence discretizes the configured pulse train into
// constant-parameter intervals.
func (c *Config) BuildSequence() ([]sequence.Interval, error) {
	s := c.Sequence
	flip := s.FlipDeg * math.Pi / 180
	phase := s.PhaseDeg * math.Pi / 180

	train, err := sequence.FLASH(flip, phase, s.PulseDur, s.TR, s.TE, s.OffResonance, s.Repetitions)
	if err != nil {
		return nil, err
	}
	if s.Inversion {
		if s.TI <= 0 {
			return nil, fmt.Errorf("%w: inversion delay %g must be positive", sequence.ErrInvalidTiming, s.TI)
		}
		return sequence.InversionRecovery(s.TI, s.PulseDur, s.OffResonance, train), nil
	}
	return train, nil
}
