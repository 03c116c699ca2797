package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"blochsim/internal/model"
	"blochsim/internal/operator"
)

const (
	DefaultT1       = 0.832 // white matter at 3T, seconds
	DefaultT2       = 0.080
	DefaultTR       = 0.005
	DefaultTE       = 0.0025
	DefaultFlipDeg  = 8.0
	DefaultPulseDur = 0.0005
	DefaultReps     = 300
)

type Config struct {
	Model    string         `yaml:"model"` // single, sa, sa_b1, mcconnell
	Tissue   TissueConfig   `yaml:"tissue"`
	Sequence SequenceConfig `yaml:"sequence"`
}

type TissueConfig struct {
	T1 float64 `yaml:"t1"` // seconds
	T2 float64 `yaml:"t2"`
	// Multi-pool parameters, used when model is "mcconnell".
	Pools    []PoolConfig `yaml:"pools,omitempty"`
	Exchange [][]float64  `yaml:"exchange,omitempty"` // row p, col q: rate into p from q (1/s)
}

type PoolConfig struct {
	T1    float64 `yaml:"t1"`
	T2    float64 `yaml:"t2"`
	Omega float64 `yaml:"omega"` // chemical shift (rad/s)
	Theta float64 `yaml:"theta"` // equilibrium fraction
}

type SequenceConfig struct {
	TR           float64 `yaml:"tr"` // seconds
	TE           float64 `yaml:"te"`
	FlipDeg      float64 `yaml:"flip"` // degrees
	PhaseDeg     float64 `yaml:"phase"`
	PulseDur     float64 `yaml:"pulse_dur"`
	Repetitions  int     `yaml:"repetitions"`
	Inversion    bool    `yaml:"inversion"`
	TI           float64 `yaml:"ti"`
	OffResonance float64 `yaml:"off_resonance"` // rad/s
}

func DefaultConfig() *Config {
	return &Config{
		Model: "single",
		Tissue: TissueConfig{
			T1: DefaultT1,
			T2: DefaultT2,
		},
		Sequence: SequenceConfig{
			TR:          DefaultTR,
			TE:          DefaultTE,
			FlipDeg:     DefaultFlipDeg,
			PulseDur:    DefaultPulseDur,
			Repetitions: DefaultReps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildModel constructs the simulation model the config selects.
func (c *Config) BuildModel() (model.Model, error) {
	switch c.Model {
	case "single":
		return model.SinglePool{R1: 1 / c.Tissue.T1, R2: 1 / c.Tissue.T2}, nil
	case "sa":
		return model.SinglePoolSA{R1: 1 / c.Tissue.T1, R2: 1 / c.Tissue.T2}, nil
	case "sa_b1":
		return model.SinglePoolSAB1{R1: 1 / c.Tissue.T1, R2: 1 / c.Tissue.T2}, nil
	case "mcconnell":
		return c.buildMultiPool()
	default:
		return nil, fmt.Errorf("config: unknown model %q", c.Model)
	}
}

func (c *Config) buildMultiPool() (model.Model, error) {
	p := len(c.Tissue.Pools)
	if p == 0 {
		return nil, fmt.Errorf("config: model mcconnell requires at least one pool")
	}
	if len(c.Tissue.Exchange) != p {
		return nil, fmt.Errorf("config: exchange matrix has %d rows, want %d", len(c.Tissue.Exchange), p)
	}

	pools := make([]operator.Pool, p)
	for i, pc := range c.Tissue.Pools {
		pools[i] = operator.Pool{
			R1:    1 / pc.T1,
			R2:    1 / pc.T2,
			Omega: pc.Omega,
			Theta: pc.Theta,
		}
	}

	k := mat.NewDense(p, p, nil)
	for i, row := range c.Tissue.Exchange {
		if len(row) != p {
			return nil, fmt.Errorf("config: exchange row %d has %d entries, want %d", i, len(row), p)
		}
		for j, v := range row {
			k.Set(i, j, v)
		}
	}

	return model.MultiPool{Pools: pools, Exchange: k}, nil
}
