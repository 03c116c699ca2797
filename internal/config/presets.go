package config

import "sort"

// Presets are tissue parameter sets at 3T. Rates follow commonly cited
// literature values; the mt preset is a two-pool magnetization-transfer
// system with a broad bound pool.
var Presets = map[string]*Config{
	"wm": {
		Model:  "single",
		Tissue: TissueConfig{T1: 0.832, T2: 0.080},
		Sequence: SequenceConfig{
			TR: 0.005, TE: 0.0025, FlipDeg: 8, PulseDur: 0.0005, Repetitions: 300,
			Inversion: true, TI: 0.015,
		},
	},
	"gm": {
		Model:  "single",
		Tissue: TissueConfig{T1: 1.331, T2: 0.110},
		Sequence: SequenceConfig{
			TR: 0.005, TE: 0.0025, FlipDeg: 8, PulseDur: 0.0005, Repetitions: 300,
			Inversion: true, TI: 0.015,
		},
	},
	"csf": {
		Model:  "single",
		Tissue: TissueConfig{T1: 4.2, T2: 1.99},
		Sequence: SequenceConfig{
			TR: 0.005, TE: 0.0025, FlipDeg: 8, PulseDur: 0.0005, Repetitions: 300,
			Inversion: true, TI: 0.015,
		},
	},
	"mt": {
		Model: "mcconnell",
		Tissue: TissueConfig{
			Pools: []PoolConfig{
				{T1: 1.0, T2: 0.080, Omega: 0, Theta: 0.9},
				{T1: 1.0, T2: 0.00001, Omega: 0, Theta: 0.1},
			},
			// into free from bound, balanced outflow on the diagonal
			Exchange: [][]float64{
				{-4.0, 36.0},
				{4.0, -36.0},
			},
		},
		Sequence: SequenceConfig{
			TR: 0.005, TE: 0.0025, FlipDeg: 8, PulseDur: 0.0005, Repetitions: 300,
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
