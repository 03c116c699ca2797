package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"blochsim/internal/config"
	"blochsim/internal/export"
	"blochsim/internal/sequence"
)

var (
	configFile string
	preset     string
	modelName  string
	t1, t2     float64
	flipDeg    float64
	tr, te, ti float64
	reps       int
	inversion  bool
	outPath    string
	format     string
	plotCol    string
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:   "blochsim",
		Short: "Bloch/McConnell magnetization simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a pulse sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(log)
		},
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "tissue preset (see 'blochsim presets')")
	runCmd.Flags().StringVar(&modelName, "model", "", "model: single, sa, sa_b1, mcconnell")
	runCmd.Flags().Float64Var(&t1, "t1", 0, "T1 in seconds (overrides config)")
	runCmd.Flags().Float64Var(&t2, "t2", 0, "T2 in seconds (overrides config)")
	runCmd.Flags().Float64Var(&flipDeg, "flip", 0, "flip angle in degrees")
	runCmd.Flags().Float64Var(&tr, "tr", 0, "repetition time in seconds")
	runCmd.Flags().Float64Var(&te, "te", 0, "echo time in seconds")
	runCmd.Flags().Float64Var(&ti, "ti", 0, "inversion delay in seconds")
	runCmd.Flags().IntVar(&reps, "reps", 0, "number of repetitions")
	runCmd.Flags().BoolVar(&inversion, "inversion", false, "prepend a 180-degree inversion")
	runCmd.Flags().StringVar(&outPath, "out", "", "write trajectory to file")
	runCmd.Flags().StringVar(&format, "format", "json", "output format: json, csv, or svg")
	runCmd.Flags().StringVar(&plotCol, "plot", "Mz", "sample column to plot (empty to disable)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list tissue presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-8s model=%-9s t1=%.3gs t2=%.3gs\n", name, p.Model, p.Tissue.T1, p.Tissue.T2)
			}
		},
	}

	rootCmd.AddCommand(runCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		// copy so flag overrides below never touch the shared preset
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if modelName != "" {
		cfg.Model = modelName
	}
	if t1 > 0 {
		cfg.Tissue.T1 = t1
	}
	if t2 > 0 {
		cfg.Tissue.T2 = t2
	}
	if flipDeg > 0 {
		cfg.Sequence.FlipDeg = flipDeg
	}
	if tr > 0 {
		cfg.Sequence.TR = tr
	}
	if te > 0 {
		cfg.Sequence.TE = te
	}
	if ti > 0 {
		cfg.Sequence.TI = ti
	}
	if reps > 0 {
		cfg.Sequence.Repetitions = reps
	}
	if inversion {
		cfg.Sequence.Inversion = true
	}

	return cfg, nil
}

func runSimulation(log zerolog.Logger) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	m, err := cfg.BuildModel()
	if err != nil {
		return err
	}
	seq, err := cfg.BuildSequence()
	if err != nil {
		return err
	}

	log.Info().
		Str("model", cfg.Model).
		Int("intervals", len(seq)).
		Float64("duration_s", sequence.Duration(seq)).
		Msg("simulating")

	start := time.Now()
	result, err := sequence.New(m).Run(context.Background(), seq)
	if err != nil {
		return err
	}
	log.Info().
		Int("samples", len(result.Times)).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	if plotCol != "" {
		if err := plot(result, plotColOrDefault(result.Labels)); err != nil {
			return err
		}
	}

	if outPath != "" {
		traj := &export.Trajectory{
			Model:   cfg.Model,
			Labels:  result.Labels,
			Times:   result.Times,
			Samples: result.Samples,
		}
		switch format {
		case "json":
			err = export.SaveJSON(outPath, traj)
		case "csv":
			err = export.SaveCSV(outPath, traj)
		case "svg":
			err = export.SaveSVG(outPath, traj, plotColOrDefault(result.Labels), 800, 400)
		default:
			err = fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
		log.Info().Str("path", outPath).Str("format", format).Msg("exported")
	}

	return nil
}

// plotColOrDefault keeps an explicit --plot choice, but falls back to
// the first pool's Mz when the default column name is absent (the
// multi-pool labels carry pool suffixes).
func plotColOrDefault(labels []string) string {
	for _, label := range labels {
		if label == plotCol {
			return plotCol
		}
	}
	if plotCol == "Mz" && len(labels) > 2 {
		return labels[2]
	}
	return plotCol
}

func plot(result *sequence.Result, col string) error {
	idx := -1
	for i, label := range result.Labels {
		if label == col {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no sample column %q (have %v)", col, result.Labels)
	}

	series := make([]float64, len(result.Samples))
	for i, s := range result.Samples {
		series[i] = s[idx]
	}

	width := len(series)
	if width > 120 {
		width = 120
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(16),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s over %d readouts", col, len(series)))))
	return nil
}
