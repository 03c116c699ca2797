// Package export writes simulated trajectories to JSON or CSV for the
// downstream fitting pipeline.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// Trajectory is the serialized form of a simulation result.
type Trajectory struct {
	Model   string      `json:"model"`
	Labels  []string    `json:"labels"`
	Times   []float64   `json:"times"`
	Samples [][]float64 `json:"samples"`
}

func WriteJSON(w io.Writer, tr *Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tr)
}

func SaveJSON(path string, tr *Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, tr)
}

func WriteCSV(w io.Writer, tr *Trajectory) error {
	cw := csv.NewWriter(w)

	header := append([]string{"t"}, tr.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range tr.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, v := range tr.Samples[i] {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, tr *Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, tr)
}
