package export

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteSVG renders one sample column of a trajectory as an SVG line
// plot, time on the horizontal axis.
func WriteSVG(w io.Writer, tr *Trajectory, column string, width, height int) error {
	idx := -1
	for i, label := range tr.Labels {
		if label == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("export: no sample column %q", column)
	}
	if len(tr.Times) < 2 {
		return fmt.Errorf("export: need at least two samples, have %d", len(tr.Times))
	}

	minT, maxT := tr.Times[0], tr.Times[len(tr.Times)-1]
	minV, maxV := tr.Samples[0][idx], tr.Samples[0][idx]
	for _, s := range tr.Samples {
		if s[idx] < minV {
			minV = s[idx]
		}
		if s[idx] > maxV {
			maxV = s[idx]
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i, t := range tr.Times {
		x := (t - minT) / rangeT * float64(width)
		y := float64(height) - (tr.Samples[i][idx]-minV)/rangeV*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>
`)

	_, err := io.WriteString(w, sb.String())
	return err
}

func SaveSVG(path string, tr *Trajectory, column string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSVG(f, tr, column, width, height)
}
