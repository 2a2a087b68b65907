package storage

import (
	"encoding/json"
	"io"

	"github.com/mvolek/biosim/internal/ode"
)

type ExportData struct {
	ID     string             `json:"id"`
	Model  string             `json:"model"`
	Dt     float64            `json:"dt"`
	TEnd   float64            `json:"t_end"`
	Params map[string]float64 `json:"params"`
	Labels []string           `json:"labels"`
	Steps  int                `json:"steps"`
	Times  []float64          `json:"times"`
	States [][]float64        `json:"states"`
}

// ExportJSON writes a full run, metadata plus series, to w.
func ExportJSON(w io.Writer, meta *RunMetadata, series *ode.Series) error {
	data := ExportData{
		ID:     meta.ID,
		Model:  meta.Model,
		Dt:     meta.Dt,
		TEnd:   meta.TEnd,
		Params: meta.Params,
		Labels: meta.Labels,
		Steps:  series.Len(),
		Times:  series.Times,
		States: make([][]float64, len(series.States)),
	}
	for i, s := range series.States {
		data.States[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
