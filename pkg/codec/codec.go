// Package codec encodes a model.Result into the result wire format (§6.3),
// keeping output encoding out of pkg/model. It does not decode instances;
// that is model.LoadInstance.
package codec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alemarcos/horarios/pkg/model"
)

type placement struct {
	Subject   string `json:"materia"`
	Professor string `json:"profesor"`
}

type statistics struct {
	TotalTimeSeconds float64 `json:"tiempo_total"`
	NodesExplored    float64 `json:"nodos_explorados"`
}

type outputEnvelope struct {
	Success    bool                                        `json:"exito"`
	Schedule   map[string]map[string]map[string]placement `json:"horario,omitempty"`
	Statistics statistics                                  `json:"estadisticas"`
}

// EncodeResult marshals a model.Result into the JSON wire format.
func EncodeResult(result model.Result) ([]byte, error) {
	envelope := outputEnvelope{
		Success: result.Success,
		Statistics: statistics{
			TotalTimeSeconds: result.Stats.TotalTimeSeconds,
			NodesExplored:    result.Stats.NodesExplored,
		},
	}

	if result.Success && len(result.Schedule) > 0 {
		envelope.Schedule = make(map[string]map[string]map[string]placement, len(result.Schedule))
		for group, byDay := range result.Schedule {
			envelope.Schedule[group] = make(map[string]map[string]placement, len(byDay))
			for day, bySlot := range byDay {
				envelope.Schedule[group][day] = make(map[string]placement, len(bySlot))
				for slotKey, p := range bySlot {
					envelope.Schedule[group][day][slotKey] = placement{Subject: p.Subject, Professor: p.Professor}
				}
			}
		}
	}

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot encode result: %w", err)
	}
	return out, nil
}

// WriteResult encodes result and writes it to path.
func WriteResult(path string, result model.Result) error {
	out, err := EncodeResult(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	return nil
}
