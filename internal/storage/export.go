package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/trigger"
)

type ExportData struct {
	Session Session               `json:"session"`
	Times   []float64             `json:"times"`
	Scroll  []float64             `json:"scroll"`
	States  []string              `json:"states"`
	Tracks  map[string][]*float64 `json:"tracks"`
	Events  []ExportEvent         `json:"events"`
}

type ExportEvent struct {
	Time     float64  `json:"time"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Progress *float64 `json:"progress,omitempty"`
}

// ExportJSON writes a run as one JSON document. NaN samples, which JSON
// cannot carry, are written as null.
func ExportJSON(w io.Writer, info Session, result *sim.Result) error {
	data := ExportData{
		Session: info,
		Times:   result.Times,
		Scroll:  result.Scroll,
		States:  make([]string, len(result.States)),
		Tracks:  make(map[string][]*float64, len(result.Tracks)),
		Events:  make([]ExportEvent, len(result.Events)),
	}
	for i, s := range result.States {
		data.States[i] = s.String()
	}
	for i, e := range result.Events {
		ev := ExportEvent{Time: e.Time, Name: e.Name, Kind: e.Kind.String()}
		if e.Kind == trigger.EventProgress {
			p := e.Progress
			ev.Progress = &p
		}
		data.Events[i] = ev
	}

	for k, vals := range result.Tracks {
		col := make([]*float64, len(vals))
		for i := range vals {
			if !math.IsNaN(vals[i]) {
				col[i] = &vals[i]
			}
		}
		data.Tracks[k] = col
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportFile writes ExportJSON output to path.
func ExportFile(path string, info Session, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, info, result)
}

// ExportSession re-exports a stored session from its files.
func (s *Store) ExportSession(w io.Writer, id string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	result := &sim.Result{Tracks: make(map[string][]float64), Metrics: meta.Metrics, Frames: meta.Frames, ReadyAt: meta.ReadyAt}
	scroll, times, err := s.LoadTrack(id, "scroll", "")
	if err != nil {
		return err
	}
	result.Times, result.Scroll = times, scroll
	for _, key := range meta.Tracks {
		vals, _, err := s.LoadTrack(id, key, "")
		if err != nil {
			return err
		}
		result.Tracks[key] = vals
	}
	return ExportJSON(w, *meta, result)
}
