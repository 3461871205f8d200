package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/stride/internal/sim"
)

var ErrNoTrack = errors.New("storage: track not recorded")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Session describes one recorded run.
type Session struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	ReadyAt   float64            `json:"ready_at"`
	Frames    int                `json:"frames"`
	Events    int                `json:"events"`
	Tracks    []string           `json:"tracks"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and tracks.csv into a fresh session directory
// and returns the session ID.
func (s *Store) Save(info Session, result *sim.Result) (string, error) {
	info.ID = fmt.Sprintf("%s_%s", info.Scenario, uuid.NewString()[:8])
	info.Timestamp = time.Now()
	info.ReadyAt = result.ReadyAt
	info.Frames = result.Frames
	info.Events = len(result.Events)
	info.Metrics = result.Metrics
	info.Tracks = trackKeys(result)

	dir := filepath.Join(s.baseDir, info.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "tracks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	header := append([]string{"time", "scroll", "state"}, info.Tracks...)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i, t := range result.Times {
		row := []string{formatFloat(t), formatFloat(result.Scroll[i]), result.States[i].String()}
		for _, k := range info.Tracks {
			row = append(row, formatFloat(result.Tracks[k][i]))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return info.ID, nil
}

func trackKeys(result *sim.Result) []string {
	keys := make([]string, 0, len(result.Tracks))
	for k := range result.Tracks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable session, oldest first.
func (s *Store) List() ([]Session, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Session{}, nil
		}
		return nil, err
	}

	sessions := make([]Session, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		sessions = append(sessions, *meta)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Timestamp.Before(sessions[j].Timestamp) })
	return sessions, nil
}

func (s *Store) Load(id string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta Session
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: session %s: %w", id, err)
	}
	return &meta, nil
}

// LoadTrack reads one recorded column. "scroll" names the window position;
// anything else is a node and property. Frames where the node was absent
// come back as NaN.
func (s *Store) LoadTrack(id, node, prop string) ([]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "tracks.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return []float64{}, []float64{}, nil
	}

	key := node
	if prop != "" {
		key = node + "." + prop
	}
	col := -1
	for i, h := range records[0] {
		if h == key {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, nil, fmt.Errorf("%w: %s in %s", ErrNoTrack, key, id)
	}

	times := make([]float64, 0, len(records)-1)
	values := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) <= col {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			v = math.NaN()
		}
		times = append(times, t)
		values = append(values, v)
	}
	return values, times, nil
}
