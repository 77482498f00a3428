package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/synapse/internal/metrics"
)

// ErrNotFound indicates an unknown snapshot id.
var ErrNotFound = errors.New("storage: snapshot not found")

const (
	metaFile  = "metadata.json"
	frameFile = "frame.svg"
	statsFile = "stats.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SnapshotMetadata describes how a snapshot was produced.
type SnapshotMetadata struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Theme     string    `json:"theme"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Nodes     int       `json:"nodes"`
	Frames    int       `json:"frames"`
	MeanEdges float64   `json:"mean_edges"`
}

// Save writes metadata, the final frame and per-frame stats under a new id.
func (s *Store) Save(meta SnapshotMetadata, svg string, samples []metrics.Sample) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("snapshot_%d", ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	meta.Timestamp = ts
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, metaFile), data, 0644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, frameFile), []byte(svg), 0644); err != nil {
		return "", err
	}
	if err := writeStats(filepath.Join(dir, statsFile), samples); err != nil {
		return "", err
	}
	return id, nil
}

func writeStats(path string, samples []metrics.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "edges", "mean_opacity", "mean_speed", "duration_us"}); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatUint(smp.Frame, 10),
			strconv.Itoa(smp.Edges),
			strconv.FormatFloat(smp.MeanOpacity, 'f', 6, 64),
			strconv.FormatFloat(smp.MeanSpeed, 'f', 6, 64),
			strconv.FormatInt(smp.Duration.Microseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all snapshots, oldest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Timestamp.Before(snaps[j].Timestamp) })
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// FramePath is where the snapshot's SVG lives.
func (s *Store) FramePath(id string) string {
	return filepath.Join(s.baseDir, id, frameFile)
}

func (s *Store) LoadStats(id string) ([]metrics.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, statsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []metrics.Sample{}, nil
	}

	samples := make([]metrics.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		frame, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			continue
		}
		edges, _ := strconv.Atoi(rec[1])
		opacity, _ := strconv.ParseFloat(rec[2], 64)
		speed, _ := strconv.ParseFloat(rec[3], 64)
		us, _ := strconv.ParseInt(rec[4], 10, 64)
		samples = append(samples, metrics.Sample{
			Frame:       frame,
			Edges:       edges,
			MeanOpacity: opacity,
			MeanSpeed:   speed,
			Duration:    time.Duration(us) * time.Microsecond,
		})
	}
	return samples, nil
}
