package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/san-kum/synapse/internal/metrics"
)

func TestStoreSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return time.Unix(100, 0) }

	samples := []metrics.Sample{
		{Frame: 1, Edges: 12, MeanOpacity: 0.1, MeanSpeed: 0.2, Duration: 150 * time.Microsecond},
		{Frame: 2, Edges: 14, MeanOpacity: 0.12, MeanSpeed: 0.2, Duration: 170 * time.Microsecond},
	}
	id, err := s.Save(SnapshotMetadata{Preset: "calm", Nodes: 30, Frames: 2}, "<svg></svg>", samples)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != id || meta.Preset != "calm" || meta.Nodes != 30 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	got, err := s.LoadStats(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Edges != 14 || got[0].Duration != 150*time.Microsecond {
		t.Errorf("unexpected stats %+v", got)
	}

	svg, err := os.ReadFile(s.FramePath(id))
	if err != nil || string(svg) != "<svg></svg>" {
		t.Errorf("unexpected frame %q (%v)", svg, err)
	}
}

func TestStoreList(t *testing.T) {
	s := New(t.TempDir())
	tick := int64(0)
	s.now = func() time.Time { tick++; return time.Unix(tick, 0) }

	for i := 0; i < 3; i++ {
		if _, err := s.Save(SnapshotMetadata{Frames: i}, "", nil); err != nil {
			t.Fatal(err)
		}
	}
	snaps, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	for i, m := range snaps {
		if m.Frames != i {
			t.Errorf("expected snapshots oldest first, got %+v", snaps)
		}
	}
}

func TestStoreMissing(t *testing.T) {
	s := New(t.TempDir() + "/nope")
	snaps, err := s.List()
	if err != nil || len(snaps) != 0 {
		t.Errorf("expected empty list, got %v %v", snaps, err)
	}
	if _, err := s.Load("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadStats("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
