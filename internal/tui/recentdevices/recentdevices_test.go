// ABOUTME: Tests for recent device memory
// ABOUTME: Validates persistence, max limit, deduplication and picker ordering

package recentdevices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikrodash/mikrodash/internal/client"
)

func TestLoadEmpty(t *testing.T) {
	s := New(t.TempDir())

	ids, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty list, got %v", ids)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	if err := New(dir).Save([]string{"r1", "r2"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	ids, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "r1" || ids[1] != "r2" {
		t.Errorf("expected [r1 r2], got %v", ids)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "recent.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected corrupt file to yield empty list, got %v", ids)
	}
}

func TestAddMovesToFrontAndCaps(t *testing.T) {
	s := New(t.TempDir())
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		if err := s.Add(id); err != nil {
			t.Fatalf("Add(%s) error: %v", id, err)
		}
	}
	if err := s.Add("c"); err != nil {
		t.Fatal(err)
	}

	ids := s.List()
	if len(ids) != MaxRecent {
		t.Fatalf("expected %d ids, got %v", MaxRecent, ids)
	}
	if ids[0] != "c" || ids[1] != "f" {
		t.Errorf("expected c then f at the front, got %v", ids)
	}
	for _, id := range ids[1:] {
		if id == "c" {
			t.Errorf("expected c only once, got %v", ids)
		}
	}
}

func TestInMemoryStore(t *testing.T) {
	s := New("")
	if err := s.Add("r1"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if got := s.List(); len(got) != 1 || got[0] != "r1" {
		t.Errorf("expected [r1], got %v", got)
	}
}

func TestLastAndOrder(t *testing.T) {
	s := New("")
	_ = s.Save([]string{"gone", "r3", "r1"})

	devices := []client.Device{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}

	last, ok := s.Last(devices)
	if !ok || last != "r3" {
		t.Errorf("expected r3 as last viewed device, got %q %v", last, ok)
	}

	ordered := s.Order(devices)
	want := []string{"r3", "r1", "r2"}
	for i, d := range ordered {
		if d.ID != want[i] {
			t.Fatalf("expected order %v, got %v", want, ordered)
		}
	}
	if devices[0].ID != "r1" {
		t.Error("Order must not modify its input")
	}

	if _, ok := New("").Last(devices); ok {
		t.Error("expected no last device for an empty store")
	}
}
