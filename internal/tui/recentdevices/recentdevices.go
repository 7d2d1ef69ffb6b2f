// ABOUTME: Remembers recently viewed devices for the TUI device picker
// ABOUTME: Stores device ids in the config directory, most recent first

package recentdevices

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/mikrodash/mikrodash/internal/client"
)

// MaxRecent is the maximum number of devices remembered
const MaxRecent = 5

// Store manages the list of recently viewed devices
type Store struct {
	configDir string
	ids       []string
}

type recentData struct {
	Devices []string `json:"devices"`
}

// New creates a store backed by configDir. An empty configDir keeps the list
// in memory only.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

func (s *Store) configFile() string {
	return filepath.Join(s.configDir, "recent.json")
}

// Load reads the list from disk. A missing or corrupt file yields an empty list.
func (s *Store) Load() ([]string, error) {
	s.ids = []string{}
	if s.configDir == "" {
		return s.ids, nil
	}

	data, err := os.ReadFile(s.configFile())
	if errors.Is(err, os.ErrNotExist) {
		return s.ids, nil
	}
	if err != nil {
		return nil, err
	}

	var recent recentData
	if err := json.Unmarshal(data, &recent); err != nil {
		return s.ids, nil
	}
	for _, id := range recent.Devices {
		if id != "" && len(s.ids) < MaxRecent {
			s.ids = append(s.ids, id)
		}
	}
	return s.ids, nil
}

// Save writes ids to disk, keeping at most MaxRecent.
func (s *Store) Save(ids []string) error {
	if len(ids) > MaxRecent {
		ids = ids[:MaxRecent]
	}
	s.ids = ids
	if s.configDir == "" {
		return nil
	}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(recentData{Devices: ids}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.configFile(), data, 0o644)
}

// Add moves id to the front of the list and saves it.
func (s *Store) Add(id string) error {
	if s.ids == nil {
		if _, err := s.Load(); err != nil {
			s.ids = []string{}
		}
	}

	ids := make([]string, 0, len(s.ids)+1)
	ids = append(ids, id)
	for _, existing := range s.ids {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	return s.Save(ids)
}

// List returns the remembered ids, most recent first
func (s *Store) List() []string {
	if s.ids == nil {
		_, _ = s.Load()
	}
	return s.ids
}

// Last returns the most recently viewed id that is still among devices.
func (s *Store) Last(devices []client.Device) (string, bool) {
	for _, id := range s.List() {
		for _, d := range devices {
			if d.ID == id {
				return id, true
			}
		}
	}
	return "", false
}

// Order returns devices with recently viewed ones first, in recency order;
// the rest keep their backend order.
func (s *Store) Order(devices []client.Device) []client.Device {
	rank := make(map[string]int)
	for i, id := range s.List() {
		rank[id] = i
	}

	out := append([]client.Device(nil), devices...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, oki := rank[out[i].ID]
		rj, okj := rank[out[j].ID]
		switch {
		case oki && okj:
			return ri < rj
		default:
			return oki && !okj
		}
	})
	return out
}
