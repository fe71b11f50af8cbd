// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Status compares a fresh result with the best known one.
type Status uint8

const (
	// StatusNew means no best result was known for the pair.
	StatusNew Status = iota
	// StatusBetter means the fresh pattern is shorter than the best known one.
	StatusBetter
	// StatusSame means the fresh pattern has the best known length.
	StatusSame
	// StatusWorse means the fresh pattern is longer than the best known one.
	StatusWorse
)

// String returns status name.
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusBetter:
		return "better"
	case StatusSame:
		return "same"
	case StatusWorse:
		return "worse"
	default:
		return "unknown"
	}
}

// Entry is one persisted result for a list pair.
type Entry struct {
	// Small is the discriminating pattern.
	Small string `json:"small"`
	// Default is the baseline pattern built from whole include words.
	Default string `json:"default"`
}

// Store keeps best known results per list pair in a JSON file.
type Store struct {
	// entries are best results by pair key.
	entries map[string]Entry
	// path is backing file path, empty for in-memory store.
	path string

	// mu guards entries and dirty.
	mu sync.Mutex
	// dirty reports unsaved changes.
	dirty bool
}

// PairKey returns store key of an include/exclude list pair.
func PairKey(include string, exclude string) string {
	return include + "/" + exclude
}

// OpenStore loads store from path. A missing file yields an empty store.
// Empty path yields an in-memory store that Save never writes.
func OpenStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]Entry),
	}

	if path == "" {
		return s, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(content, &s.entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return s, nil
}

// Get returns best known entry for key.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	return e, ok
}

// Record compares current with best known entry and keeps the shorter one.
//
// It returns comparison status and the best entry known before the call.
func (s *Store) Record(key string, current Entry) (Status, Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best, ok := s.entries[key]
	status := compareEntries(current, best, ok)
	if status == StatusNew || status == StatusBetter {
		s.entries[key] = current
		s.dirty = true
	}

	return status, best
}

// Dirty reports whether store has unsaved changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dirty
}

// Save writes store to its file when it has unsaved changes.
//
// The file is replaced atomically via a temporary file in the same directory.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty || s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	data = append(data, '\n')
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	s.dirty = false
	return nil
}

// compareEntries classifies current against best by pattern length.
func compareEntries(current Entry, best Entry, known bool) Status {
	switch {
	case !known:
		return StatusNew
	case len(current.Small) < len(best.Small):
		return StatusBetter
	case len(current.Small) > len(best.Small):
		return StatusWorse
	default:
		return StatusSame
	}
}

// writeFileAtomic writes data to a temporary sibling file and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
