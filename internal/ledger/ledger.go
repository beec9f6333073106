// Package ledger records fixture generation runs so any fixture pair can be
// traced back to the seed that produced it.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var runsBucket = []byte("runs")

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrRunNotFound    = errors.New("run not found")
)

// Run describes one completed generate run
type Run struct {
	ID                string    `json:"id"`
	EdgeCount         int       `json:"edge_count"`
	Seed              uint64    `json:"seed"`
	NumObjects        int       `json:"num_objects"`
	NumResources      int       `json:"num_resources"`
	TreeObjectsPath   string    `json:"tree_objects_path"`
	FileResourcesPath string    `json:"file_resources_path"`
	CreatedAt         time.Time `json:"created_at"`
}

// Ledger stores Runs as JSON in a Backend
type Ledger struct {
	backend Backend
}

// New wraps backend, creating the runs bucket if needed
func New(backend Backend) (*Ledger, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}
	return &Ledger{backend: backend}, nil
}

// Open opens a bbolt-backed ledger at path, creating parent directories
func Open(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	backend, err := NewBboltBackend(path)
	if err != nil {
		return nil, err
	}

	l, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return l, nil
}

// Record stores run, assigning an ID and timestamp when unset
func (l *Ledger) Record(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return l.backend.Put(runsBucket, []byte(run.ID), data)
}

// Get returns the run with the given ID
func (l *Ledger) Get(id string) (*Run, error) {
	data, err := l.backend.Get(runsBucket, []byte(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return &run, nil
}

// List returns all runs, newest first
func (l *Ledger) List() ([]*Run, error) {
	var runs []*Run
	err := l.backend.ForEach(runsBucket, func(k, v []byte) error {
		var run Run
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("failed to decode run %s: %w", k, err)
		}
		runs = append(runs, &run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(runs, func(a, b *Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return runs, nil
}

func (l *Ledger) Close() error {
	return l.backend.Close()
}
