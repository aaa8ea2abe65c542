// Package store holds the process-wide registry of named datasets.
package store

import (
	"sort"
	"sync"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

// Info is the listing entry for one dataset.
type Info struct {
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// Store is a read-mostly map of name to dataset guarded by one RWMutex.
// Stored datasets are never mutated, so a reader keeps a usable Dataset
// even if the name is deleted mid-request.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*dataset.Dataset
}

// New returns an empty store.
func New() *Store {
	return &Store{datasets: make(map[string]*dataset.Dataset)}
}

// Put stores ds under its name, replacing any previous dataset.
func (s *Store) Put(ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.Name] = ds
}

// Get returns the dataset stored under name.
func (s *Store) Get(name string) (*dataset.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[name]
	if !ok {
		return nil, &dataset.NotFoundError{Kind: "dataset", Name: name}
	}
	return ds, nil
}

// Delete removes the dataset stored under name. Deleting an unknown name
// is an error; after a successful delete the name is absent.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[name]; !ok {
		return &dataset.NotFoundError{Kind: "dataset", Name: name}
	}
	delete(s.datasets, name)
	return nil
}

// List returns an Info entry per dataset.
func (s *Store) List() map[string]Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Info, len(s.datasets))
	for name, ds := range s.datasets {
		out[name] = Info{Rows: len(ds.Rows), Columns: ds.Columns}
	}
	return out
}

// Names returns the stored dataset names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of stored datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}
