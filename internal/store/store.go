// Package store keeps uploaded PDF blobs and their per-page raster previews
// in memory, keyed by a content-derived id. The export engine never reads
// from here directly; callers marshal stored bytes into a plan per export.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/danh-tc/n-ups/internal/preview"
)

// ErrNotFound reports a lookup for a source id that is not stored.
var ErrNotFound = errors.New("source not found")

// Preview is the persisted raster snapshot of one source page, the same
// record the rotation pipeline works on.
type Preview = preview.Preview

// Store holds raw PDF blobs and previews. One blob per source id, many
// previews (one per page) per source id.
type Store struct {
	mu       sync.Mutex
	sources  map[string][]byte
	previews map[string]map[int]Preview
}

// New returns an empty store.
func New() *Store {
	return &Store{
		sources:  make(map[string][]byte),
		previews: make(map[string]map[int]Preview),
	}
}

// Put stores the raw PDF and returns its id. The id derives from the
// content, so re-uploading the same file yields the same id.
func (s *Store) Put(pdf []byte) string {
	sum := sha256.Sum256(pdf)
	id := hex.EncodeToString(sum[:8])

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sources[id]; !ok {
		s.sources[id] = append([]byte(nil), pdf...)
	}
	return id
}

// Get returns the raw PDF for id.
func (s *Store) Get(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pdf, ok := s.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return append([]byte(nil), pdf...), nil
}

// Remove drops the source and every preview belonging to it. It reports
// whether the id existed, so callers can clear slots referencing it.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sources[id]
	delete(s.sources, id)
	delete(s.previews, id)
	return ok
}

// PutPreview stores the preview for one page of an existing source.
func (s *Store) PutPreview(id string, page int, p Preview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sources[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	pages, ok := s.previews[id]
	if !ok {
		pages = make(map[int]Preview)
		s.previews[id] = pages
	}
	pages[page] = p
	return nil
}

// Preview returns the stored preview for one page of a source.
func (s *Store) Preview(id string, page int) (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.previews[id][page]
	if !ok {
		return Preview{}, fmt.Errorf("%w: %s page %d", ErrNotFound, id, page)
	}
	return p, nil
}

// Previews returns a copy of every stored preview for a source, keyed by
// page number.
func (s *Store) Previews(id string) map[int]Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]Preview, len(s.previews[id]))
	for page, p := range s.previews[id] {
		out[page] = p
	}
	return out
}
