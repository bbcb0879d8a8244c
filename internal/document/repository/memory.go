package repository

import (
	"errors"
	"sort"
	"sync"

	"github.com/dmdev/docmanager/internal/document"
)

var (
	ErrNotFound = errors.New("document not found")
)

// MemoryRepo keeps documents in a map keyed by id. Every method copies
// documents in and out, so callers never share state with the store.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
	newID IDGenerator
}

// Option configures a MemoryRepo.
type Option func(*MemoryRepo)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *MemoryRepo) {
		if g != nil {
			m.newID = g
		}
	}
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	m := &MemoryRepo{
		store: make(map[string]*document.Document),
		newID: UUIDGenerator,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewMemoryRepoFrom returns a repo seeded with initial. A document without an
// id takes its map key; if that is empty as well, an id is generated.
func NewMemoryRepoFrom(initial map[string]*document.Document, opts ...Option) *MemoryRepo {
	m := NewMemoryRepo(opts...)
	for key, d := range initial {
		if d == nil {
			continue
		}
		c := d.Clone()
		if c.IsNew() {
			c.ID = key
		}
		m.save(c)
	}
	return m
}

// Save upserts doc. A new document gets a generated id that is not in use yet;
// a document with an id replaces whatever is stored under it. doc is returned
// carrying its final id.
func (m *MemoryRepo) Save(doc *document.Document) *document.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.save(doc)
	return doc
}

// save requires m.mu to be held.
func (m *MemoryRepo) save(doc *document.Document) {
	if doc.IsNew() {
		id := m.newID()
		for m.taken(id) {
			id = m.newID()
		}
		doc.ID = id
	}
	m.store[doc.ID] = doc.Clone()
}

func (m *MemoryRepo) taken(id string) bool {
	if id == "" {
		return true
	}
	_, ok := m.store[id]
	return ok
}

// FindByID returns a copy of the document stored under id, or false when there is none.
func (m *MemoryRepo) FindByID(id string) (*document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Search returns copies of every document matching req, oldest first.
func (m *MemoryRepo) Search(req document.SearchRequest) []*document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		if req.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *MemoryRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}

// Len returns the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
