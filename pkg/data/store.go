package data

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Store owns the persisted document. Every mutation is applied to a copy,
// flushed through the backend and only then made visible, so a failed write
// leaves the in-memory state untouched.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *Document
}

// NewStore loads the document from backend.
func NewStore(backend Backend) (*Store, error) {
	doc, err := backend.Load()
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, doc: doc}, nil
}

// Open builds the backend named kind inside dir and loads the store.
func Open(dir, kind string) (*Store, error) {
	var backend Backend
	switch kind {
	case "", BackendJSON:
		backend = NewJSONBackend(filepath.Join(dir, StoreFileName))
	case BackendDuckDB:
		db, err := NewDuckDBBackend(filepath.Join(dir, DuckDBFileName))
		if err != nil {
			return nil, fmt.Errorf("open duckdb store: %w", err)
		}
		backend = db
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}

	store, err := NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return store, nil
}

func NewID() string {
	return uuid.NewString()
}

// Animes returns a copy of the collection keyed by id. It is never nil.
func (s *Store) Animes() map[string]Anime {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Anime, len(s.doc.Animes))
	for id, a := range s.doc.Animes {
		a.ID = id
		out[id] = a
	}
	return out
}

// Anime returns the record for id, or nil when there is none.
func (s *Store) Anime(id string) *Anime {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.doc.Animes[id]
	if !ok {
		return nil
	}
	a.ID = id
	return &a
}

// CreateAnime stores a new record under a fresh id with zero episodes.
func (s *Store) CreateAnime(day, title string) (Anime, error) {
	var created Anime
	err := s.mutate(func(doc *Document) {
		id := NewID()
		for {
			if _, taken := doc.Animes[id]; !taken {
				break
			}
			id = NewID()
		}
		created = Anime{ID: id, Title: title, Day: day}
		doc.Animes[id] = created
	})
	if err != nil {
		return Anime{}, err
	}
	return created, nil
}

// UpdateAnime applies fn to the record for id, creating an empty record
// first if id is unknown. fn cannot change the id.
func (s *Store) UpdateAnime(id string, fn func(a *Anime)) error {
	return s.mutate(func(doc *Document) {
		a := doc.Animes[id]
		fn(&a)
		a.ID = id
		doc.Animes[id] = a
	})
}

// DeleteAnime removes the record for id. Unknown ids are ignored.
func (s *Store) DeleteAnime(id string) error {
	s.mu.Lock()
	_, ok := s.doc.Animes[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	return s.mutate(func(doc *Document) {
		delete(doc.Animes, id)
	})
}

// Bounds returns the stored window geometry, with the default size filled in
// for anything that was never saved.
func (s *Store) Bounds() Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Bounds == nil {
		return Bounds{}.withDefaults()
	}
	return s.doc.Bounds.withDefaults()
}

// HasBounds reports whether geometry has ever been saved.
func (s *Store) HasBounds() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Bounds != nil
}

// SetBounds replaces the stored geometry wholesale.
func (s *Store) SetBounds(b Bounds) error {
	return s.mutate(func(doc *Document) {
		c := b.clone()
		doc.Bounds = &c
	})
}

// ResetBounds forgets the stored geometry.
func (s *Store) ResetBounds() error {
	return s.mutate(func(doc *Document) {
		doc.Bounds = nil
	})
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) mutate(fn func(doc *Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	fn(next)
	if err := s.backend.Save(next); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	s.doc = next
	return nil
}
