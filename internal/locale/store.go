package locale

import "sync/atomic"

// Store holds the active labels. Readers never block; a reload swaps the
// whole Labels value.
type Store struct {
	cur atomic.Pointer[Labels]
}

// NewStore returns a store serving l, or the builtin labels if l is nil.
func NewStore(l *Labels) *Store {
	if l == nil {
		l = Default()
	}
	s := &Store{}
	s.cur.Store(l)
	return s
}

// Labels returns the active labels.
func (s *Store) Labels() *Labels {
	return s.cur.Load()
}

// Set returns the active set of lang.
func (s *Store) Set(lang Lang) *Set {
	return s.cur.Load().For(lang)
}

// Swap replaces the active labels.
func (s *Store) Swap(l *Labels) {
	s.cur.Store(l)
}
