package memory

import (
	"context"
	"sync"

	"github.com/viant/namepool/service/backend"
)

// Name identifies the backend.
const Name = "memory"

// Store is the shared in-process slot several handles can point at.
type Store struct {
	mu         sync.Mutex
	blob       []byte
	generation uint64
	writes     int
}

// NewStore creates an empty slot.
func NewStore() *Store {
	return &Store{}
}

// Blob returns a copy of the current blob.
func (s *Store) Blob() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob == nil {
		return nil
	}
	return append([]byte{}, s.blob...)
}

// Writes returns the number of successful writes.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Put replaces the blob out of band, as another process would.
func (s *Store) Put(blob []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = append([]byte{}, blob...)
	s.generation++
}

// Service is a handle on a Store with compare-and-swap writes: a write fails
// with backend.ErrConflict when the blob changed since the handle last read it.
type Service struct {
	store      *Store
	mu         sync.Mutex
	generation uint64
}

// Ensure Service implements backend.Backend
var _ backend.Backend = (*Service)(nil)

// Name returns backend name
func (s *Service) Name() string {
	return Name
}

// SupportsConditionalWrite returns true.
func (s *Service) SupportsConditionalWrite() bool {
	return true
}

// Shared returns true: other handles may write to the same store.
func (s *Service) Shared() bool {
	return true
}

// Read returns the current blob and remembers its generation.
func (s *Service) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.mu.Lock()
	s.generation = s.store.generation
	s.mu.Unlock()
	if s.store.blob == nil {
		return nil, nil
	}
	return append([]byte{}, s.store.blob...), nil
}

// Write stores blob if nobody wrote since the last Read.
func (s *Service) Write(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.generation != s.generation {
		return backend.ErrConflict
	}
	s.store.blob = append([]byte{}, blob...)
	s.store.generation++
	s.store.writes++
	s.generation = s.store.generation
	return nil
}

// New creates a handle on store; a nil store gets a private one.
func New(store *Store) *Service {
	if store == nil {
		store = NewStore()
	}
	return &Service{store: store}
}
