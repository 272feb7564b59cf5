package id

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Allocator hands out record identifiers. Implementations must never return
// the same value twice for the lifetime of the process.
type Allocator interface {
	Next() int64
}

// Sequence is a monotonic counter owned by one collection.
type Sequence struct {
	last atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Observe moves the counter forward so later allocations stay above id.
// Used after loading a snapshot that already contains records.
func (s *Sequence) Observe(id int64) {
	for {
		current := s.last.Load()
		if id <= current {
			return
		}
		if s.last.CompareAndSwap(current, id) {
			return
		}
	}
}

func (s *Sequence) Last() int64 {
	return s.last.Load()
}

// TokenGenerator creates opaque tokens suitable for session references.
type TokenGenerator interface {
	NewToken() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewToken() string {
	return uuid.NewString()
}
