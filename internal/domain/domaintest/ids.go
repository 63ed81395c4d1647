// Package domaintest provides deterministic helpers for tests that build
// domain entities.
package domaintest

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

// SequentialIDs yields 00000000-0000-0000-0000-000000000001, ...0002, and so on.
type SequentialIDs struct {
	mu   sync.Mutex
	next uint64
}

func (s *SequentialIDs) NewID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return ID(s.next)
}

// ID returns the n-th identifier produced by a fresh SequentialIDs.
func ID(n uint64) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}
