package block

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDSource generates unique block ids. Implementations must be safe for
// concurrent use.
type IDSource interface {
	NewID() string
}

// UUIDSource generates ids combining a millisecond timestamp with a random
// UUID. The time component keeps ids roughly ordered by creation; the UUID
// carries the uniqueness across documents, paste operations and persistence
// round-trips.
type UUIDSource struct{}

// NewID returns a fresh unique id.
func (UUIDSource) NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + uuid.NewString()
}

// SequentialSource generates deterministic ids for tests: prefix-1,
// prefix-2, ... Safe for concurrent use.
type SequentialSource struct {
	Prefix string
	n      atomic.Uint64
}

// NewID returns the next id in the sequence.
func (s *SequentialSource) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}

var (
	idMu     sync.RWMutex
	idSource IDSource = UUIDSource{}
)

// NewID returns an id from the current default source. Used by block
// constructors when no explicit id is supplied.
func NewID() string {
	idMu.RLock()
	src := idSource
	idMu.RUnlock()
	return src.NewID()
}

// SetIDSource replaces the default id source and returns the previous one.
// Intended for tests that need deterministic ids.
func SetIDSource(src IDSource) IDSource {
	idMu.Lock()
	defer idMu.Unlock()
	prev := idSource
	idSource = src
	return prev
}
