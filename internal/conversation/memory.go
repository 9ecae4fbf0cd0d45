package conversation

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultCheckpointCapacity = 1024
	lockShards                = 64
)

// MemoryStore is an in-process checkpoint store bounded by an LRU cache.
// Least-recently-active threads are evicted once capacity is reached;
// retention beyond that is an external concern. Turn locks live in a
// fixed shard array so their footprint stays constant no matter how many
// thread ids pass through.
type MemoryStore struct {
	cache *lru.Cache[string, *State]
	locks [lockShards]sync.Mutex
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore holding at most capacity threads.
func NewMemoryStore(capacity int) (*MemoryStore, error) {
	if capacity <= 0 {
		capacity = DefaultCheckpointCapacity
	}
	cache, err := lru.New[string, *State](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

// Load returns a copy of the stored state so callers never mutate the
// checkpoint in place.
func (s *MemoryStore) Load(_ context.Context, threadID string) (*State, bool, error) {
	st, ok := s.cache.Get(threadID)
	if !ok {
		return nil, false, nil
	}
	return st.Clone(), true, nil
}

// Save stores a copy of the state.
func (s *MemoryStore) Save(_ context.Context, threadID string, st *State) error {
	if st == nil {
		return fmt.Errorf("nil state for thread %q", threadID)
	}
	s.cache.Add(threadID, st.Clone())
	return nil
}

// Acquire locks the thread id for the duration of one turn. Threads that
// hash to the same shard serialize against each other, which is harmless.
func (s *MemoryStore) Acquire(threadID string) func() {
	mu := s.lockFor(threadID)
	mu.Lock()
	return mu.Unlock
}

func (s *MemoryStore) lockFor(threadID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(threadID))
	return &s.locks[h.Sum32()%lockShards]
}

// Len reports how many threads currently have a checkpoint.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
