package reputation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fastprodman/cardescrow/internal/repos/profiles"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

type cachedReputation struct {
	rep       Reputation
	fetchedAt time.Time
}

// Reader serves reputation reads from a bounded LRU. Entries older than ttl
// are refetched; writers call Invalidate after committing a change.
//
// A fetch that overlaps an Invalidate is returned but not cached.
type Reader struct {
	profiles profiles.Profiles
	cache    *lru.Cache
	ttl      time.Duration
	now      func() time.Time

	mu         sync.Mutex
	generation uint64
}

func NewReader(repo profiles.Profiles, size int, ttl time.Duration) (*Reader, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("reputation cache: %w", err)
	}

	return &Reader{
		profiles: repo,
		cache:    cache,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

func (r *Reader) Get(ctx context.Context, userID uuid.UUID) (Reputation, error) {
	if cached, ok := r.cache.Get(userID); ok {
		if c, ok := cached.(cachedReputation); ok && r.now().Sub(c.fetchedAt) < r.ttl {
			return c.rep, nil
		}
	}

	r.mu.Lock()
	gen := r.generation
	r.mu.Unlock()

	rep, err := r.profiles.GetReputation(ctx, userID)
	if err != nil {
		return Reputation{}, fmt.Errorf("get reputation: %w", err)
	}

	r.mu.Lock()
	if r.generation == gen {
		r.cache.Add(userID, cachedReputation{rep: rep, fetchedAt: r.now()})
	}
	r.mu.Unlock()

	return rep, nil
}

func (r *Reader) Invalidate(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.cache.Remove(userID)
}
