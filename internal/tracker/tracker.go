package tracker

import (
	"sync"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// Tracker deduplicates posts that have already been processed. It holds
// at most maxSize entries; once capacity is exceeded the oldest tracked
// entries are evicted first, which also ends their dedup window.
type Tracker struct {
	mu      sync.Mutex
	order   []string
	seen    map[string]struct{}
	maxSize int
}

// New creates a tracker with the given capacity ceiling
func New(maxSize int) *Tracker {
	return &Tracker{
		order:   make([]string, 0, maxSize),
		seen:    make(map[string]struct{}, maxSize),
		maxSize: maxSize,
	}
}

// FilterNew returns only the posts whose id has not been tracked yet,
// preserving feed order, and records each returned post. Eviction runs
// after insertion so a single oversized batch still passes through
// whole.
func (t *Tracker) FilterNew(posts []types.Post) []types.Post {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := make([]types.Post, 0, len(posts))
	for _, post := range posts {
		if _, tracked := t.seen[post.ID]; tracked {
			continue
		}
		t.seen[post.ID] = struct{}{}
		t.order = append(t.order, post.ID)
		fresh = append(fresh, post)
	}

	for len(t.order) > t.maxSize {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.seen, oldest)
	}

	return fresh
}

// Len returns the number of tracked post ids
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}
