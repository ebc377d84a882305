package tracker

import (
	"fmt"
	"testing"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

func makePosts(ids ...string) []types.Post {
	posts := make([]types.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, types.Post{ID: id, Text: "post " + id})
	}
	return posts
}

func TestFilterNewReturnsUnseen(t *testing.T) {
	trk := New(10)

	fresh := trk.FilterNew(makePosts("1", "2", "3"))
	if len(fresh) != 3 {
		t.Fatalf("Expected 3 new posts, got %d", len(fresh))
	}

	// Feed order must be preserved
	for i, want := range []string{"1", "2", "3"} {
		if fresh[i].ID != want {
			t.Errorf("Expected post %s at position %d, got %s", want, i, fresh[i].ID)
		}
	}
}

func TestFilterNewDeduplicates(t *testing.T) {
	trk := New(10)

	trk.FilterNew(makePosts("1", "2"))
	fresh := trk.FilterNew(makePosts("1", "2", "3"))

	if len(fresh) != 1 || fresh[0].ID != "3" {
		t.Errorf("Expected only post 3 to be new, got %v", fresh)
	}

	// Seen ids stay excluded on later cycles too
	if again := trk.FilterNew(makePosts("1", "3")); len(again) != 0 {
		t.Errorf("Expected no new posts, got %v", again)
	}
}

func TestFilterNewDedupWithinBatch(t *testing.T) {
	trk := New(10)

	fresh := trk.FilterNew(makePosts("1", "1", "2"))
	if len(fresh) != 2 {
		t.Errorf("Expected 2 new posts from batch with duplicate, got %d", len(fresh))
	}
}

func TestCapacityCeiling(t *testing.T) {
	trk := New(3)

	for i := 0; i < 10; i++ {
		trk.FilterNew(makePosts(fmt.Sprintf("%d", i)))
		if trk.Len() > 3 {
			t.Fatalf("Tracker exceeded capacity after %d insertions: %d", i+1, trk.Len())
		}
	}

	if trk.Len() != 3 {
		t.Errorf("Expected 3 tracked posts, got %d", trk.Len())
	}
}

func TestFIFOEviction(t *testing.T) {
	trk := New(3)

	trk.FilterNew(makePosts("1", "2", "3", "4", "5"))

	// 1 and 2 are the oldest, so their dedup window has ended
	fresh := trk.FilterNew(makePosts("1", "2", "3", "4", "5"))
	if len(fresh) != 2 || fresh[0].ID != "1" || fresh[1].ID != "2" {
		t.Errorf("Expected evicted posts 1 and 2 to be new again, got %v", fresh)
	}
}

func TestOversizedBatchPassesWhole(t *testing.T) {
	trk := New(3)

	// Eviction runs after insertion, so a single big batch still comes
	// through complete
	fresh := trk.FilterNew(makePosts("1", "2", "3", "4", "5"))
	if len(fresh) != 5 {
		t.Errorf("Expected all 5 posts from first batch, got %d", len(fresh))
	}
	if trk.Len() != 3 {
		t.Errorf("Expected tracker trimmed to 3, got %d", trk.Len())
	}
}
