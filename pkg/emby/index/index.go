// Package index provides a client-side title index over resolved objects
// for offline fuzzy narrowing of cached collections.
package index

import (
	"strings"
	"sync"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/embygo/pkg/emby"
)

// Entry is one indexed item.
type Entry struct {
	ID    string
	Title string
	Kind  string // the server type tag
}

// Match is a filter hit with its ranking metadata.
type Match struct {
	Entry
	Score          int   // higher is better
	MatchedIndexes []int // character positions, for highlighting
}

// Index is a deduplicating title index. Lowercase titles are precomputed
// at insert time so filtering allocates nothing per query.
type Index struct {
	mu          sync.RWMutex
	entries     []Entry
	lowerTitles []string
	seen        map[string]bool
}

func New() *Index {
	return &Index{seen: make(map[string]bool)}
}

// FromObjects converts resolved entities into index entries, skipping
// records without an id.
func FromObjects(objs []emby.Object) []Entry {
	entries := make([]Entry, 0, len(objs))
	for _, obj := range objs {
		if obj.ID() == "" {
			continue
		}
		entries = append(entries, Entry{ID: obj.ID(), Title: obj.Name(), Kind: obj.EntityType()})
	}
	return entries
}

// Add indexes entries, deduplicating by id, and reports how many were new.
func (x *Index) Add(entries ...Entry) int {
	x.mu.Lock()
	defer x.mu.Unlock()

	added := 0
	for _, entry := range entries {
		if x.seen[entry.ID] {
			continue
		}
		x.seen[entry.ID] = true
		x.entries = append(x.entries, entry)
		x.lowerTitles = append(x.lowerTitles, strings.ToLower(entry.Title))
		added++
	}
	return added
}

// Len returns the number of indexed entries (implements fuzzy.Source).
func (x *Index) Len() int { return len(x.entries) }

// Entries returns a copy of every indexed entry in insertion order.
func (x *Index) Entries() []Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// String returns the lowercase title at i (implements fuzzy.Source).
func (x *Index) String(i int) string { return x.lowerTitles[i] }

// Filter returns subsequence matches for query, best first.
func (x *Index) Filter(query string) []Match {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if query == "" || len(x.entries) == 0 {
		return nil
	}

	hits := fuzzy.FindFrom(strings.ToLower(query), x)
	matches := make([]Match, len(hits))
	for i, hit := range hits {
		matches[i] = Match{
			Entry:          x.entries[hit.Index],
			Score:          hit.Score,
			MatchedIndexes: hit.MatchedIndexes,
		}
	}
	return matches
}

// Best returns the entry whose title is closest to query by edit
// distance, or false when nothing ranks.
func (x *Index) Best(query string) (Entry, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ranks := lfuzzy.RankFindFold(query, x.lowerTitles)
	if len(ranks) == 0 {
		return Entry{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return x.entries[best.OriginalIndex], true
}

// Clear drops every entry.
func (x *Index) Clear() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = nil
	x.lowerTitles = nil
	x.seen = make(map[string]bool)
}
