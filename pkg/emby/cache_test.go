package emby

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

func testObjects(ids ...string) []Object {
	out := make([]Object, len(ids))
	for i, id := range ids {
		out[i] = newEntity(map[string]any{"Id": id}, nil)
	}
	return out
}

func TestCacheGetMissing(t *testing.T) {
	is := is.New(t)
	c := newCacheStore()

	_, ok := c.get("movies")
	is.True(!ok)
}

func TestCachePutAndGet(t *testing.T) {
	is := is.New(t)
	c := newCacheStore()

	c.put("movies", testObjects("a", "b"))
	items, ok := c.get("movies")
	is.True(ok)
	is.Equal(len(items), 2)
}

func TestCacheEmptySequenceDoesNotSatisfy(t *testing.T) {
	is := is.New(t)
	c := newCacheStore()

	c.put("movies", nil)
	_, ok := c.get("movies")
	is.True(!ok)

	c.put("songs", []Object{})
	_, ok = c.get("songs")
	is.True(!ok)
}

func TestCachePutOverwrites(t *testing.T) {
	is := is.New(t)
	c := newCacheStore()

	c.put("movies", testObjects("a"))
	c.put("movies", testObjects("b", "c"))

	items, ok := c.get("movies")
	is.True(ok)
	is.Equal(len(items), 2)
	is.Equal(items[0].ID(), "b")
}

func TestCacheInvalidateAll(t *testing.T) {
	is := is.New(t)
	c := newCacheStore()

	c.put("movies", testObjects("a"))
	c.put("songs", testObjects("b"))

	keys := c.invalidateAll()
	sort.Strings(keys)
	is.Equal(keys, []string{"movies", "songs"})

	_, ok := c.get("movies")
	is.True(!ok)
	is.Equal(len(c.invalidateAll()), 0)
}
