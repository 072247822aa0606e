// Package emby is a typed client-side object model for Emby-protocol
// media servers (Emby, Jellyfin). It turns the server's loosely-typed
// JSON records into a graph of typed entities with on-demand resolution
// of related objects and per-entity caching of lazily computed
// collections.
package emby

import (
	"context"
	"net/url"
	"time"
)

// Object is the common surface of every resolved server record.
// Concrete variants (Movie, Episode, Album, ...) add typed accessors on
// top of it. Two objects are the same item when their IDs match; the
// model keeps no global identity map, so separate instances with the
// same id are expected.
type Object interface {
	ID() string
	EntityType() string
	Name() string
	Raw() map[string]any

	base() *Entity
}

// Equal reports whether two objects refer to the same server item.
// Identity is by id, never by instance.
func Equal(a, b Object) bool {
	return a != nil && b != nil && a.ID() != "" && a.ID() == b.ID()
}

// Entity is the generic representation of one server record. Field values
// live in the raw record and are read on demand by accessors; nothing is
// copied out eagerly. Every entity shares the connector it was resolved
// through, so it can resolve its own lazy relations later.
type Entity struct {
	raw    map[string]any
	conn   Connector
	extras *cacheStore
}

func newEntity(raw map[string]any, conn Connector) *Entity {
	return &Entity{raw: raw, conn: conn, extras: newCacheStore()}
}

func (e *Entity) base() *Entity { return e }

// Raw returns the original key/value record as received from the server.
func (e *Entity) Raw() map[string]any { return e.raw }

// ID returns the server-assigned identifier. Search hint records spell it
// ItemId rather than Id; both are honored. The root aggregate has an
// empty id.
func (e *Entity) ID() string {
	if id := e.stringField("Id"); id != "" {
		return id
	}
	return e.stringField("ItemId")
}

// EntityType returns the server's type tag ("Movie", "Episode", ...).
// Empty for records that carried no tag.
func (e *Entity) EntityType() string { return e.stringField("Type") }

func (e *Entity) Name() string     { return e.stringField("Name") }
func (e *Entity) Overview() string { return e.stringField("Overview") }
func (e *Entity) Path() string     { return e.stringField("Path") }
func (e *Entity) ParentID() string { return e.stringField("ParentId") }
func (e *Entity) Genres() []string { return e.stringSliceField("Genres") }
func (e *Entity) Tags() []string   { return e.stringSliceField("Tags") }

// field accessors; JSON numbers arrive as float64

func (e *Entity) stringField(key string) string {
	s, _ := e.raw[key].(string)
	return s
}

func (e *Entity) intField(key string, def int) int {
	switch v := e.raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func (e *Entity) floatField(key string) float64 {
	f, _ := e.raw[key].(float64)
	return f
}

func (e *Entity) boolField(key string) bool {
	b, _ := e.raw[key].(bool)
	return b
}

func (e *Entity) stringSliceField(key string) []string {
	items, _ := e.raw[key].([]any)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (e *Entity) mapSliceField(key string) []map[string]any {
	items, _ := e.raw[key].([]any)
	if items == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// timeField parses the server's date format ("2019-07-23T00:00:00.0000000Z").
// Returns the zero time for absent or unparseable values.
func (e *Entity) timeField(key string) time.Time {
	s := e.stringField(key)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

// childItems is the cached accessor behind entity-scoped collections such
// as an album's songs: return the cached result if present and non-empty,
// otherwise fall through to the forced fetch.
func (e *Entity) childItems(ctx context.Context, key, itemTypes, fields string) ([]Object, error) {
	if items, ok := e.extras.get(key); ok {
		return items, nil
	}
	return e.childItemsForce(ctx, key, itemTypes, fields)
}

// childItemsForce always queries the server for the entity's children and
// overwrites the cache entry with the fresh result.
func (e *Entity) childItemsForce(ctx context.Context, key, itemTypes, fields string) ([]Object, error) {
	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("ParentId", e.ID())
	if itemTypes != "" {
		params.Set("IncludeItemTypes", itemTypes)
	}
	if fields != "" {
		params.Set("Fields", fields)
	}
	params.Set("SortBy", "SortName")
	params.Set("SortOrder", "Ascending")

	payload, err := e.conn.GetJSON(ctx, "/Users/{UserId}/Items", params)
	if err != nil {
		return nil, err
	}
	items, err := e.Process(ctx, payload)
	if err != nil {
		return nil, err
	}
	e.extras.put(key, items)
	return items, nil
}
