package emby

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Emby is the root aggregate: the entity that represents the server
// connection itself. It exposes the top-level queries (search, latest,
// next-up, playlist creation) and the cached collection accessors, all
// built on the resolver and the cache layer. Its id is the empty string
// by convention.
type Emby struct {
	Entity

	failFastRefresh bool
}

// Option configures the root aggregate.
type Option func(*Emby)

// WithFailFastRefresh makes Refresh abort on the first collection that
// fails to re-fetch instead of the default best-effort behavior, which
// skips failing collections silently.
func WithFailFastRefresh() Option {
	return func(e *Emby) { e.failFastRefresh = true }
}

// New creates the root aggregate on top of a connector. Use
// transport.NewClient for a real server connection.
func New(conn Connector, opts ...Option) *Emby {
	e := &Emby{
		Entity: *newEntity(map[string]any{"ItemId": "", "Name": ""}, conn),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SystemInfo returns the raw server status record.
func (e *Emby) SystemInfo(ctx context.Context) (map[string]any, error) {
	return e.conn.SystemInfo(ctx)
}

// Info resolves one or more item ids into typed entities. An id without a
// server record fails with a LookupError carrying that id.
func (e *Emby) Info(ctx context.Context, ids ...string) ([]Object, error) {
	return e.Process(ctx, ids)
}

// DefaultSortMap is the search result ordering used when the caller does
// not supply one: collections first, then series, movies, songs, people.
var DefaultSortMap = map[string]int{
	"BoxSet": 0,
	"Series": 1,
	"Movie":  2,
	"Audio":  3,
	"Person": 4,
}

// SearchOptions tune a Search call.
type SearchOptions struct {
	// SortMap assigns each type tag a priority; lower sorts first.
	// Entities whose tag is absent keep their original relative order
	// after all mapped types. Defaults to DefaultSortMap.
	SortMap map[string]int

	// Strict constrains the server-side query to the types present in
	// SortMap's keys.
	Strict bool
}

// Search sends a text search to the server, resolves all hits and stably
// sorts them by type priority.
func (e *Emby) Search(ctx context.Context, query string, opts *SearchOptions) ([]Object, error) {
	sortMap := DefaultSortMap
	strict := false
	if opts != nil {
		if opts.SortMap != nil {
			sortMap = opts.SortMap
		}
		strict = opts.Strict
	}

	params := url.Values{}
	params.Set("searchTerm", query)
	if strict {
		params.Set("IncludeItemTypes", strings.Join(sortMapKeys(sortMap), ","))
	}

	payload, err := e.conn.GetJSON(ctx, "/Search/Hints", params)
	if err != nil {
		return nil, err
	}
	hits, err := e.Process(ctx, payload)
	if err != nil {
		return nil, err
	}

	unmapped := len(sortMap)
	sort.SliceStable(hits, func(i, j int) bool {
		return typePriority(sortMap, hits[i], unmapped) < typePriority(sortMap, hits[j], unmapped)
	})
	return hits, nil
}

func typePriority(sortMap map[string]int, obj Object, unmapped int) int {
	if p, ok := sortMap[obj.EntityType()]; ok {
		return p
	}
	return unmapped
}

// sortMapKeys returns the map's keys ordered by priority, then name, so
// the request parameter is deterministic.
func sortMapKeys(sortMap map[string]int) []string {
	keys := make([]string, 0, len(sortMap))
	for key := range sortMap {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if sortMap[keys[i]] != sortMap[keys[j]] {
			return sortMap[keys[i]] < sortMap[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// LatestOptions tune a Latest call.
type LatestOptions struct {
	// UserID scopes the list to a specific user instead of the
	// authenticated one.
	UserID string

	// ItemTypes is a comma-separated server-side type filter.
	ItemTypes string

	// GroupItems folds items belonging to one container into it.
	GroupItems bool
}

// Latest returns the server's latest-media list. Results are resolved but
// not cached.
func (e *Emby) Latest(ctx context.Context, opts *LatestOptions) ([]Object, error) {
	path := "/Users/{UserId}/Items/Latest"
	params := url.Values{}
	if opts != nil {
		if opts.UserID != "" {
			path = strings.Replace(path, "{UserId}", opts.UserID, 1)
		}
		if opts.ItemTypes != "" {
			params.Set("IncludeItemTypes", opts.ItemTypes)
		}
		params.Set("GroupItems", strconv.FormatBool(opts.GroupItems))
	}

	payload, err := e.conn.GetJSON(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return e.Process(ctx, payload)
}

// NextUp returns the episodes the server marks as next up, for the
// authenticated user or for userID when given.
func (e *Emby) NextUp(ctx context.Context, userID string) ([]Object, error) {
	params := url.Values{}
	if userID != "" {
		params.Set("UserId", userID)
	}

	payload, err := e.conn.GetJSON(ctx, "/Shows/NextUp", params)
	if err != nil {
		return nil, err
	}
	return e.Process(ctx, payload)
}

// CreatePlaylist creates a playlist named name containing items, which
// may be ids, raw records or resolved entities in any mixture. The server
// does not return the created playlist through this call.
func (e *Emby) CreatePlaylist(ctx context.Context, name string, items ...any) error {
	resolved, err := e.Process(ctx, items)
	if err != nil {
		return err
	}

	data := map[string]any{"Name": name}
	ids := make([]string, 0, len(resolved))
	for _, obj := range resolved {
		if id := obj.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) > 0 {
		data["Ids"] = strings.Join(ids, ",")
	}

	return e.conn.Post(ctx, "/Playlists", data, nil)
}
