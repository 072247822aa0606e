package emby

import (
	"context"
	"fmt"
	"net/url"
)

// collectionQuery describes how one named collection is fetched. Item
// queries share the fixed shape the server expects: recursive, a type
// filter, a field projection and SortName ascending. Endpoints that are
// not item queries (devices, users) carry their own path instead.
type collectionQuery struct {
	path      string
	itemTypes string
	fields    string
}

var collectionQueries = map[string]collectionQuery{
	"albums":    {itemTypes: "MusicAlbum", fields: "Path,ParentId,Overview,Genres,Tags,Artists"},
	"songs":     {itemTypes: "Audio", fields: "Path,ParentId,Overview,Genres,Tags,Artists"},
	"playlists": {itemTypes: "Playlist", fields: "Path,ParentId,Overview"},
	"artists":   {itemTypes: "MusicArtist", fields: "Path,ParentId,Overview,Genres,Tags"},
	"movies":    {itemTypes: "Movie", fields: "Path,ParentId,Overview,Genres,Tags,ProviderIds"},
	"series":    {itemTypes: "Series", fields: "Path,ParentId,Overview,Genres,Tags"},
	"episodes":  {itemTypes: "Episode", fields: "Path,ParentId,Overview,Genres,Tags"},
	"devices":   {path: "/Devices"},
	"users":     {path: "/Users"},
}

// CollectionKeys lists the logical names usable with Collection and
// CollectionForce, sorted the way the table iterates (unordered).
func CollectionKeys() []string {
	keys := make([]string, 0, len(collectionQueries))
	for key := range collectionQueries {
		keys = append(keys, key)
	}
	return keys
}

// Collection is the cached accessor for a named collection: the cached
// sequence when present and non-empty, a forced fetch otherwise.
func (e *Emby) Collection(ctx context.Context, key string) ([]Object, error) {
	if _, ok := collectionQueries[key]; !ok {
		return nil, fmt.Errorf("unknown collection %q", key)
	}
	if items, ok := e.extras.get(key); ok {
		return items, nil
	}
	return e.CollectionForce(ctx, key)
}

// CollectionForce is the forced accessor: always query the server,
// resolve, overwrite the cache entry and return the fresh sequence.
func (e *Emby) CollectionForce(ctx context.Context, key string) ([]Object, error) {
	q, ok := collectionQueries[key]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", key)
	}

	path := q.path
	var params url.Values
	if path == "" {
		path = "/Users/{UserId}/Items"
		params = url.Values{}
		params.Set("Recursive", "true")
		params.Set("IncludeItemTypes", q.itemTypes)
		params.Set("Fields", q.fields)
		params.Set("SortBy", "SortName")
		params.Set("SortOrder", "Ascending")
	}

	payload, err := e.conn.GetJSON(ctx, path, params)
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

// Named pairs over the collection table. Each cached accessor prefers the
// cache; each Force variant re-queries and overwrites it.

func (e *Emby) Albums(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "albums") }
func (e *Emby) AlbumsForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "albums") }

func (e *Emby) Songs(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "songs") }
func (e *Emby) SongsForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "songs") }

func (e *Emby) Playlists(ctx context.Context) ([]Object, error) {
	return e.Collection(ctx, "playlists")
}
func (e *Emby) PlaylistsForce(ctx context.Context) ([]Object, error) {
	return e.CollectionForce(ctx, "playlists")
}

func (e *Emby) Artists(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "artists") }
func (e *Emby) ArtistsForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "artists") }

func (e *Emby) Movies(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "movies") }
func (e *Emby) MoviesForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "movies") }

func (e *Emby) Series(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "series") }
func (e *Emby) SeriesForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "series") }

func (e *Emby) Episodes(ctx context.Context) ([]Object, error) {
	return e.Collection(ctx, "episodes")
}
func (e *Emby) EpisodesForce(ctx context.Context) ([]Object, error) {
	return e.CollectionForce(ctx, "episodes")
}

func (e *Emby) Devices(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "devices") }
func (e *Emby) DevicesForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "devices") }

func (e *Emby) Users(ctx context.Context) ([]Object, error)      { return e.Collection(ctx, "users") }
func (e *Emby) UsersForce(ctx context.Context) ([]Object, error) { return e.CollectionForce(ctx, "users") }

// Refresh drops every cached collection, then re-runs the forced accessor
// for each key that was populated. By default a key that fails to refresh
// is skipped and the remaining keys still refresh; with
// WithFailFastRefresh the first failure aborts and is returned.
func (e *Emby) Refresh(ctx context.Context) error {
	for _, key := range e.extras.invalidateAll() {
		if _, err := e.CollectionForce(ctx, key); err != nil {
			if e.failFastRefresh {
				return fmt.Errorf("refresh %s: %w", key, err)
			}
		}
	}
	return nil
}
