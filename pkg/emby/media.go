package emby

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Audio is a single song.
type Audio struct{ Entity }

func newAudio(raw map[string]any, conn Connector) *Audio {
	return &Audio{Entity: *newEntity(raw, conn)}
}

func (a *Audio) AlbumName() string { return a.stringField("Album") }
func (a *Audio) AlbumID() string   { return a.stringField("AlbumId") }
func (a *Audio) Artists() []string { return a.stringSliceField("Artists") }

// IndexNumber returns the track number within the album.
func (a *Audio) IndexNumber() int { return a.intField("IndexNumber", 1) }

// Album resolves the album this song belongs to.
func (a *Audio) Album(ctx context.Context) (Object, error) {
	return a.ProcessOne(ctx, a.AlbumID())
}

// StreamURL returns the universal audio stream link for this song.
func (a *Audio) StreamURL() string {
	return a.conn.URL("/Audio/" + a.ID() + "/universal")
}

// Album is a music album; its songs are a lazily computed, entity-scoped
// collection.
type Album struct{ Entity }

func newAlbum(raw map[string]any, conn Connector) *Album {
	return &Album{Entity: *newEntity(raw, conn)}
}

func (al *Album) Artists() []string   { return al.stringSliceField("Artists") }
func (al *Album) AlbumArtist() string { return al.stringField("AlbumArtist") }

// Songs returns the album's songs, cached on the album after the first
// fetch.
func (al *Album) Songs(ctx context.Context) ([]Object, error) {
	return al.childItems(ctx, "songs", "Audio", "Path,ParentId,Overview,Genres,Tags,Artists")
}

// SongsForce re-fetches the album's songs, replacing the cached list.
func (al *Album) SongsForce(ctx context.Context) ([]Object, error) {
	return al.childItemsForce(ctx, "songs", "Audio", "Path,ParentId,Overview,Genres,Tags,Artists")
}

// Artist is a music artist.
type Artist struct{ Entity }

func newArtist(raw map[string]any, conn Connector) *Artist {
	return &Artist{Entity: *newEntity(raw, conn)}
}

// Albums returns the artist's albums, cached on the artist.
func (ar *Artist) Albums(ctx context.Context) ([]Object, error) {
	return ar.childItems(ctx, "albums", "MusicAlbum", "Path,ParentId,Overview,Genres,Tags,Artists")
}

// AlbumsForce re-fetches the artist's albums.
func (ar *Artist) AlbumsForce(ctx context.Context) ([]Object, error) {
	return ar.childItemsForce(ctx, "albums", "MusicAlbum", "Path,ParentId,Overview,Genres,Tags,Artists")
}

// Playlist is a user playlist.
type Playlist struct{ Entity }

func newPlaylist(raw map[string]any, conn Connector) *Playlist {
	return &Playlist{Entity: *newEntity(raw, conn)}
}

// Items returns the playlist's entries, cached on the playlist.
func (p *Playlist) Items(ctx context.Context) ([]Object, error) {
	if items, ok := p.extras.get("items"); ok {
		return items, nil
	}
	return p.ItemsForce(ctx)
}

// ItemsForce re-fetches the playlist's entries, replacing the cached list.
func (p *Playlist) ItemsForce(ctx context.Context) ([]Object, error) {
	payload, err := p.conn.GetJSON(ctx, "/Playlists/"+p.ID()+"/Items", nil)
	if err != nil {
		return nil, err
	}
	items, err := p.Process(ctx, payload)
	if err != nil {
		return nil, err
	}
	p.extras.put("items", items)
	return items, nil
}

// Add appends items (ids, records or entities) to the playlist.
func (p *Playlist) Add(ctx context.Context, items ...any) error {
	resolved, err := p.Process(ctx, items)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(resolved))
	for _, obj := range resolved {
		if id := obj.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	params := url.Values{}
	params.Set("Ids", strings.Join(ids, ","))
	return p.conn.Post(ctx, "/Playlists/"+p.ID()+"/Items", nil, params)
}

// Remove deletes entries from the playlist by their entry ids.
func (p *Playlist) Remove(ctx context.Context, entryIDs ...string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	params := url.Values{}
	params.Set("EntryIds", strings.Join(entryIDs, ","))
	return p.conn.Post(ctx, "/Playlists/"+p.ID()+"/Items/Delete", nil, params)
}

// Series is a TV series; seasons and episodes are lazily computed,
// entity-scoped collections.
type Series struct{ Entity }

func newSeries(raw map[string]any, conn Connector) *Series {
	return &Series{Entity: *newEntity(raw, conn)}
}

func (s *Series) PremiereDate() time.Time { return s.timeField("PremiereDate") }

// Seasons returns the series' seasons, cached on the series.
func (s *Series) Seasons(ctx context.Context) ([]Object, error) {
	return s.childItems(ctx, "seasons", "Season", "Path,ParentId,Overview")
}

// SeasonsForce re-fetches the series' seasons.
func (s *Series) SeasonsForce(ctx context.Context) ([]Object, error) {
	return s.childItemsForce(ctx, "seasons", "Season", "Path,ParentId,Overview")
}

// Episodes returns every episode of the series, cached on the series.
func (s *Series) Episodes(ctx context.Context) ([]Object, error) {
	return s.childItems(ctx, "episodes", "Episode", "Path,ParentId,Overview,Genres,Tags")
}

// EpisodesForce re-fetches the series' episodes.
func (s *Series) EpisodesForce(ctx context.Context) ([]Object, error) {
	return s.childItemsForce(ctx, "episodes", "Episode", "Path,ParentId,Overview,Genres,Tags")
}

// Season is one season of a series.
type Season struct{ Entity }

func newSeason(raw map[string]any, conn Connector) *Season {
	return &Season{Entity: *newEntity(raw, conn)}
}

// IndexNumber returns the season number; 0 means specials.
func (se *Season) IndexNumber() int { return se.intField("IndexNumber", 0) }

func (se *Season) SeriesID() string   { return se.stringField("SeriesId") }
func (se *Season) SeriesName() string { return se.stringField("SeriesName") }

// Series resolves the parent series.
func (se *Season) Series(ctx context.Context) (Object, error) {
	return se.ProcessOne(ctx, se.SeriesID())
}

// Episodes returns the season's episodes, cached on the season.
func (se *Season) Episodes(ctx context.Context) ([]Object, error) {
	return se.childItems(ctx, "episodes", "Episode", "Path,ParentId,Overview,Genres,Tags")
}

// EpisodesForce re-fetches the season's episodes.
func (se *Season) EpisodesForce(ctx context.Context) ([]Object, error) {
	return se.childItemsForce(ctx, "episodes", "Episode", "Path,ParentId,Overview,Genres,Tags")
}

// BoxSet is a curated collection of items.
type BoxSet struct{ Entity }

func newBoxSet(raw map[string]any, conn Connector) *BoxSet {
	return &BoxSet{Entity: *newEntity(raw, conn)}
}

// Items returns the box set's contents, cached on the box set.
func (b *BoxSet) Items(ctx context.Context) ([]Object, error) {
	return b.childItems(ctx, "items", "", "Path,ParentId,Overview")
}

// ItemsForce re-fetches the box set's contents.
func (b *BoxSet) ItemsForce(ctx context.Context) ([]Object, error) {
	return b.childItemsForce(ctx, "items", "", "Path,ParentId,Overview")
}
