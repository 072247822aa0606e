package emby

import (
	"context"
	"fmt"
	"time"
)

// Video is the generic video-like entity. Concrete video types (Movie,
// Episode, Trailer, MusicVideo) embed it.
type Video struct{ Entity }

func newVideo(raw map[string]any, conn Connector) *Video {
	return &Video{Entity: *newEntity(raw, conn)}
}

// AspectRatio returns the display aspect ratio as reported by the server
// (e.g. "16:9").
func (v *Video) AspectRatio() string { return v.stringField("AspectRatio") }

// Chapters returns the chapter markers embedded in the media file, as raw
// records.
func (v *Video) Chapters() []map[string]any { return v.mapSliceField("Chapters") }

// StreamURL returns the direct mp4 stream link for this video.
func (v *Video) StreamURL() string {
	return v.conn.URL(fmt.Sprintf("/Videos/%s/stream.mp4", v.ID()))
}

// Movie is a feature film record.
type Movie struct{ Video }

func newMovie(raw map[string]any, conn Connector) *Movie {
	return &Movie{Video: *newVideo(raw, conn)}
}

// PremiereDate returns the movie's premiere date, or the zero time when
// the server did not include one.
func (m *Movie) PremiereDate() time.Time { return m.timeField("PremiereDate") }

// Episode is a single episode of a series. Its parent season and series
// are relation references, resolved on demand.
type Episode struct{ Video }

func newEpisode(raw map[string]any, conn Connector) *Episode {
	return &Episode{Video: *newVideo(raw, conn)}
}

func (ep *Episode) PremiereDate() time.Time { return ep.timeField("PremiereDate") }

// IndexNumber returns the episode number within its season.
func (ep *Episode) IndexNumber() int { return ep.intField("IndexNumber", 1) }

func (ep *Episode) SeasonID() string   { return ep.stringField("SeasonId") }
func (ep *Episode) SeriesID() string   { return ep.stringField("SeriesId") }
func (ep *Episode) SeriesName() string { return ep.stringField("SeriesName") }

// Genres returns the parent series' genres; episode records carry them
// under SeriesGenres.
func (ep *Episode) Genres() []string { return ep.stringSliceField("SeriesGenres") }

// Season resolves the parent season. Every call fetches a live entity;
// relation references are never served from a cache.
func (ep *Episode) Season(ctx context.Context) (Object, error) {
	return ep.ProcessOne(ctx, ep.SeasonID())
}

// Series resolves the parent series.
func (ep *Episode) Series(ctx context.Context) (Object, error) {
	return ep.ProcessOne(ctx, ep.SeriesID())
}

// Trailer is a trailer video record.
type Trailer struct{ Video }

func newTrailer(raw map[string]any, conn Connector) *Trailer {
	return &Trailer{Video: *newVideo(raw, conn)}
}

// MusicVideo is a music video record.
type MusicVideo struct{ Video }

func newMusicVideo(raw map[string]any, conn Connector) *MusicVideo {
	return &MusicVideo{Video: *newVideo(raw, conn)}
}
