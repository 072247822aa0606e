package emby

import (
	"context"

	"github.com/mmcdole/embygo/pkg/emby/async"
)

// Async twins of the root aggregate's operations. Each starts the
// blocking form on its own goroutine and returns the future; see the
// async package.

func (e *Emby) SystemInfoAsync(ctx context.Context) *async.Future[map[string]any] {
	return async.Go(func() (map[string]any, error) { return e.SystemInfo(ctx) })
}

func (e *Emby) InfoAsync(ctx context.Context, ids ...string) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.Info(ctx, ids...) })
}

func (e *Emby) SearchAsync(ctx context.Context, query string, opts *SearchOptions) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.Search(ctx, query, opts) })
}

func (e *Emby) LatestAsync(ctx context.Context, opts *LatestOptions) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.Latest(ctx, opts) })
}

func (e *Emby) NextUpAsync(ctx context.Context, userID string) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.NextUp(ctx, userID) })
}

func (e *Emby) CreatePlaylistAsync(ctx context.Context, name string, items ...any) *async.Future[struct{}] {
	return async.Go(func() (struct{}, error) { return struct{}{}, e.CreatePlaylist(ctx, name, items...) })
}

func (e *Emby) CollectionAsync(ctx context.Context, key string) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.Collection(ctx, key) })
}

func (e *Emby) CollectionForceAsync(ctx context.Context, key string) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.CollectionForce(ctx, key) })
}

func (e *Emby) RefreshAsync(ctx context.Context) *async.Future[struct{}] {
	return async.Go(func() (struct{}, error) { return struct{}{}, e.Refresh(ctx) })
}

// ProcessAsync resolves references on a separate goroutine; the blocking
// Process already fetches list elements concurrently, so this only adds
// the calling-convention wrapper.
func (e *Entity) ProcessAsync(ctx context.Context, input any) *async.Future[[]Object] {
	return async.Go(func() ([]Object, error) { return e.Process(ctx, input) })
}
