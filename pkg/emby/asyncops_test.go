package emby_test

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/mmcdole/embygo/pkg/emby"
)

func TestAsyncTwinsMatchBlockingForms(t *testing.T) {
	is := is.New(t)
	conn := newFakeConnector()
	conn.items["m1"] = record("m1", "Movie", "Alien")
	conn.responses["/Search/Hints"] = hintsEnvelope(record("m2", "Movie", "Aliens"))
	conn.responses["/Users/{UserId}/Items"] = itemsEnvelope(record("m1", "Movie", "Alien"))
	conn.sysInfo = map[string]any{"ServerName": "den"}
	server := emby.New(conn)
	ctx := context.Background()

	info, err := server.InfoAsync(ctx, "m1").Await(ctx)
	is.NoErr(err)
	is.Equal(names(info), []string{"Alien"})

	hits, err := server.SearchAsync(ctx, "alien", nil).Await(ctx)
	is.NoErr(err)
	is.Equal(names(hits), []string{"Aliens"})

	movies, err := server.CollectionAsync(ctx, "movies").Await(ctx)
	is.NoErr(err)
	is.Equal(names(movies), []string{"Alien"})

	status, err := server.SystemInfoAsync(ctx).Await(ctx)
	is.NoErr(err)
	is.Equal(status["ServerName"], "den")

	_, err = server.RefreshAsync(ctx).Await(ctx)
	is.NoErr(err)
}

func TestCreatePlaylistAsync(t *testing.T) {
	is := is.New(t)
	conn := newFakeConnector()
	server := emby.New(conn)
	ctx := context.Background()

	_, err := server.CreatePlaylistAsync(ctx, "mix", record("t1", "Audio", "Track")).Await(ctx)
	is.NoErr(err)
	is.Equal(conn.posts[0].data["Ids"], "t1")
}
