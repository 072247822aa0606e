package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	"github.com/mmcdole/embygo/pkg/emby"
	"github.com/mmcdole/embygo/pkg/emby/transport"
)

func newTestClient(serverURL string) *transport.Client {
	return transport.NewClient(transport.Config{
		URL:    serverURL,
		APIKey: "secret",
		UserID: "u42",
	})
}

func TestGetJSONSendsAuthHeader(t *testing.T) {
	is := is.New(t)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Emby-Authorization")
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	payload, err := client.GetJSON(context.Background(), "/System/Ping", nil)
	is.NoErr(err)
	is.Equal(payload, map[string]any{"ok": true})

	is.True(strings.HasPrefix(gotAuth, "MediaBrowser Client="))
	is.True(strings.Contains(gotAuth, `Token="secret"`))
	is.True(strings.Contains(gotAuth, `DeviceId="embygo-client"`))
}

func TestUserIDPathTemplating(t *testing.T) {
	is := is.New(t)

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(context.Background(), "/Users/{UserId}/Items", nil)
	is.NoErr(err)
	is.Equal(gotPath, "/Users/u42/Items")
}

func TestGetItemPath(t *testing.T) {
	is := is.New(t)

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"Id":"m1","Type":"Movie","Name":"Alien"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	record, err := client.GetItem(context.Background(), "m1")
	is.NoErr(err)
	is.Equal(gotPath, "/Users/u42/Items/m1")
	is.Equal(record["Name"], "Alien")
}

func TestInvalidJSONIsDecodeError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(context.Background(), "/whatever", nil)
	is.True(errors.Is(err, emby.ErrDecode))

	_, err = client.GetItem(context.Background(), "m1")
	is.True(errors.Is(err, emby.ErrDecode))
}

func TestGetItemNonObjectIsDecodeError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[1,2,3]`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetItem(context.Background(), "m1")
	is.True(errors.Is(err, emby.ErrDecode))
}

func TestRetriesServerErrors(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	payload, err := client.GetJSON(context.Background(), "/flaky", nil)
	is.NoErr(err)
	is.Equal(payload, map[string]any{"ok": true})
	is.Equal(calls.Load(), int32(3))
}

func TestRetriesGiveUpEventually(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(context.Background(), "/down", nil)
	is.True(err != nil)
	is.Equal(calls.Load(), int32(4)) // the first attempt plus three retries
}

func TestUnauthorizedIsNotRetried(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(context.Background(), "/private", nil)
	is.True(errors.Is(err, transport.ErrUnauthorized))
	is.Equal(calls.Load(), int32(1))
}

func TestUnreachableServer(t *testing.T) {
	is := is.New(t)

	client := newTestClient("http://127.0.0.1:1")
	_, err := client.GetJSON(context.Background(), "/anything", nil)
	is.True(errors.Is(err, transport.ErrServerUnreachable))
}

func TestPostSendsBodyAndUserID(t *testing.T) {
	is := is.New(t)

	var (
		gotBody   map[string]any
		gotUserID string
		gotCT     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.URL.Query().Get("UserId")
		gotCT = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.Post(context.Background(), "/Playlists",
		map[string]any{"Name": "mix", "Ids": "a,b"}, nil)
	is.NoErr(err)
	is.Equal(gotUserID, "u42") // the authenticated user rides along
	is.Equal(gotCT, "application/json")
	is.Equal(gotBody["Name"], "mix")
	is.Equal(gotBody["Ids"], "a,b")
}

func TestSystemInfo(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/System/Info")
		io.WriteString(w, `{"ServerName":"den","Version":"4.8.0.0"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	info, err := client.SystemInfo(context.Background())
	is.NoErr(err)
	is.Equal(info["ServerName"], "den")
}

func TestURLAttachesAPIKey(t *testing.T) {
	is := is.New(t)
	client := transport.NewClient(transport.Config{URL: "http://host:8096/", APIKey: "k", UserID: "u1"})

	is.Equal(client.URL("/Videos/v1/stream.mp4"), "http://host:8096/Videos/v1/stream.mp4?api_key=k")
	is.Equal(client.URL("/Audio/a1/universal?maxBitrate=1"),
		"http://host:8096/Audio/a1/universal?maxBitrate=1&api_key=k")
	is.Equal(client.URL("/Users/{UserId}/Images"), "http://host:8096/Users/u1/Images?api_key=k")
}

func TestCancelledContext(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(srv.URL)
	_, err := client.GetJSON(ctx, "/anything", nil)
	is.True(errors.Is(err, context.Canceled))
}
