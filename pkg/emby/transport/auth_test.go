package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/mmcdole/embygo/pkg/emby/transport"
)

func TestAuthenticateByName(t *testing.T) {
	is := is.New(t)

	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/Users/AuthenticateByName")
		is.Equal(r.Method, http.MethodPost)
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{
			"User": {"Id": "u42", "Name": "alex"},
			"AccessToken": "token-123"
		}`)
	}))
	defer srv.Close()

	result, err := transport.AuthenticateByName(context.Background(), srv.URL+"/", "alex", "hunter2", nil)
	is.NoErr(err)
	is.Equal(gotBody["Username"], "alex")
	is.Equal(gotBody["Pw"], "hunter2")
	is.Equal(result.Token, "token-123")
	is.Equal(result.UserID, "u42")
	is.Equal(result.Username, "alex")
}

func TestAuthenticateByNameRejected(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := transport.AuthenticateByName(context.Background(), srv.URL, "alex", "wrong", nil)
	is.True(errors.Is(err, transport.ErrUnauthorized))
}
