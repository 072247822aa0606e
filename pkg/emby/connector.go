package emby

import (
	"context"
	"net/url"
)

// Connector is the transport boundary the object model is built on. It
// owns connection handling, authentication headers, retries and URL
// construction; the core never touches HTTP directly.
//
// Implementations substitute the authenticated user for the literal
// "{UserId}" segment in request paths. The canonical implementation is
// transport.Client.
type Connector interface {
	// GetJSON issues a GET request and returns the decoded JSON value.
	// Fails with ErrDecode when the body is not valid JSON.
	GetJSON(ctx context.Context, path string, params url.Values) (any, error)

	// GetItem fetches the raw record for a single item id. Same decode
	// failure mode as GetJSON.
	GetItem(ctx context.Context, id string) (map[string]any, error)

	// Post sends data as a JSON body.
	Post(ctx context.Context, path string, data map[string]any, params url.Values) error

	// SystemInfo returns the raw server status record.
	SystemInfo(ctx context.Context) (map[string]any, error)

	// URL returns the absolute URL for path, suitable for handing to an
	// external player.
	URL(path string) string

	// UserID returns the authenticated user's id.
	UserID() string
}
