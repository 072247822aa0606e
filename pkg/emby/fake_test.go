package emby_test

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/mmcdole/embygo/pkg/emby"
)

// fakeConnector is an in-memory emby.Connector for exercising the object
// model without a server.
type fakeConnector struct {
	mu sync.Mutex

	// items maps id -> record for GetItem.
	items map[string]map[string]any
	// itemDelay slows down individual GetItem calls.
	itemDelay map[string]time.Duration
	// missing ids answer with a decode failure, like a real server
	// returning an HTML error page.
	missing map[string]bool

	// responses maps request path -> GetJSON payload.
	responses map[string]any
	// failPaths makes GetJSON fail for specific paths.
	failPaths map[string]bool

	sysInfo map[string]any

	getItemCalls []string
	getJSONCalls []jsonCall
	posts        []postCall
}

type jsonCall struct {
	path   string
	params url.Values
}

type postCall struct {
	path   string
	data   map[string]any
	params url.Values
}

func newFakeConnector() *fakeConnector {
	return &fakeConnector{
		items:     make(map[string]map[string]any),
		itemDelay: make(map[string]time.Duration),
		missing:   make(map[string]bool),
		responses: make(map[string]any),
		failPaths: make(map[string]bool),
	}
}

func (f *fakeConnector) GetJSON(ctx context.Context, path string, params url.Values) (any, error) {
	f.mu.Lock()
	f.getJSONCalls = append(f.getJSONCalls, jsonCall{path: path, params: cloneValues(params)})
	fail := f.failPaths[path]
	payload, ok := f.responses[path]
	f.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("%s: boom", path)
	}
	if !ok {
		return nil, fmt.Errorf("%s: no stubbed response", path)
	}
	return payload, nil
}

func (f *fakeConnector) GetItem(ctx context.Context, id string) (map[string]any, error) {
	f.mu.Lock()
	f.getItemCalls = append(f.getItemCalls, id)
	delay := f.itemDelay[id]
	record, ok := f.items[id]
	miss := f.missing[id]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if miss {
		return nil, fmt.Errorf("item %s: %w", id, emby.ErrDecode)
	}
	if !ok {
		return nil, fmt.Errorf("item %s: no stubbed record", id)
	}
	return record, nil
}

func (f *fakeConnector) Post(ctx context.Context, path string, data map[string]any, params url.Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, postCall{path: path, data: data, params: cloneValues(params)})
	return nil
}

func (f *fakeConnector) SystemInfo(ctx context.Context) (map[string]any, error) {
	if f.sysInfo == nil {
		return nil, fmt.Errorf("system info: no stubbed record")
	}
	return f.sysInfo, nil
}

func (f *fakeConnector) URL(path string) string {
	return "http://fake" + path + "?api_key=k"
}

func (f *fakeConnector) UserID() string { return "u42" }

func (f *fakeConnector) jsonCallCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.getJSONCalls {
		if call.path == path {
			n++
		}
	}
	return n
}

func (f *fakeConnector) lastJSONCall() jsonCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getJSONCalls[len(f.getJSONCalls)-1]
}

func cloneValues(params url.Values) url.Values {
	out := url.Values{}
	for key, vals := range params {
		out[key] = append([]string(nil), vals...)
	}
	return out
}

// record builds a minimal server record.
func record(id, typ, name string) map[string]any {
	return map[string]any{"Id": id, "Type": typ, "Name": name}
}

// itemsEnvelope wraps records the way collection responses arrive.
func itemsEnvelope(records ...map[string]any) map[string]any {
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = r
	}
	return map[string]any{"Items": items, "TotalRecordCount": float64(len(records))}
}

func hintsEnvelope(records ...map[string]any) map[string]any {
	hints := make([]any, len(records))
	for i, r := range records {
		hints[i] = r
	}
	return map[string]any{"SearchHints": hints}
}

func names(objs []emby.Object) []string {
	out := make([]string, len(objs))
	for i, obj := range objs {
		out[i] = obj.Name()
	}
	return out
}
