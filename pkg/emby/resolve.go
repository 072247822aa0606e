package emby

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Process is the resolver: it turns identifiers, raw records and lists of
// either into hydrated typed entities. Accepted inputs:
//
//   - an already-resolved Object, returned unchanged
//   - a record map (construct directly, no network)
//   - a bare id string (fetched through the connector)
//   - an Items/SearchHints envelope, unwrapped first
//   - a slice of any mixture of the above
//
// Identifier fetches run concurrently, but the result slice always
// preserves input order. An id the server cannot decode a record for
// resolves to a LookupError carrying that id. Process never writes to any
// cache; caching is the caller's concern.
func (e *Entity) Process(ctx context.Context, input any) ([]Object, error) {
	refs := flatten(input)
	out := make([]Object, len(refs))
	errs := make([]error, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		switch v := ref.(type) {
		case Object:
			out[i] = v
		case map[string]any:
			out[i] = e.construct(v)
		case string:
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				out[i], errs[i] = e.fetch(ctx, id)
			}(i, v)
		default:
			errs[i] = fmt.Errorf("cannot resolve a %T", ref)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessOne resolves a single reference.
func (e *Entity) ProcessOne(ctx context.Context, ref any) (Object, error) {
	items, err := e.Process(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("reference resolved to no items")
	}
	return items[0], nil
}

// construct classifies a raw record by its Type tag and builds the
// matching variant. Purely local.
func (e *Entity) construct(raw map[string]any) Object {
	tag, _ := raw["Type"].(string)
	return classify(tag)(raw, e.conn)
}

// fetch resolves a bare identifier against the server. A decode failure
// from the transport means no record exists for the id.
func (e *Entity) fetch(ctx context.Context, id string) (Object, error) {
	raw, err := e.conn.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, &LookupError{ID: id}
		}
		return nil, err
	}
	// The record may itself be an envelope around a single item.
	if items, ok := envelope(raw); ok {
		if len(items) == 0 {
			return nil, &LookupError{ID: id}
		}
		if m, ok := items[0].(map[string]any); ok {
			return e.construct(m), nil
		}
	}
	return e.construct(raw), nil
}

// flatten normalizes resolver input into a flat reference list.
func flatten(input any) []any {
	switch v := input.(type) {
	case nil:
		return nil
	case map[string]any:
		if items, ok := envelope(v); ok {
			return flattenSlice(items)
		}
		return []any{v}
	case []any:
		return flattenSlice(v)
	case []string:
		refs := make([]any, len(v))
		for i, s := range v {
			refs[i] = s
		}
		return refs
	case []map[string]any:
		refs := make([]any, len(v))
		for i, m := range v {
			refs[i] = m
		}
		return refs
	case []Object:
		refs := make([]any, len(v))
		for i, o := range v {
			refs[i] = o
		}
		return refs
	default:
		return []any{v}
	}
}

func flattenSlice(items []any) []any {
	refs := make([]any, 0, len(items))
	for _, item := range items {
		refs = append(refs, flatten(item)...)
	}
	return refs
}

// envelope unwraps the list wrappers the server uses for collection and
// search responses.
func envelope(m map[string]any) ([]any, bool) {
	for _, key := range []string{"Items", "SearchHints"} {
		if items, ok := m[key].([]any); ok {
			return items, true
		}
	}
	return nil, false
}
