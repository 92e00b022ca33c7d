package archive

import (
	"encoding/json"
	"fmt"
	"os"
)

// Post is one untyped post record from an archive file. Archives mix schema
// generations freely, so only specific keys are inspected and everything
// else is carried opaquely.
type Post map[string]any

// ReadPosts parses one archive file and normalizes its top-level shape into
// a sequence of post records. A file that fails to parse returns
// ErrMalformedJSON so callers can skip it and keep going.
func ReadPosts(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return NormalizePosts(parsed), nil
}

// NormalizePosts flattens the known top-level archive shapes into a post
// sequence:
//
//   - a JSON array is used as-is
//   - an object with an "orderedItems" array (ActivityPub outbox) uses that
//   - an object with an "items" array uses that
//   - an object with neither key is treated as a single post
//
// An object carrying orderedItems or items of the wrong type is a broken
// collection wrapper, not a post, and yields an empty sequence. Elements
// that are not objects are dropped; scalar or null documents yield an empty
// sequence.
func NormalizePosts(v any) []Post {
	var raw []any
	switch val := v.(type) {
	case []any:
		raw = val
	case map[string]any:
		items, found := val["orderedItems"]
		if !found {
			items, found = val["items"]
		}
		if !found {
			return []Post{val}
		}
		list, ok := items.([]any)
		if !ok {
			return nil
		}
		raw = list
	default:
		return nil
	}

	posts := make([]Post, 0, len(raw))
	for _, item := range raw {
		if post, ok := item.(map[string]any); ok {
			posts = append(posts, post)
		}
	}
	return posts
}
