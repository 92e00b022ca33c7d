package archive

import "strings"

// ExtractHashtags collects normalized hashtag tokens from a single post.
//
// Two independent shapes are recognized and their results concatenated, so a
// tag present in both shapes counts twice:
//
//   - the flat "tags" array used by newer exports: objects contribute their
//     "name" field lowercased, bare strings are lowercased with one leading
//     '#' stripped
//   - the ActivityPub "object.tag" array found in older archives: entries
//     whose "type" is "Hashtag" contribute their "name" lowercased and
//     '#'-stripped; empty names are discarded
//
// Tokens are returned in source order: the tags array first, then
// object.tag.
func ExtractHashtags(post Post) []string {
	var hashtags []string

	if list, ok := post["tags"].([]any); ok {
		for _, item := range list {
			switch tag := item.(type) {
			case map[string]any:
				if name, ok := tag["name"].(string); ok {
					hashtags = append(hashtags, strings.ToLower(name))
				}
			case string:
				hashtags = append(hashtags, strings.TrimPrefix(strings.ToLower(tag), "#"))
			}
		}
	}

	if obj, ok := post["object"].(map[string]any); ok {
		if list, ok := obj["tag"].([]any); ok {
			for _, item := range list {
				tag, ok := item.(map[string]any)
				if !ok || tag["type"] != "Hashtag" {
					continue
				}
				name, _ := tag["name"].(string)
				name = strings.TrimPrefix(strings.ToLower(name), "#")
				if name != "" {
					hashtags = append(hashtags, name)
				}
			}
		}
	}

	return hashtags
}
