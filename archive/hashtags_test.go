package archive

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name string
		post string
		want []string
	}{
		{
			name: "bare strings are lowercased and hash-stripped",
			post: `{"tags": ["#Foo", "bar"]}`,
			want: []string{"foo", "bar"},
		},
		{
			name: "tag objects contribute their name lowercased",
			post: `{"tags": [{"name": "GoLang"}, {"name": "OpenSource"}]}`,
			want: []string{"golang", "opensource"},
		},
		{
			name: "tag objects without a name are skipped",
			post: `{"tags": [{"href": "https://example.social/tags/x"}, "kept"]}`,
			want: []string{"kept"},
		},
		{
			name: "object.tag hashtag entries",
			post: `{"object": {"tag": [{"type": "Hashtag", "name": "#X"}]}}`,
			want: []string{"x"},
		},
		{
			name: "object.tag entries of other types are ignored",
			post: `{"object": {"tag": [{"type": "Mention", "name": "@someone"}, {"type": "Hashtag", "name": "#Kept"}]}}`,
			want: []string{"kept"},
		},
		{
			name: "object.tag entries with empty names are discarded",
			post: `{"object": {"tag": [{"type": "Hashtag", "name": "#"}, {"type": "Hashtag"}]}}`,
			want: nil,
		},
		{
			name: "both sources concatenate in order, duplicates preserved",
			post: `{"tags": ["#dup", "first"], "object": {"tag": [{"type": "Hashtag", "name": "#dup"}]}}`,
			want: []string{"dup", "first", "dup"},
		},
		{
			name: "tags field that is not an array is ignored",
			post: `{"tags": "not-a-list"}`,
			want: nil,
		},
		{
			name: "object that is not an object is ignored",
			post: `{"object": "https://example.social/note/1"}`,
			want: nil,
		},
		{
			name: "post without either source",
			post: `{"id": 1, "content": "no tags here"}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var post Post
			if err := json.Unmarshal([]byte(tt.post), &post); err != nil {
				t.Fatalf("bad test post: %v", err)
			}
			got := ExtractHashtags(post)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractHashtags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractHashtags_StripsOnlyOneLeadingHash(t *testing.T) {
	post := Post{"tags": []any{"##double"}}
	got := ExtractHashtags(post)
	if !reflect.DeepEqual(got, []string{"#double"}) {
		t.Errorf("ExtractHashtags() = %v, want [#double]", got)
	}
}
