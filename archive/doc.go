// Package archive locates and parses the JSON files of a social-media data
// export.
//
// An export ("archive") is either a single JSON file or a directory tree
// containing one. Mastodon archives keep the authored posts in outbox.json;
// other exports use posts.json or variations on the outbox name, so the
// locator prefers those filenames and falls back to every .json file it can
// find.
//
// Post records are untyped: archives from different server versions disagree
// on structure, so files are decoded into generic JSON values and the known
// shapes are inspected opportunistically. Two hashtag layouts are recognized:
//
//   - a flat "tags" array (objects with a "name" field, or bare strings)
//   - the ActivityPub "object.tag" array of typed entries where
//     type == "Hashtag"
//
// Extracted hashtag tokens are normalized to lowercase with a leading '#'
// stripped, so counting downstream is case-insensitive by construction.
package archive
