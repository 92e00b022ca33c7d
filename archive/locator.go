package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFiles resolves an archive path into the ordered list of JSON files an
// analysis should process. A regular file is returned as-is; a directory is
// walked recursively for .json files, which are then narrowed by
// SelectCandidates. A missing path returns ErrPathNotFound.
func FindFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	all, err := ListJSONFiles(path)
	if err != nil {
		return nil, err
	}
	return SelectCandidates(all), nil
}

// ListJSONFiles walks root and collects every file with a .json extension,
// in traversal order.
func ListJSONFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// SelectCandidates narrows a JSON file listing to the files worth parsing:
// exact outbox.json or posts.json names, plus anything whose filename
// contains "outbox" (case-insensitive). When nothing matches, the full
// listing is returned unchanged so exports without the standard filenames
// are still processed.
func SelectCandidates(paths []string) []string {
	var filtered []string
	for _, p := range paths {
		name := filepath.Base(p)
		if name == "outbox.json" || name == "posts.json" ||
			strings.Contains(strings.ToLower(name), "outbox") {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return paths
	}
	return filtered
}
