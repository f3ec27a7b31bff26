// Package fileutil locates fortune files beneath a set of input paths.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// excludedExtension marks pre-indexed companion files that carry no
// fortune text. Compared case-sensitively and without the leading dot.
const excludedExtension = "dat"

// FindFiles resolves every input path to the fortune files reachable
// from it. A path naming a regular file contributes that file alone; a
// directory contributes every regular file in its subtree. The result
// is sorted ascending by path and contains no duplicates, so passing
// the same directory twice yields each file once.
//
// A top-level path that cannot be stat'ed fails the whole discovery.
// Entries that cannot be inspected mid-walk are skipped instead.
func FindFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", path, err)
		}

		if !info.IsDir() {
			if !isExcluded(path) {
				files = append(files, path)
			}
			continue
		}

		// The walk callback swallows per-entry errors, so WalkDir
		// itself cannot fail here.
		_ = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if isExcluded(p) {
				return nil
			}
			files = append(files, p)
			return nil
		})
	}

	// Duplicates are only adjacent once sorted, so sort must come first.
	sort.Strings(files)
	return dedup(files), nil
}

// isExcluded reports whether the file's extension is exactly the
// excluded companion-index extension.
func isExcluded(path string) bool {
	return strings.TrimPrefix(filepath.Ext(path), ".") == excludedExtension
}

// dedup removes consecutive duplicate entries from a sorted slice.
func dedup(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
