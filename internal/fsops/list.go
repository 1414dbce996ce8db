package fsops

import (
	"os"
	"path/filepath"
)

// ListDir returns the full paths of entries under dir.
//
// Non-recursive: every direct child, files and directories alike. Recursive:
// depth-first, with a subdirectory's contents spliced in place of the
// directory entry, so directory paths themselves never appear in recursive
// output. Order follows os.ReadDir's enumeration.
func ListDir(dir string, recursive bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if recursive && e.IsDir() {
			sub, err := ListDir(full, true)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
			continue
		}
		paths = append(paths, full)
	}
	return paths, nil
}
