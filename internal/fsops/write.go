package fsops

import (
	"os"
	"path/filepath"
)

// WriteFile writes content to path as UTF-8, creating missing parent
// directories. An existing file at path is overwritten.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
