package fsops

import (
	"fmt"
	"os"
)

// ReadFile returns the UTF-8 text content of the file at path.
// Directory paths are rejected before the read is attempted.
func ReadFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("read %s: path is a directory", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
