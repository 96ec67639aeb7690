// Package fs provides file-based input and output for pagecheck.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
)

// ReadPage returns the contents of the HTML file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is a
// directory or not valid UTF-8.
func ReadPage(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", pagecheck.Errorf(pagecheck.ENOTFOUND, "input file %q not found", path)
		}
		return "", fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", pagecheck.Errorf(pagecheck.EINVALID, "input path %q is a directory", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}
	if !utf8.Valid(data) {
		return "", pagecheck.Errorf(pagecheck.EINVALID, "input file %q is not valid UTF-8", path)
	}

	return string(data), nil
}
