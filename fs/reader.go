// Package fs provides file-based access to landing pages.
package fs

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/pagescan"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadFile reads an HTML file and returns its content.
// The content must be valid UTF-8; any other encoding is rejected with
// EINVALID rather than silently replaced.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", pagescan.Errorf(pagescan.ENOTFOUND, "file %q not found", path)
		}
		return "", pagescan.Errorf(pagescan.EINTERNAL, "failed to open %q: %v", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", pagescan.Errorf(pagescan.EINVALID, "invalid UTF-8 in %q", path)
		}
		return "", pagescan.Errorf(pagescan.EINTERNAL, "failed to read %q: %v", path, err)
	}
	return string(b), nil
}
