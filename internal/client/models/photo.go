package models

import (
	"path/filepath"
	"strings"
)

// PhotoLabel reduces a photo path to the label kept in the store. Only the
// base file name is recorded; the file itself is never read.
func PhotoLabel(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return NoPhotoLabel
	}
	return filepath.Base(path)
}
