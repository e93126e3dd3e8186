package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the file extensions accepted by the upload endpoint.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// MaxUploadBytesDefault is the request body ceiling for uploads (16 MiB).
const MaxUploadBytesDefault int64 = 16 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedFile reports whether name has an extension from AllowedExtensions.
// A name without a dot never passes.
func IsAllowedFile(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(name))]
	return ok
}

// IsPDF reports whether path looks like a PDF by extension.
func IsPDF(path string) bool {
	return NormalizeExt(filepath.Ext(path)) == "pdf"
}
