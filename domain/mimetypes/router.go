package mimetypes

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Category is the storage subdirectory a content type routes to.
type Category string

const (
	Images    Category = "images"
	Documents Category = "documents"
	Audio     Category = "audio"
	Video     Category = "video"
	Other     Category = "other"
	// Temp is not a routing target; it only exists so the bootstrap list
	// covers the scratch directory too.
	Temp Category = "temp"
)

// Subdirectories lists every directory expected under the upload root.
func Subdirectories() []Category {
	return []Category{Images, Documents, Audio, Video, Other, Temp}
}

// RouteFor classifies a declared content type into a storage category.
// Total function: malformed or unknown types land in Other, never an error.
func RouteFor(contentType string) Category {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch {
	case strings.HasPrefix(mt, "image/"):
		return Images
	case strings.HasPrefix(mt, "video/"):
		return Video
	case strings.HasPrefix(mt, "audio/"):
		return Audio
	case mt == "application/pdf",
		strings.Contains(mt, "document"),
		strings.Contains(mt, "text"),
		strings.Contains(mt, "spreadsheet"):
		return Documents
	default:
		return Other
	}
}

// ExtensionFor derives a file extension (with leading dot) from a content
// type, for generated names when the original file name has none.
func ExtensionFor(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".bin"
	}
	exts, err := mime.ExtensionsByType(mt)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}
	// ExtensionsByType order is not stable across platforms; prefer the
	// shortest one so image/jpeg gives .jpe/.jpg rather than .jpeg vs env luck.
	best := exts[0]
	for _, e := range exts[1:] {
		if len(e) < len(best) {
			best = e
		}
	}
	return best
}

// DetectCategory sniffs the magic bytes of an assembled file and returns the
// detected type plus where it would have routed. Used purely to audit
// misrouted files: a declared image that sniffs as a PDF is logged, not moved.
func DetectCategory(path string) (string, Category, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", Other, err
	}
	return mt.String(), RouteFor(mt.String()), nil
}
