package mimetypes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        Category
	}{
		// Images
		{"PNG", "image/png", Images},
		{"JPEG with charset", "image/jpeg; charset=binary", Images},
		{"WebP", "image/webp", Images},

		// Video / audio
		{"MP4", "video/mp4", Video},
		{"WebM", "video/webm", Video},
		{"MP3", "audio/mpeg", Audio},
		{"OGG audio", "audio/ogg", Audio},

		// Documents
		{"PDF", "application/pdf", Documents},
		{"Plain text", "text/plain; charset=utf-8", Documents},
		{"Word document", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Documents},
		{"Spreadsheet", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Documents},

		// Everything else
		{"ZIP", "application/zip", Other},
		{"Octet stream", "application/octet-stream", Other},
		{"Empty", "", Other},
		{"Garbage", "not a mime", Other},
		{"Uppercase image", "IMAGE/PNG", Images}, // ParseMediaType lowercases
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteFor(tt.contentType); got != tt.want {
				t.Errorf("RouteFor(%q) = %v; want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestExtensionFor(t *testing.T) {
	if got := ExtensionFor("application/pdf"); got != ".pdf" {
		t.Errorf("ExtensionFor(application/pdf) = %q; want .pdf", got)
	}
	if got := ExtensionFor("garbage"); got != ".bin" {
		t.Errorf("ExtensionFor(garbage) = %q; want .bin", got)
	}
	if got := ExtensionFor("image/png"); !strings.HasPrefix(got, ".") {
		t.Errorf("ExtensionFor(image/png) = %q; want a dotted extension", got)
	}
}

func TestDetectCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.png")

	// Minimal PNG signature is enough for magic-byte sniffing.
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
		t.Fatal(err)
	}

	detected, category, err := DetectCategory(path)
	if err != nil {
		t.Fatalf("DetectCategory failed: %v", err)
	}
	if category != Images {
		t.Errorf("DetectCategory routed %q to %v; want %v", detected, category, Images)
	}
}
