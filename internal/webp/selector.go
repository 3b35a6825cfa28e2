// Package webp negotiates WebP image variants for clients that accept them and serves the
// variants from object storage.
package webp

import (
	"strings"
)

// DebugHeader marks responses whose URI was rewritten to the WebP variant.
const DebugHeader = "X-Webp-Rewrite"

const variantsSegment = "/variants/"

// Selection is the outcome of SelectURI.
type Selection struct {
	URI       string
	SourceURI string
	Rewritten bool
}

// SelectURI rewrites a JPEG variant URI to its WebP sibling when accept allows WebP. URIs
// outside /variants/ or without a .jpg/.jpeg extension are returned untouched.
func SelectURI(uri, accept string) Selection {
	sel := Selection{URI: uri, SourceURI: uri}
	if !strings.Contains(uri, variantsSegment) {
		return sel
	}
	if !strings.Contains(accept, "image/webp") {
		return sel
	}

	lower := strings.ToLower(uri)
	var ext string
	switch {
	case strings.HasSuffix(lower, ".jpg"):
		ext = ".jpg"
	case strings.HasSuffix(lower, ".jpeg"):
		ext = ".jpeg"
	default:
		return sel
	}

	sel.URI = uri[:len(uri)-len(ext)] + ".webp"
	sel.Rewritten = true
	return sel
}
