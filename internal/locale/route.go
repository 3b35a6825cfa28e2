package locale

import (
	"net/url"
	"path"
	"strings"
)

// ProtectedPrefixes are the locale-less paths that require a signed-in user.
var ProtectedPrefixes = []string{
	"/profile",
	"/recipes/create",
	"/logs/create",
	"/settings",
	"/notifications",
	"/saved",
	"/onboarding",
}

// excludedPrefixes never pass through the locale gate.
var excludedPrefixes = []string{
	"/api",
	"/_next",
	"/_vercel",
	"/images",
	"/variants",
	"/metrics",
	"/health",
	"/open",
}

// Route is the classification of a single request path.
type Route struct {
	// Locale is the locale taken from the path prefix, empty when there is none.
	Locale string
	// Path is the request path with the locale prefix removed. Always starts with "/".
	Path            string
	HasLocalePrefix bool
	IsProtected     bool
}

// Classify strips an optional locale prefix from p and reports whether the remaining path is
// protected. It never inspects cookies or headers.
func Classify(p string) Route {
	if p == "" {
		p = "/"
	}
	route := Route{Path: p}

	rest := strings.TrimPrefix(p, "/")
	first, remainder, _ := strings.Cut(rest, "/")
	if IsSupported(first) {
		route.Locale = first
		route.HasLocalePrefix = true
		route.Path = "/" + remainder
	}

	route.IsProtected = isProtected(route.Path)
	return route
}

func isProtected(p string) bool {
	for _, prefix := range ProtectedPrefixes {
		if hasSegmentPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// hasSegmentPrefix matches whole path segments so "/profile" does not cover "/profiles".
func hasSegmentPrefix(p, prefix string) bool {
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}

// IsExcluded reports whether the gate should ignore p entirely: API and framework paths, and
// anything that looks like a static file.
func IsExcluded(p string) bool {
	for _, prefix := range excludedPrefixes {
		if hasSegmentPrefix(p, prefix) {
			return true
		}
	}
	return path.Ext(path.Base(p)) != ""
}

// WithLocale prefixes a locale-less path with locale.
func WithLocale(locale, p string) string {
	if p == "" || p == "/" {
		return "/" + locale
	}
	return "/" + locale + p
}

// LoginPath builds the locale-prefixed login URL that returns to redirect after sign-in.
func LoginPath(locale, redirect string) string {
	return WithLocale(locale, "/login") + "?redirect=" + url.QueryEscape(redirect)
}
