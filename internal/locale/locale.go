// Package locale classifies web request paths by locale prefix and protection level, and
// negotiates a locale for paths that arrive without one.
package locale

import (
	"golang.org/x/text/language"
)

// Default is the locale used when nothing better can be negotiated.
const Default = "en"

// Supported lists every locale the web client ships translations for. Default must stay
// first because the language matcher falls back to the first entry.
var Supported = []string{
	"en", "ko", "ja", "zh", "es",
	"fr", "de", "it", "pt", "ru",
	"ar", "hi", "th", "vi", "id",
	"ms", "tr", "nl", "pl", "sv",
}

var supportedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Supported))
	for _, code := range Supported {
		m[code] = struct{}{}
	}
	return m
}()

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(Supported))
	for i, code := range Supported {
		tags[i] = language.MustParse(code)
	}
	return language.NewMatcher(tags)
}()

// IsSupported reports whether code is one of the supported locale codes.
func IsSupported(code string) bool {
	_, ok := supportedSet[code]
	return ok
}

// Negotiate picks a locale for a request without a locale prefix. An explicit cookie choice
// wins, then the Accept-Language header, then Default.
func Negotiate(cookie, acceptLanguage string) string {
	return NegotiateOr(cookie, acceptLanguage, Default)
}

// NegotiateOr is Negotiate with a caller-chosen fallback. An unsupported fallback is replaced
// by Default.
func NegotiateOr(cookie, acceptLanguage, fallback string) string {
	if !IsSupported(fallback) {
		fallback = Default
	}
	if IsSupported(cookie) {
		return cookie
	}
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	// The matcher answers unsupported languages with its first tag at Low confidence.
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || (idx == 0 && conf < language.High) {
		return fallback
	}
	return Supported[idx]
}
