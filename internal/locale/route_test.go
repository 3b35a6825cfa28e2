package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedHasTwentyLocalesWithDefaultFirst(t *testing.T) {
	assert.Len(t, Supported, 20)
	assert.Equal(t, Default, Supported[0])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Route
	}{
		{"localized protected", "/en/settings", Route{Locale: "en", Path: "/settings", HasLocalePrefix: true, IsProtected: true}},
		{"localized nested protected", "/ko/recipes/create/draft", Route{Locale: "ko", Path: "/recipes/create/draft", HasLocalePrefix: true, IsProtected: true}},
		{"localized public", "/ja/recipes/123", Route{Locale: "ja", Path: "/recipes/123", HasLocalePrefix: true}},
		{"locale root", "/fr", Route{Locale: "fr", Path: "/", HasLocalePrefix: true}},
		{"locale root trailing slash", "/fr/", Route{Locale: "fr", Path: "/", HasLocalePrefix: true}},
		{"no locale protected", "/profile", Route{Path: "/profile", IsProtected: true}},
		{"no locale public", "/search", Route{Path: "/search"}},
		{"segment boundary", "/en/profiles", Route{Locale: "en", Path: "/profiles", HasLocalePrefix: true}},
		{"unsupported locale is a path", "/xx/settings", Route{Path: "/xx/settings"}},
		{"upper case locale is a path", "/EN/settings", Route{Path: "/EN/settings"}},
		{"empty", "", Route{Path: "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestIsExcluded(t *testing.T) {
	excluded := []string{"/api/v1/feed", "/_next/static/chunk.js", "/favicon.ico", "/images/variants/LARGE_1200/a.jpg", "/robots.txt", "/health"}
	for _, p := range excluded {
		assert.True(t, IsExcluded(p), p)
	}

	included := []string{"/", "/en", "/en/settings", "/apiary", "/en/recipes/abc"}
	for _, p := range included {
		assert.False(t, IsExcluded(p), p)
	}
}

func TestLoginPath(t *testing.T) {
	assert.Equal(t, "/en/login?redirect=%2Fen%2Fsettings", LoginPath("en", "/en/settings"))
	assert.Equal(t, "/ko/login?redirect=%2Fko%2Fprofile%2Fedit", LoginPath("ko", "/ko/profile/edit"))
}

func TestWithLocale(t *testing.T) {
	assert.Equal(t, "/de", WithLocale("de", "/"))
	assert.Equal(t, "/de/search", WithLocale("de", "/search"))
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, "ko", Negotiate("ko", "ja"))
	assert.Equal(t, "ja", Negotiate("", "ja-JP,ja;q=0.9,en;q=0.8"))
	assert.Equal(t, "fr", Negotiate("bogus", "fr-CA"))
	assert.Equal(t, Default, Negotiate("", ""))
	assert.Equal(t, Default, Negotiate("", "tlh"))
}

func TestNegotiateOr(t *testing.T) {
	assert.Equal(t, "ko", NegotiateOr("", "", "ko"))
	assert.Equal(t, "ko", NegotiateOr("", "tlh", "ko"))
	assert.Equal(t, "ko", NegotiateOr("", "sw-KE,sw;q=0.9", "ko"))
	assert.Equal(t, "ko", NegotiateOr("", "he-IL", "ko"))
	assert.Equal(t, "en", NegotiateOr("", "en-US", "ko"))
	assert.Equal(t, "ja", NegotiateOr("", "sw,ja;q=0.8", "ko"))
	assert.Equal(t, "de", NegotiateOr("", "de-AT", "ko"))
	assert.Equal(t, Default, NegotiateOr("", "", "xx"))
}
