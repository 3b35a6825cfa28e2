package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/locale"
	"github.com/cookstemma/edge/internal/observability"
)

// LocaleCookie holds the locale a visitor picked explicitly.
const LocaleCookie = "NEXT_LOCALE"

// ContextLocale is the gin context key holding the request's locale.
const ContextLocale = "locale"

// LocaleGate prefixes page paths with a locale and keeps signed-out visitors away from
// protected pages.
//
// A page path without a locale prefix is redirected to the negotiated locale. A protected path
// requested without an access_token cookie is redirected to that locale's login page with the
// original path in the redirect parameter. The cookie's contents are not checked here.
// Excluded paths (API, static assets, image variants) pass through untouched.
func LocaleGate(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if locale.IsExcluded(p) {
			c.Next()
			return
		}

		route := locale.Classify(p)
		if !route.HasLocalePrefix {
			cookie, _ := c.Cookie(LocaleCookie)
			loc := locale.NegotiateOr(cookie, c.GetHeader("Accept-Language"), defaultLocale)
			target := locale.WithLocale(loc, route.Path)
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			observability.AuthGateRedirects.WithLabelValues("locale").Inc()
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		}

		if route.IsProtected {
			if token, err := c.Cookie(AccessTokenCookie); err != nil || token == "" {
				observability.AuthGateRedirects.WithLabelValues("auth").Inc()
				c.Redirect(http.StatusTemporaryRedirect, locale.LoginPath(route.Locale, p))
				c.Abort()
				return
			}
		}

		c.Set(ContextLocale, route.Locale)
		c.Next()
	}
}
