package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/webp"
)

const contextWebPSelection = "webp_selection"

// WebPSelector rewrites JPEG variant requests to their WebP sibling for clients that accept
// WebP. The request path is rewritten in place and the selection is stored for the handler.
func WebPSelector() gin.HandlerFunc {
	return func(c *gin.Context) {
		sel := webp.SelectURI(c.Request.URL.Path, c.GetHeader("Accept"))
		c.Header("Vary", "Accept")
		if sel.Rewritten {
			c.Request.URL.Path = sel.URI
			c.Header(webp.DebugHeader, "true")
			observability.WebPRewrites.Inc()
		}
		c.Set(contextWebPSelection, sel)
		c.Next()
	}
}

// WebPSelection returns the selection made by WebPSelector, or an identity selection for the
// current path when the middleware did not run.
func WebPSelection(c *gin.Context) webp.Selection {
	if v, ok := c.Get(contextWebPSelection); ok {
		if sel, ok := v.(webp.Selection); ok {
			return sel
		}
	}
	return webp.Selection{URI: c.Request.URL.Path, SourceURI: c.Request.URL.Path}
}
