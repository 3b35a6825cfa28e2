package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/deeplink"
	"github.com/cookstemma/edge/internal/locale"
	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/types"
)

// DeepLinkHandler resolves cookstemma:// links to web pages
type DeepLinkHandler struct {
	defaultLocale string
}

func NewDeepLinkHandler(defaultLocale string) *DeepLinkHandler {
	return &DeepLinkHandler{defaultLocale: defaultLocale}
}

func (h *DeepLinkHandler) RegisterRoutes(v1 *gin.RouterGroup, root gin.IRoutes) {
	v1.GET("/deeplinks/resolve", h.Resolve)
	root.GET("/open", h.Open)
}

// Resolve describes the destination of ?url= and its web path in ?locale=.
func (h *DeepLinkHandler) Resolve(c *gin.Context) {
	dest, err := deeplink.Parse(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := c.Query("locale")
	if !locale.IsSupported(loc) {
		loc = h.negotiate(c)
	}
	c.JSON(http.StatusOK, toDeepLinkResponse(dest, loc))
}

// Open redirects a browser to the web page for ?url=.
func (h *DeepLinkHandler) Open(c *gin.Context) {
	loc := h.negotiate(c)
	dest, err := deeplink.Parse(c.Query("url"))
	if err != nil {
		c.Redirect(http.StatusFound, locale.WithLocale(loc, "/"))
		return
	}
	c.Redirect(http.StatusFound, dest.WebPath(loc))
}

func (h *DeepLinkHandler) negotiate(c *gin.Context) string {
	cookie, _ := c.Cookie(middleware.LocaleCookie)
	return locale.NegotiateOr(cookie, c.GetHeader("Accept-Language"), h.defaultLocale)
}

func toDeepLinkResponse(dest deeplink.Destination, loc string) types.DeepLinkResponse {
	resp := types.DeepLinkResponse{
		Kind:      string(dest.Kind),
		CommentID: dest.CommentID,
		Hashtag:   dest.Hashtag,
		WebPath:   dest.WebPath(loc),
	}
	if dest.Kind != deeplink.KindHashtag {
		id := dest.ID
		resp.ID = &id
	}
	return resp
}
