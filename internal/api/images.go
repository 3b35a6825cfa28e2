package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/webp"
)

// ImageOrigin fetches image variants from object storage.
type ImageOrigin interface {
	Fetch(ctx context.Context, sel webp.Selection) (*webp.Object, error)
}

// ImageHandler serves image variants, preferring WebP for clients that accept it
type ImageHandler struct {
	origin ImageOrigin
}

func NewImageHandler(origin ImageOrigin) *ImageHandler {
	return &ImageHandler{origin: origin}
}

// RegisterRoutes serves variants both at the bucket root and under the CDN's /images prefix.
// The request path minus its leading slash is the object key either way.
func (h *ImageHandler) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"/variants/*key", "/images/variants/*key"} {
		router.GET(prefix, middleware.WebPSelector(), h.ServeVariant)
		router.HEAD(prefix, middleware.WebPSelector(), h.ServeVariant)
	}
}

func (h *ImageHandler) ServeVariant(c *gin.Context) {
	sel := middleware.WebPSelection(c)
	obj, err := h.origin.Fetch(c.Request.Context(), sel)
	if err != nil {
		if errors.Is(err, webp.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		respondError(c, err)
		return
	}
	defer obj.Body.Close()

	if obj.Fallback {
		c.Writer.Header().Del(webp.DebugHeader)
	}

	headers := map[string]string{"Cache-Control": "public, max-age=31536000, immutable"}
	if obj.ETag != "" {
		headers["ETag"] = obj.ETag
	}
	length := obj.ContentLength
	if length <= 0 {
		length = -1
	}
	c.DataFromReader(http.StatusOK, length, obj.ContentType, obj.Body, headers)
}
