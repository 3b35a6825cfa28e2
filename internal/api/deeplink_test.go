package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookstemma/edge/internal/types"
)

func deepLinkRouter() *gin.Engine {
	r := gin.New()
	NewDeepLinkHandler("en").RegisterRoutes(r.Group("/api/v1"), r)
	return r
}

func TestResolveDeepLink(t *testing.T) {
	id := uuid.New()
	r := deepLinkRouter()

	w := doRequest(t, r, http.MethodGet, "/api/v1/deeplinks/resolve?locale=ko&url="+url.QueryEscape("cookstemma://recipes/"+id.String()), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.DeepLinkResponse](t, w)
	assert.Equal(t, "recipe", resp.Kind)
	require.NotNil(t, resp.ID)
	assert.Equal(t, id, *resp.ID)
	assert.Equal(t, "/ko/recipes/"+id.String(), resp.WebPath)
}

func TestResolveDeepLinkHashtag(t *testing.T) {
	w := doRequest(t, deepLinkRouter(), http.MethodGet, "/api/v1/deeplinks/resolve?url="+url.QueryEscape("cookstemma://hashtags/kimchi"), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.DeepLinkResponse](t, w)
	assert.Equal(t, "hashtag", resp.Kind)
	assert.Nil(t, resp.ID)
	assert.Equal(t, "kimchi", resp.Hashtag)
	assert.Equal(t, "/en/hashtags/kimchi", resp.WebPath)
}

func TestResolveDeepLinkRejectsForeignScheme(t *testing.T) {
	w := doRequest(t, deepLinkRouter(), http.MethodGet, "/api/v1/deeplinks/resolve?url="+url.QueryEscape("https://example.com/recipes/1"), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenDeepLink(t *testing.T) {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/open?url="+url.QueryEscape("cookstemma://users/"+id.String()), nil)
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	w := httptest.NewRecorder()
	deepLinkRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/ja/users/"+id.String(), w.Header().Get("Location"))
}

func TestOpenInvalidDeepLinkGoesHome(t *testing.T) {
	w := doRequest(t, deepLinkRouter(), http.MethodGet, "/open?url=nonsense", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/en", w.Header().Get("Location"))
}
