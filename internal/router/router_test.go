package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/api"
	"github.com/cookstemma/edge/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T, webOrigin http.Handler) *gin.Engine {
	t.Helper()
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}, DefaultLocale: "en"}
	tokens := new(mocks.MockTokenService)
	return SetupRouter(cfg, Handlers{
		Health:      api.NewHealthHandler(nil),
		Preferences: api.NewPreferenceHandler(new(mocks.MockPreferenceService), tokens),
		Gateway:     api.NewGatewayHandler(new(mocks.MockGatewayService), tokens, nil),
		DeepLinks:   api.NewDeepLinkHandler("en"),
		WebOrigin:   webOrigin,
	})
}

// recorder adds CloseNotify, which gin's writer forwards to when the reverse proxy asks for it.
type recorder struct {
	*httptest.ResponseRecorder
}

func (recorder) CloseNotify() <-chan bool { return make(chan bool) }

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := recorder{httptest.NewRecorder()}
	r.ServeHTTP(w, req)
	return w.ResponseRecorder
}

func TestRouterHealthAndMetrics(t *testing.T) {
	r := testRouter(t, nil)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouterPagesGoThroughLocaleGate(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("page " + r.URL.Path))
	}))
	defer origin.Close()
	proxy, err := NewWebOriginProxy(origin.URL)
	require.NoError(t, err)
	r := testRouter(t, proxy)

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	req.Header.Set("Accept-Language", "ko")
	w := serve(r, req)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/ko/recipes", w.Header().Get("Location"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/en/profile", nil))
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/en/login?redirect=%2Fen%2Fprofile", w.Header().Get("Location"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/en/recipes", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page /en/recipes", w.Body.String())
}

func TestRouterProxiesPagesOverTheWire(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Origin-Path", r.URL.Path)
		_, _ = w.Write([]byte("page"))
	}))
	defer origin.Close()
	proxy, err := NewWebOriginProxy(origin.URL)
	require.NoError(t, err)
	edge := httptest.NewServer(testRouter(t, proxy))
	defer edge.Close()

	resp, err := http.Get(edge.URL + "/ko/recipes?sort=new")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/ko/recipes", resp.Header.Get("X-Origin-Path"))
}

func TestRouterAPIIsNotLocalized(t *testing.T) {
	r := testRouter(t, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewWebOriginProxyRejectsRelativeURL(t *testing.T) {
	_, err := NewWebOriginProxy("/just/a/path")
	assert.Error(t, err)
}

func TestWebOriginProxyUnreachable(t *testing.T) {
	proxy, err := NewWebOriginProxy("http://127.0.0.1:1")
	require.NoError(t, err)

	w := serve(proxy, httptest.NewRequest(http.MethodGet, "/en", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
