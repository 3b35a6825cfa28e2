package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cookstemma/edge/internal/mocks"
	"github.com/cookstemma/edge/internal/types"
)

const testToken = "good-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTokenService accepts testToken as userID and rejects everything else.
func newTokenService(userID uuid.UUID) *mocks.MockTokenService {
	tokens := new(mocks.MockTokenService)
	tokens.On("ValidateToken", testToken).Return(&types.TokenClaims{UserID: userID, Username: "mina"}, nil)
	tokens.On("ValidateToken", mock.Anything).Return(nil, types.ErrUnauthorized)
	return tokens
}

func doRequest(t *testing.T, r http.Handler, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}
