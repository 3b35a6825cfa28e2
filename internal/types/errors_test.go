package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
		{http.StatusBadRequest, KindUnknown},
		{http.StatusConflict, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, KindFromStatus(tt.status))
		})
	}
}

func TestAPIErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("get feed: %w", &APIError{Kind: KindNotFound, Status: 404, Message: "no such feed"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrServer)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &APIError{Kind: KindNetwork, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "network error: connection refused", err.Error())
}

func TestAPIErrorString(t *testing.T) {
	assert.Equal(t, "server error (status 500): boom", (&APIError{Kind: KindServer, Status: 500, Message: "boom"}).Error())
	assert.Equal(t, "server error (status 503)", (&APIError{Kind: KindServer, Status: 503}).Error())
	assert.Equal(t, "decoding error", (&APIError{Kind: KindDecoding}).Error())
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Recipe is private", UserMessage(&APIError{Kind: KindUnknown, Status: 403, Message: "Recipe is private"}))
	assert.Equal(t, kindMessages[KindNetwork], UserMessage(&APIError{Kind: KindNetwork}))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Equal(t, DefaultErrorMessage, UserMessage(errors.New("")))
}
