// Package apiclient is a typed client for the Cookstemma REST backend. Once a request has been
// built, transport, status and decoding failures come back as *types.APIError. A request that
// cannot be built (bad page cursor, unencodable payload) fails with a plain wrapped error before
// anything is sent. Calls are made once; there is no retry.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cookstemma/edge/internal/types"
)

const (
	defaultTimeout = 15 * time.Second

	// DefaultPageSize is sent with every list request.
	DefaultPageSize = 20
)

// Client talks to the backend. The zero value is not usable; see New.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Token is sent as a bearer token when set.
	Token string
}

// New creates a Client for baseURL with a default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithToken returns a copy of c that authenticates as token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s payload: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return &types.APIError{Kind: types.KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.APIError{Kind: types.KindNetwork, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &types.APIError{Kind: types.KindDecoding, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func statusError(status int, data []byte) *types.APIError {
	apiErr := &types.APIError{Kind: types.KindFromStatus(status), Status: status}

	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err == nil {
		apiErr.Message = strings.TrimSpace(parsed.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(parsed.Error)
		}
	}
	return apiErr
}

func getCursorPage[T any](ctx context.Context, c *Client, path string, query url.Values) (types.Page[T], error) {
	var resp types.CursorResponse[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return types.Page[T]{}, err
	}
	return resp.Page(), nil
}

func getSlicePage[T any](ctx context.Context, c *Client, path string, query url.Values) (types.Page[T], error) {
	var resp types.SliceResponse[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return types.Page[T]{}, err
	}
	return resp.Page(), nil
}

func cursorQuery(cursor string) url.Values {
	q := url.Values{}
	q.Set("size", fmt.Sprint(DefaultPageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return q
}

// setToggle issues POST when active is true and DELETE otherwise.
func (c *Client) setToggle(ctx context.Context, path string, active bool) error {
	method := http.MethodDelete
	if active {
		method = http.MethodPost
	}
	return c.do(ctx, method, path, nil, nil, nil)
}
