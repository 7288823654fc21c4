package global

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
)

// RESTClient is a thin JSON-over-HTTPS helper shared by both backend
// clients: bearer authentication from a TokenProvider, JSON bodies, and the
// raw status code plus response body handed back to the caller. Status
// normalization (404 means not found, non-2xx means failure) is a per-call
// decision and stays with the backend clients.
type RESTClient struct {
	baseURL string
	tokens  TokenProvider
	http    *http.Client
}

func NewRESTClient(baseURL string, tokens TokenProvider) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

func (c *RESTClient) Get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *RESTClient) Post(ctx context.Context, path string, payload any) (int, []byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

func (c *RESTClient) Patch(ctx context.Context, path string, payload any) (int, []byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, payload)
}

func (c *RESTClient) Delete(ctx context.Context, path string) (int, []byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, err
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader

	if payload != nil {
		data, merr := json.Marshal(payload)
		if merr != nil {
			return 0, nil, fmt.Errorf("could not marshal %s %s body: %w", method, path, merr)
		}

		body = bytes.NewReader(data)
	}

	rq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, nil, err
	}

	rq.Header.Set("Authorization", "Bearer "+token)
	rq.Header.Set("Accept", "application/json")

	if payload != nil {
		rq.Header.Set("Content-Type", "application/json")
	}

	rs, err := c.http.Do(rq)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer rs.Body.Close()

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return rs.StatusCode, nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	return rs.StatusCode, data, nil
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// StaticTokenProvider returns a fixed token. Used by tests and for
// pre-acquired tokens.
type StaticTokenProvider string

func (p StaticTokenProvider) Token(context.Context) (string, error) {
	return string(p), nil
}
