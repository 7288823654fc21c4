package global

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "id eq '1'", r.URL.Query().Get("$filter"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, StaticTokenProvider("test-token"))

	query := url.Values{}
	query.Set("$filter", "id eq '1'")

	status, body, err := client.Get(context.Background(), "users", query)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"value":[]}`, string(body))
}

func TestRESTClient_PostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, StaticTokenProvider("test-token"))

	status, _, err := client.Post(context.Background(), "/users", map[string]string{"displayName": "Ana"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
}

func TestRESTClient_TokenFailureShortCircuits(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, failingTokenProvider{})

	_, _, err := client.Get(context.Background(), "users", nil)

	require.Error(t, err)
	assert.Zero(t, requests)
}

type failingTokenProvider struct{}

func (failingTokenProvider) Token(context.Context) (string, error) {
	return "", &AuthenticationError{Backend: BackendAzureAD}
}

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{status: 200, want: true},
		{status: 201, want: true},
		{status: 204, want: true},
		{status: 299, want: true},
		{status: 199, want: false},
		{status: 301, want: false},
		{status: 404, want: false},
		{status: 500, want: false},
	}
	for _, tt := range tests {
		if got := IsSuccess(tt.status); got != tt.want {
			t.Errorf("IsSuccess(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
