package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itops-tools/user-provisioning/global"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(global.NewRESTClient(server.URL, global.StaticTokenProvider("test-token")), true, nil)
}

func TestClient_CreateUser(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana.garcia@example.com", body["userPrincipalName"])
		assert.Equal(t, "Ana García", body["displayName"])
		assert.Equal(t, "ana.garcia", body["mailNickname"])
		assert.Equal(t, true, body["accountEnabled"])

		profile, ok := body["passwordProfile"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, profile["forceChangePasswordNextSignIn"])
		assert.Equal(t, "Welcome123!", profile["password"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"aad-1","userPrincipalName":"ana.garcia@example.com"}`))
	}))

	user := &global.User{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana.garcia@example.com",
		IsActive:  true,
	}

	require.NoError(t, client.CreateUser(context.Background(), user, "Welcome123!"))
	assert.Equal(t, "aad-1", user.AzureADID)
	assert.True(t, user.ExistsInAzureAD)
}

func TestClient_CreateUserRejected(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"password does not meet policy"}}`))
	}))

	user := &global.User{Email: "ana.garcia@example.com"}
	err := client.CreateUser(context.Background(), user, "weak")

	var createErr *global.BackendCreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, http.StatusBadRequest, createErr.StatusCode)
	assert.Empty(t, user.AzureADID)
}

func TestClient_GetUserNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	user, err := client.GetUser(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestClient_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name     string
		response string
		found    bool
	}{
		{name: "match", response: `{"value":[{"id":"aad-1","userPrincipalName":"ana.garcia@example.com","displayName":"Ana García"}]}`, found: true},
		{name: "no match", response: `{"value":[]}`, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/users" {
					assert.Equal(t, "userPrincipalName eq 'ana.garcia@example.com'", r.URL.Query().Get("$filter"))
					_, _ = w.Write([]byte(tt.response))

					return
				}

				// per-user license read during enrichment
				_, _ = w.Write([]byte(`{"id":"aad-1","assignedLicenses":[]}`))
			}))

			user, err := client.GetUserByEmail(context.Background(), "ana.garcia@example.com")

			require.NoError(t, err)

			if tt.found {
				require.NotNil(t, user)
				assert.Equal(t, "aad-1", user.AzureADID)
				assert.True(t, user.ExistsInAzureAD)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestClient_GetUserByEmailEscapesFilter(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "userPrincipalName eq 'o''brien@example.com'", r.URL.Query().Get("$filter"))
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	_, err := client.GetUserByEmail(context.Background(), "o'brien@example.com")
	require.NoError(t, err)
}

func TestClient_GetUserByEmailBackendFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.GetUserByEmail(context.Background(), "ana.garcia@example.com")

	var queryErr *global.BackendQueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, global.BackendAzureAD, queryErr.Backend)
}

func TestClient_DeleteUser(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/aad-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteUser(context.Background(), "aad-1"))
}

func TestEscapeODataString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain@example.com", want: "plain@example.com"},
		{in: "o'brien@example.com", want: "o''brien@example.com"},
		{in: "a''b", want: "a''''b"},
	}
	for _, tt := range tests {
		if got := escapeODataString(tt.in); got != tt.want {
			t.Errorf("escapeODataString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
