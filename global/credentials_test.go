package global

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientSecretTokenProvider_Validation(t *testing.T) {
	scopes := []string{"https://graph.microsoft.com/.default"}

	tests := []struct {
		name         string
		tenantID     string
		clientID     string
		clientSecret string
		scopes       []string
	}{
		{name: "missing tenant", clientID: "client", clientSecret: "secret", scopes: scopes},
		{name: "missing client id", tenantID: "tenant", clientSecret: "secret", scopes: scopes},
		{name: "missing secret", tenantID: "tenant", clientID: "client", scopes: scopes},
		{name: "missing scopes", tenantID: "tenant", clientID: "client", clientSecret: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientSecretTokenProvider(BackendAzureAD, tt.tenantID, tt.clientID, tt.clientSecret, "", tt.scopes)
			assert.Error(t, err)
		})
	}
}

type staticCredential struct {
	token string
	err   error
	calls int
}

func (c *staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.calls++

	if c.err != nil {
		return azcore.AccessToken{}, c.err
	}

	return azcore.AccessToken{Token: c.token}, nil
}

func TestClientSecretTokenProvider_CachesToken(t *testing.T) {
	cred := &staticCredential{token: "token-1"}
	provider := &ClientSecretTokenProvider{backend: BackendAzureAD, scopes: []string{"scope"}, cred: cred}

	for i := 0; i < 3; i++ {
		token, err := provider.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
	}

	assert.Equal(t, 1, cred.calls)
}

func TestClientSecretTokenProvider_WrapsFailure(t *testing.T) {
	cred := &staticCredential{err: errors.New("invalid_client")}
	provider := &ClientSecretTokenProvider{backend: BackendBusinessCentral, scopes: []string{"scope"}, cred: cred}

	_, err := provider.Token(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, BackendBusinessCentral, authErr.Backend)
}

func TestAuthorityHost(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "template with tenant placeholder", template: "https://login.microsoftonline.com/{0}/v2.0", want: "https://login.microsoftonline.com/"},
		{name: "empty template", template: "", want: ""},
		{name: "not a url", template: "::::", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorityHost(tt.template, "tenant-1"); got != tt.want {
				t.Errorf("authorityHost() = %q, want %q", got, tt.want)
			}
		})
	}
}
