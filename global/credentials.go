package global

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// TokenProvider hands out a bearer token for one backend.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// ClientSecretTokenProvider obtains a token through the OAuth2
// client-credentials grant and caches it for its own lifetime. There is no
// refresh-on-expiry; a new provider instance re-authenticates. Providers are
// per-client-instance so concurrent workflows with different credentials
// never share a token.
type ClientSecretTokenProvider struct {
	backend string
	scopes  []string
	cred    azcore.TokenCredential

	mu    sync.Mutex
	token string
}

// NewClientSecretTokenProvider validates the tenant/client/secret triple and
// initializes the underlying credential. The authority template may contain a
// literal "{0}" placeholder for the tenant id; when empty the default Azure AD
// authority is used.
func NewClientSecretTokenProvider(backend, tenantID, clientID, clientSecret, authority string, scopes []string) (*ClientSecretTokenProvider, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("missing tenant id for %s", backend)
	}

	if clientID == "" {
		return nil, fmt.Errorf("missing client id for %s", backend)
	}

	if clientSecret == "" {
		return nil, fmt.Errorf("missing client secret for %s", backend)
	}

	if len(scopes) == 0 {
		return nil, fmt.Errorf("missing token scopes for %s", backend)
	}

	var options *azidentity.ClientSecretCredentialOptions

	if host := authorityHost(authority, tenantID); host != "" {
		options = &azidentity.ClientSecretCredentialOptions{
			ClientOptions: azcore.ClientOptions{
				Cloud: cloud.Configuration{ActiveDirectoryAuthorityHost: host},
			},
		}
	}

	cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, options)
	if err != nil {
		return nil, fmt.Errorf("could not create a credential from a secret: %w", err)
	}

	return &ClientSecretTokenProvider{
		backend: backend,
		scopes:  scopes,
		cred:    cred,
	}, nil
}

func (p *ClientSecretTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}

	tok, err := p.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: p.scopes})
	if err != nil {
		return "", &AuthenticationError{Backend: p.backend, Err: err}
	}

	p.token = tok.Token

	return p.token, nil
}

// authorityHost reduces an authority template like
// "https://login.microsoftonline.com/{0}/v2.0" to its scheme and host.
func authorityHost(template, tenantID string) string {
	if template == "" {
		return ""
	}

	u, err := url.Parse(strings.ReplaceAll(template, "{0}", tenantID))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host + "/"
}
