package oauth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mbeckers/hubspot-bridge/internal/config"
)

// Scopes requested during the HubSpot consent redirect.
var Scopes = []string{
	"oauth",
	"crm.objects.contacts.read",
	"crm.objects.contacts.write",
	"crm.schemas.contacts.read",
	"crm.schemas.contacts.write",
}

// TokenPair is the result of a successful token endpoint exchange.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthError signals that the token endpoint rejected an exchange, or that the
// exchange failed in transit. Error() returns the human-readable message that
// ends up in the rendered error view.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Provider exchanges authorization codes and refresh tokens against the
// HubSpot token endpoint. Exchanges are single attempts, a failure is
// terminal for the request.
type Provider struct {
	conf   *oauth2.Config
	client *http.Client
}

func NewProvider(cfg config.OAuth, timeout time.Duration) *Provider {
	return &Provider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		client: &http.Client{Timeout: timeout},
	}
}

// AuthorizationURL builds the consent URL the browser should open in a new
// tab. The state parameter is random per call; no server-side record of it is
// kept because no server-side session exists.
func (p *Provider) AuthorizationURL() string {
	return p.conf.AuthCodeURL(uuid.NewString())
}

// ExchangeCode posts grant_type=authorization_code with the single-use code
// and returns the resulting token pair.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (TokenPair, error) {
	token, err := p.conf.Exchange(p.httpContext(ctx), code)
	if err != nil {
		return TokenPair{}, authErrorFrom(err)
	}
	return pairFromToken(token), nil
}

// ExchangeRefreshToken posts grant_type=refresh_token and returns a renewed
// token pair. The refresh token is supplied by the caller on every call; it
// is never stored server-side.
func (p *Provider) ExchangeRefreshToken(ctx context.Context, refreshToken string) (TokenPair, error) {
	source := p.conf.TokenSource(p.httpContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return TokenPair{}, authErrorFrom(err)
	}
	return pairFromToken(token), nil
}

func (p *Provider) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.client)
}

func pairFromToken(token *oauth2.Token) TokenPair {
	expiresIn := token.ExpiresIn
	if expiresIn == 0 && !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Seconds())
	}
	return TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}
}

func authErrorFrom(err error) *AuthError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		message := retrieveErr.ErrorDescription
		if message == "" {
			message = "Unknown error"
		}
		return &AuthError{Message: message, Cause: err}
	}
	return &AuthError{Message: err.Error(), Cause: err}
}
