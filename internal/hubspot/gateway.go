package hubspot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mbeckers/hubspot-bridge/internal/config"
)

// Gateway performs contact operations against the CRM on behalf of the
// current request. The access token is passed per call because the cookie is
// the only credential store. Calls are single attempts with no pagination
// beyond the first page.
type Gateway interface {
	List(ctx context.Context, accessToken string, limit int, includeArchived bool) ([]Contact, error)
	Get(ctx context.Context, accessToken, contactId string) (Contact, error)
	Create(ctx context.Context, accessToken string, fields ContactFields) (Contact, error)
	Update(ctx context.Context, accessToken, contactId string, fields ContactFields) (Contact, error)
}

// GatewayError is a failed CRM call. Auth failures from expired tokens are
// not distinguished from other upstream errors.
type GatewayError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("crm request failed with status %d", e.StatusCode)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// NewGateway returns the backend selected by configuration. Both backends
// implement the same contract and are interchangeable.
func NewGateway(cfg config.HubSpot) Gateway {
	client := &http.Client{Timeout: cfg.ClientTimeout}

	switch cfg.Backend {
	case config.BackendSDK:
		return &sdkGateway{baseURL: cfg.APIURL, client: client}
	default:
		return &restGateway{baseURL: cfg.APIURL, client: client}
	}
}
