package hubspot

import (
	"context"
	"errors"
	"net/http"

	"github.com/mbeckers/hubspot-bridge/pkg/hubapi"
)

// sdkGateway routes the same operations through the typed hubapi client. A
// client is constructed per call because the credential travels with the
// request, not the process.
type sdkGateway struct {
	baseURL string
	client  *http.Client
}

func (gateway *sdkGateway) api(accessToken string) *hubapi.Client {
	return hubapi.NewClient(accessToken, hubapi.WithBaseURL(gateway.baseURL), hubapi.WithHTTPClient(gateway.client))
}

func (gateway *sdkGateway) List(ctx context.Context, accessToken string, limit int, includeArchived bool) ([]Contact, error) {
	page, err := gateway.api(accessToken).Contacts.GetPage(ctx, limit, includeArchived, TrackedProperties...)
	if err != nil {
		return nil, gatewayErrorFrom(err)
	}

	contacts := make([]Contact, 0, len(page.Results))
	for _, object := range page.Results {
		if len(contacts) == limit {
			break
		}
		if object.Archived && !includeArchived {
			continue
		}
		contacts = append(contacts, contactFromObject(object))
	}

	return contacts, nil
}

func (gateway *sdkGateway) Get(ctx context.Context, accessToken, contactId string) (Contact, error) {
	object, err := gateway.api(accessToken).Contacts.GetByID(ctx, contactId, TrackedProperties...)
	if err != nil {
		return Contact{}, gatewayErrorFrom(err)
	}

	return contactFromObject(object), nil
}

func (gateway *sdkGateway) Create(ctx context.Context, accessToken string, fields ContactFields) (Contact, error) {
	object, err := gateway.api(accessToken).Contacts.Create(ctx, hubapi.SimplePublicObjectInput{Properties: fields.properties()})
	if err != nil {
		return Contact{}, gatewayErrorFrom(err)
	}

	return contactFromObject(object), nil
}

func (gateway *sdkGateway) Update(ctx context.Context, accessToken, contactId string, fields ContactFields) (Contact, error) {
	object, err := gateway.api(accessToken).Contacts.Update(ctx, contactId, hubapi.SimplePublicObjectInput{Properties: fields.properties()})
	if err != nil {
		return Contact{}, gatewayErrorFrom(err)
	}

	return contactFromObject(object), nil
}

func contactFromObject(object hubapi.SimplePublicObject) Contact {
	return Contact{
		Id: object.Id,
		Properties: ContactProperties{
			Firstname: object.Properties[PropertyFirstname],
			Lastname:  object.Properties[PropertyLastname],
			Email:     object.Properties[PropertyEmail],
			Phone:     object.Properties[PropertyPhone],
		},
		CreatedAt: object.CreatedAt,
		UpdatedAt: object.UpdatedAt,
		Archived:  object.Archived,
	}
}

func gatewayErrorFrom(err error) *GatewayError {
	var apiErr *hubapi.ApiError
	if errors.As(err, &apiErr) {
		return &GatewayError{StatusCode: apiErr.StatusCode, Message: apiErr.Message, Cause: err}
	}
	return &GatewayError{Message: err.Error(), Cause: err}
}
