package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const contactsPath = "/crm/v3/objects/contacts"

// restGateway calls the CRM REST endpoints directly.
type restGateway struct {
	baseURL string
	client  *http.Client
}

type contactsListResponse struct {
	Results []Contact `json:"results"`
}

type contactUpsertRequest struct {
	Properties map[string]string `json:"properties"`
}

func (gateway *restGateway) List(ctx context.Context, accessToken string, limit int, includeArchived bool) ([]Contact, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("archived", strconv.FormatBool(includeArchived))
	query.Set("properties", strings.Join(TrackedProperties, ","))

	var listResponse contactsListResponse
	if err := gateway.do(ctx, accessToken, http.MethodGet, contactsPath, query, nil, &listResponse); err != nil {
		return nil, err
	}

	contacts := listResponse.Results
	if len(contacts) > limit {
		contacts = contacts[:limit]
	}
	if !includeArchived {
		filtered := contacts[:0]
		for _, contact := range contacts {
			if !contact.Archived {
				filtered = append(filtered, contact)
			}
		}
		contacts = filtered
	}

	return contacts, nil
}

func (gateway *restGateway) Get(ctx context.Context, accessToken, contactId string) (Contact, error) {
	query := url.Values{}
	query.Set("properties", strings.Join(TrackedProperties, ","))

	var contact Contact
	if err := gateway.do(ctx, accessToken, http.MethodGet, contactsPath+"/"+url.PathEscape(contactId), query, nil, &contact); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

func (gateway *restGateway) Create(ctx context.Context, accessToken string, fields ContactFields) (Contact, error) {
	var contact Contact
	if err := gateway.do(ctx, accessToken, http.MethodPost, contactsPath, nil, &contactUpsertRequest{Properties: fields.properties()}, &contact); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Update overwrites all four tracked properties regardless of which ones the
// caller changed.
func (gateway *restGateway) Update(ctx context.Context, accessToken, contactId string, fields ContactFields) (Contact, error) {
	var contact Contact
	if err := gateway.do(ctx, accessToken, http.MethodPatch, contactsPath+"/"+url.PathEscape(contactId), nil, &contactUpsertRequest{Properties: fields.properties()}, &contact); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

func (gateway *restGateway) do(ctx context.Context, accessToken, method, path string, query url.Values, reqBody, resBody any) error {
	endpoint := gateway.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return &GatewayError{Message: err.Error(), Cause: err}
		}
		payload = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return &GatewayError{Message: err.Error(), Cause: err}
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := gateway.client.Do(req)
	if err != nil {
		return &GatewayError{Message: err.Error(), Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return gatewayErrorFromResponse(res)
	}

	if err := json.NewDecoder(res.Body).Decode(resBody); err != nil {
		return &GatewayError{Message: err.Error(), Cause: err}
	}

	return nil
}

func gatewayErrorFromResponse(res *http.Response) *GatewayError {
	gatewayErr := &GatewayError{StatusCode: res.StatusCode}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return gatewayErr
	}

	var upstream struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &upstream); err == nil && upstream.Message != "" {
		gatewayErr.Message = upstream.Message
	} else {
		gatewayErr.Message = string(bytes.TrimSpace(body))
	}

	return gatewayErr
}
