// Package hubapi is a small typed client for the HubSpot CRM v3 REST API.
// It covers the contact operations this service needs and nothing more.
package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://api.hubapi.com"

type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client

	Contacts *ContactsService
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		client.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.HTTPClient = httpClient
	}
}

// NewClient creates a client authenticated with the given OAuth access token.
func NewClient(accessToken string, opts ...Option) *Client {
	client := &Client{
		BaseURL:     DefaultBaseURL,
		AccessToken: accessToken,
		HTTPClient:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.Contacts = &ContactsService{client: client}

	return client
}

// ApiError is a non-2xx response from the HubSpot API.
type ApiError struct {
	StatusCode int
	Status     string `json:"status"`
	Message    string `json:"message"`
	Category   string `json:"category"`
}

func (e *ApiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("hubspot api request failed with status %d", e.StatusCode)
}

func (client *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, resBody any) error {
	endpoint := client.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		payload = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", client.AccessToken))
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apiErrorFromResponse(res)
	}

	if resBody == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(resBody)
}

func apiErrorFromResponse(res *http.Response) *ApiError {
	apiErr := &ApiError{StatusCode: res.StatusCode}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return apiErr
	}

	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(bytes.TrimSpace(body))
	}

	return apiErr
}
