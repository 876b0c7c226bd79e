package hubapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const contactsPath = "/crm/v3/objects/contacts"

// SimplePublicObject is a CRM object as the v3 API returns it.
type SimplePublicObject struct {
	Id         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Archived   bool              `json:"archived"`
}

// SimplePublicObjectInput carries the writable properties of a CRM object.
type SimplePublicObjectInput struct {
	Properties map[string]string `json:"properties"`
}

type ContactsPage struct {
	Results []SimplePublicObject `json:"results"`
}

type ContactsService struct {
	client *Client
}

// GetPage fetches the first page of contacts.
func (service *ContactsService) GetPage(ctx context.Context, limit int, archived bool, properties ...string) (ContactsPage, error) {
	var page ContactsPage

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("archived", strconv.FormatBool(archived))
	if len(properties) > 0 {
		query.Set("properties", strings.Join(properties, ","))
	}

	if err := service.client.do(ctx, http.MethodGet, contactsPath, query, nil, &page); err != nil {
		return page, err
	}

	return page, nil
}

// GetByID fetches a single contact, requesting the given properties.
func (service *ContactsService) GetByID(ctx context.Context, contactId string, properties ...string) (SimplePublicObject, error) {
	var object SimplePublicObject

	query := url.Values{}
	if len(properties) > 0 {
		query.Set("properties", strings.Join(properties, ","))
	}

	if err := service.client.do(ctx, http.MethodGet, contactsPath+"/"+url.PathEscape(contactId), query, nil, &object); err != nil {
		return object, err
	}

	return object, nil
}

func (service *ContactsService) Create(ctx context.Context, input SimplePublicObjectInput) (SimplePublicObject, error) {
	var object SimplePublicObject

	if err := service.client.do(ctx, http.MethodPost, contactsPath, nil, input, &object); err != nil {
		return object, err
	}

	return object, nil
}

// Update patches a contact; properties absent from the input are untouched
// upstream, but callers here always submit the full tracked set.
func (service *ContactsService) Update(ctx context.Context, contactId string, input SimplePublicObjectInput) (SimplePublicObject, error) {
	var object SimplePublicObject

	if err := service.client.do(ctx, http.MethodPatch, contactsPath+"/"+url.PathEscape(contactId), nil, input, &object); err != nil {
		return object, err
	}

	return object, nil
}
