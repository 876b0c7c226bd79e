package controller_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/hubspot-bridge/internal/hubspot"
	"github.com/mbeckers/hubspot-bridge/internal/session"
)

var testProviderURL = "https://api.hubapi.com/oauth/v1/token"

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testContact(id, firstname string) hubspot.Contact {
	return hubspot.Contact{
		Id: id,
		Properties: hubspot.ContactProperties{
			Firstname: firstname,
			Lastname:  "Doe",
			Email:     firstname + "@example.com",
			Phone:     "555-0100",
		},
	}
}

func TestListContacts(t *testing.T) {
	t.Run("renders the contact table", func(t *testing.T) {
		gateway := &fakeGateway{contacts: []hubspot.Contact{testContact("1", "Jane"), testContact("2", "John")}}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		req := withSession(httptest.NewRequest(http.MethodGet, "/get-all-contacts", nil), "tok_1")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "tok_1", gateway.lastToken)

		body := readBody(t, res)
		assert.Contains(t, body, "Jane")
		assert.Contains(t, body, "John")
		assert.Contains(t, body, "/get-contact/1")
	})

	t.Run("renders the gateway error message", func(t *testing.T) {
		gateway := &fakeGateway{err: &hubspot.GatewayError{StatusCode: http.StatusUnauthorized, Message: "The access token is expired or invalid"}}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		res, err := app.Test(withSession(httptest.NewRequest(http.MethodGet, "/get-all-contacts", nil), "stale"))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, res), "The access token is expired or invalid")
	})
}

func TestGetContact(t *testing.T) {
	t.Run("by path with session cookie", func(t *testing.T) {
		gateway := &fakeGateway{contact: testContact("42", "Jane")}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		res, err := app.Test(withSession(httptest.NewRequest(http.MethodGet, "/get-contact/42", nil), "tok_1"))
		require.NoError(t, err)

		assert.Equal(t, "tok_1", gateway.lastToken)
		assert.Equal(t, "42", gateway.lastContactId)

		body := readBody(t, res)
		assert.Contains(t, body, "Contact 42")
		assert.Contains(t, body, "Jane")
	})

	t.Run("by form with explicit access key", func(t *testing.T) {
		gateway := &fakeGateway{contact: testContact("42", "Jane")}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		res, err := app.Test(formRequest("/get-contact", url.Values{
			"contact_id": {"42"},
			"access_key": {"tok_explicit"},
		}))
		require.NoError(t, err)

		assert.Equal(t, "tok_explicit", gateway.lastToken)
		assert.Equal(t, "42", gateway.lastContactId)
		assert.Contains(t, readBody(t, res), "Jane")
	})

	t.Run("session cookie wins over the form access key", func(t *testing.T) {
		gateway := &fakeGateway{contact: testContact("42", "Jane")}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		req := withSession(formRequest("/get-contact", url.Values{
			"contact_id": {"42"},
			"access_key": {"tok_explicit"},
		}), "tok_cookie")

		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "tok_cookie", gateway.lastToken)
	})

	t.Run("renders an error when the contact id is missing", func(t *testing.T) {
		app := newTestApp(newTestProvider(testProviderURL), &fakeGateway{})

		res, err := app.Test(formRequest("/get-contact", url.Values{"access_key": {"tok_1"}}))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, res), "missing contact id")
	})
}

func TestCreateContact(t *testing.T) {
	gateway := &fakeGateway{contact: testContact("77", "Jane")}
	app := newTestApp(newTestProvider(testProviderURL), gateway)

	req := withSession(formRequest("/create-contact", url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"555-0100"},
	}), "tok_1")

	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "tok_1", gateway.lastToken)
	assert.Equal(t, hubspot.ContactFields{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}, gateway.lastFields)
	assert.Contains(t, readBody(t, res), "Contact 77")
}

func TestUpdateContact(t *testing.T) {
	t.Run("submits every tracked field", func(t *testing.T) {
		gateway := &fakeGateway{contact: testContact("42", "Janet")}
		app := newTestApp(newTestProvider(testProviderURL), gateway)

		// Only the first name is filled in; the other fields still travel.
		req := withSession(formRequest("/update-contact", url.Values{
			"contact_id": {"42"},
			"first_name": {"Janet"},
		}), "tok_1")

		res, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "42", gateway.lastContactId)
		assert.Equal(t, hubspot.ContactFields{FirstName: "Janet"}, gateway.lastFields)
		assert.Contains(t, readBody(t, res), "Janet")
	})

	t.Run("renders an error when the contact id is missing", func(t *testing.T) {
		app := newTestApp(newTestProvider(testProviderURL), &fakeGateway{})

		res, err := app.Test(withSession(formRequest("/update-contact", url.Values{"first_name": {"Janet"}}), "tok_1"))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, res), "missing contact id")
	})
}

func TestStaticViews(t *testing.T) {
	app := newTestApp(newTestProvider(testProviderURL), &fakeGateway{})

	t.Run("home", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), "HubSpot Bridge")
	})

	t.Run("contacts shell", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/contacts", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), "/create-contact")
	})

	t.Run("health", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), "healthy")
	})
}
