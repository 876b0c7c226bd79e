package controller_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mbeckers/hubspot-bridge/controller"
	"github.com/mbeckers/hubspot-bridge/internal/config"
	"github.com/mbeckers/hubspot-bridge/internal/hubspot"
	"github.com/mbeckers/hubspot-bridge/internal/oauth"
	"github.com/mbeckers/hubspot-bridge/internal/session"
	"github.com/mbeckers/hubspot-bridge/web"
)

// fakeGateway records the credentials and inputs each call received.
type fakeGateway struct {
	lastToken     string
	lastContactId string
	lastFields    hubspot.ContactFields

	contacts []hubspot.Contact
	contact  hubspot.Contact
	err      error
}

func (gateway *fakeGateway) List(ctx context.Context, accessToken string, limit int, includeArchived bool) ([]hubspot.Contact, error) {
	gateway.lastToken = accessToken
	if gateway.err != nil {
		return nil, gateway.err
	}
	return gateway.contacts, nil
}

func (gateway *fakeGateway) Get(ctx context.Context, accessToken, contactId string) (hubspot.Contact, error) {
	gateway.lastToken = accessToken
	gateway.lastContactId = contactId
	if gateway.err != nil {
		return hubspot.Contact{}, gateway.err
	}
	return gateway.contact, nil
}

func (gateway *fakeGateway) Create(ctx context.Context, accessToken string, fields hubspot.ContactFields) (hubspot.Contact, error) {
	gateway.lastToken = accessToken
	gateway.lastFields = fields
	if gateway.err != nil {
		return hubspot.Contact{}, gateway.err
	}
	return gateway.contact, nil
}

func (gateway *fakeGateway) Update(ctx context.Context, accessToken, contactId string, fields hubspot.ContactFields) (hubspot.Contact, error) {
	gateway.lastToken = accessToken
	gateway.lastContactId = contactId
	gateway.lastFields = fields
	if gateway.err != nil {
		return hubspot.Contact{}, gateway.err
	}
	return gateway.contact, nil
}

func newTestProvider(tokenURL string) *oauth.Provider {
	return oauth.NewProvider(config.OAuth{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURI:  "http://localhost:8080/hubspot/oauth/callback",
		AuthURL:      "https://app.hubspot.com/oauth/authorize",
		TokenURL:     tokenURL,
	}, 5*time.Second)
}

func newTestApp(provider *oauth.Provider, gateway hubspot.Gateway) *fiber.App {
	logger := zerolog.Nop()
	sessionStore := session.NewStore()

	homeController := controller.NewHomeController()
	oauthController := controller.NewOAuthController(logger, provider, sessionStore)
	contactController := controller.NewContactController(logger, gateway, sessionStore)

	engine := html.NewFileSystem(http.FS(web.TemplateFS()), ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", homeController.ShowHome)
	app.Get("/health", homeController.Health)
	app.Get("/integrate", oauthController.ShowIntegrate)
	app.Get("/hubspot/oauth/callback", oauthController.Callback)
	app.Post("/refresh-token", oauthController.RefreshToken)
	app.Get("/contacts", contactController.ShowSearch)
	app.Get("/get-all-contacts", contactController.ListContacts)
	app.Post("/get-contact", contactController.GetContactByForm)
	app.Get("/get-contact/:id", contactController.GetContact)
	app.Post("/create-contact", contactController.CreateContact)
	app.Post("/update-contact", contactController.UpdateContact)

	return app
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}
