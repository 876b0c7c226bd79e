package controller

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/mbeckers/hubspot-bridge/internal/hubspot"
	"github.com/mbeckers/hubspot-bridge/internal/session"
)

const defaultListLimit = 10

type ContactController interface {
	ShowSearch(c fiber.Ctx) error
	ListContacts(c fiber.Ctx) error
	GetContactByForm(c fiber.Ctx) error
	GetContact(c fiber.Ctx) error
	CreateContact(c fiber.Ctx) error
	UpdateContact(c fiber.Ctx) error
}

type contactController struct {
	logger       zerolog.Logger
	gateway      hubspot.Gateway
	sessionStore *session.Store
}

func NewContactController(logger zerolog.Logger, gateway hubspot.Gateway, sessionStore *session.Store) ContactController {
	return &contactController{
		logger:       logger,
		gateway:      gateway,
		sessionStore: sessionStore,
	}
}

func (controller *contactController) ShowSearch(c fiber.Ctx) error {
	return c.Render("contacts", nil)
}

// ListContacts renders the first 10 non-archived contacts.
func (controller *contactController) ListContacts(c fiber.Ctx) error {
	accessToken := controller.sessionStore.Resolve(c)

	contacts, err := controller.gateway.List(c.Context(), accessToken, defaultListLimit, false)
	if err != nil {
		controller.logger.Error().Err(err).Msg("listing contacts failed")
		return renderError(c, err.Error())
	}

	return c.Render("all_contacts", fiber.Map{
		"Contacts": contacts,
	})
}

// GetContactByForm fetches one contact from a form submission; the credential
// may arrive as an explicit access_key when no session cookie exists yet.
func (controller *contactController) GetContactByForm(c fiber.Ctx) error {
	return controller.fetchContact(c, c.FormValue("contact_id"))
}

// GetContact fetches one contact addressed by path parameter.
func (controller *contactController) GetContact(c fiber.Ctx) error {
	return controller.fetchContact(c, c.Params("id"))
}

func (controller *contactController) fetchContact(c fiber.Ctx, contactId string) error {
	if contactId == "" {
		return renderError(c, "missing contact id")
	}

	accessToken := controller.sessionStore.Resolve(c)

	contact, err := controller.gateway.Get(c.Context(), accessToken, contactId)
	if err != nil {
		controller.logger.Error().Err(err).Str("contact_id", contactId).Msg("fetching contact failed")
		return renderError(c, err.Error())
	}

	return c.Render("contact_detail", fiber.Map{
		"Contact": contact,
	})
}

func (controller *contactController) CreateContact(c fiber.Ctx) error {
	accessToken := controller.sessionStore.Resolve(c)

	contact, err := controller.gateway.Create(c.Context(), accessToken, contactFieldsFromForm(c))
	if err != nil {
		controller.logger.Error().Err(err).Msg("creating contact failed")
		return renderError(c, err.Error())
	}

	return c.Render("contact_detail", fiber.Map{
		"Contact": contact,
	})
}

// UpdateContact overwrites all four tracked properties with the submitted
// form values, whether or not the caller changed them.
func (controller *contactController) UpdateContact(c fiber.Ctx) error {
	contactId := c.FormValue("contact_id")
	if contactId == "" {
		return renderError(c, "missing contact id")
	}

	accessToken := controller.sessionStore.Resolve(c)

	contact, err := controller.gateway.Update(c.Context(), accessToken, contactId, contactFieldsFromForm(c))
	if err != nil {
		controller.logger.Error().Err(err).Str("contact_id", contactId).Msg("updating contact failed")
		return renderError(c, err.Error())
	}

	return c.Render("contact_detail", fiber.Map{
		"Contact": contact,
	})
}

func contactFieldsFromForm(c fiber.Ctx) hubspot.ContactFields {
	return hubspot.ContactFields{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
	}
}
