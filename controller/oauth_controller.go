package controller

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/mbeckers/hubspot-bridge/internal/oauth"
	"github.com/mbeckers/hubspot-bridge/internal/session"
)

type OAuthController interface {
	ShowIntegrate(c fiber.Ctx) error
	Callback(c fiber.Ctx) error
	RefreshToken(c fiber.Ctx) error
}

type oauthController struct {
	logger       zerolog.Logger
	provider     *oauth.Provider
	sessionStore *session.Store
}

func NewOAuthController(logger zerolog.Logger, provider *oauth.Provider, sessionStore *session.Store) OAuthController {
	return &oauthController{
		logger:       logger,
		provider:     provider,
		sessionStore: sessionStore,
	}
}

// ShowIntegrate renders the consent URL for the user to open in a new tab.
func (controller *oauthController) ShowIntegrate(c fiber.Ctx) error {
	return c.Render("open_in_new_tab", fiber.Map{
		"OAuthURL": controller.provider.AuthorizationURL(),
	})
}

// Callback consumes the single-use authorization code from the consent
// redirect and exchanges it for a token pair.
func (controller *oauthController) Callback(c fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return renderError(c, "missing authorization code")
	}

	tokens, err := controller.provider.ExchangeCode(c.Context(), code)
	if err != nil {
		controller.logger.Error().Err(err).Msg("authorization code exchange failed")
		return renderError(c, err.Error())
	}

	controller.sessionStore.Write(c, tokens.AccessToken)

	return c.Render("success", fiber.Map{
		"Tokens": tokens,
	})
}

// RefreshToken exchanges a caller-supplied refresh token for a renewed pair.
// The refresh token is never stored; the caller resubmits it each time.
func (controller *oauthController) RefreshToken(c fiber.Ctx) error {
	refreshToken := c.FormValue("refresh_token")
	if refreshToken == "" {
		return renderError(c, "missing refresh token")
	}

	tokens, err := controller.provider.ExchangeRefreshToken(c.Context(), refreshToken)
	if err != nil {
		controller.logger.Error().Err(err).Msg("refresh token exchange failed")
		return renderError(c, err.Error())
	}

	controller.sessionStore.Write(c, tokens.AccessToken)

	return c.Render("success", fiber.Map{
		"Tokens": tokens,
	})
}

// renderError converts any failure into the generic error view. Bad input,
// expired tokens and upstream outages all surface the same way.
func renderError(c fiber.Ctx, message string) error {
	return c.Render("error", fiber.Map{
		"Error": message,
	})
}
