package container

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v3"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mbeckers/hubspot-bridge/controller"
	"github.com/mbeckers/hubspot-bridge/internal/config"
	"github.com/mbeckers/hubspot-bridge/internal/hubspot"
	"github.com/mbeckers/hubspot-bridge/internal/oauth"
	"github.com/mbeckers/hubspot-bridge/internal/session"
	"github.com/mbeckers/hubspot-bridge/web"
)

type Container struct {
	Config config.Config
	Logger zerolog.Logger
	App    *fiber.App

	HomeController    controller.HomeController
	OAuthController   controller.OAuthController
	ContactController controller.ContactController
}

func New(cfg config.Config) *Container {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Components
	provider := oauth.NewProvider(cfg.OAuth, cfg.HubSpot.ClientTimeout)
	gateway := hubspot.NewGateway(cfg.HubSpot)
	sessionStore := session.NewStore()

	// Controllers
	homeController := controller.NewHomeController()
	oauthController := controller.NewOAuthController(logger, provider, sessionStore)
	contactController := controller.NewContactController(logger, gateway, sessionStore)

	engine := html.NewFileSystem(http.FS(web.TemplateFS()), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New())

	c := &Container{
		Config: cfg,
		Logger: logger,
		App:    app,

		HomeController:    homeController,
		OAuthController:   oauthController,
		ContactController: contactController,
	}

	c.registerRoutes()

	return c
}

func (c *Container) registerRoutes() {
	c.App.Get("/", c.HomeController.ShowHome)
	c.App.Get("/health", c.HomeController.Health)

	c.App.Get("/integrate", c.OAuthController.ShowIntegrate)
	c.App.Get("/hubspot/oauth/callback", c.OAuthController.Callback)
	c.App.Post("/refresh-token", c.OAuthController.RefreshToken)

	c.App.Get("/contacts", c.ContactController.ShowSearch)
	c.App.Get("/get-all-contacts", c.ContactController.ListContacts)
	c.App.Post("/get-contact", c.ContactController.GetContactByForm)
	c.App.Get("/get-contact/:id", c.ContactController.GetContact)
	c.App.Post("/create-contact", c.ContactController.CreateContact)
	c.App.Post("/update-contact", c.ContactController.UpdateContact)
}
