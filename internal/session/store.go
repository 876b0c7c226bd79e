package session

import (
	"github.com/gofiber/fiber/v3"
)

const (
	// CookieName holds the bearer access token; the cookie is the session.
	CookieName = "access_token"

	// CookieMaxAge is fixed at one hour, independent of the expires_in the
	// provider reports. Downstream refresh is expected to compensate.
	CookieMaxAge = 3600

	accessKeyField = "access_key"
)

// Store reads and writes the access token cookie. There is no server-side
// session object; cookie presence is the only authorization state.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Write issues the access token cookie on the response.
func (store *Store) Write(c fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Read returns the access token from the request cookie.
func (store *Store) Read(c fiber.Ctx) (string, bool) {
	token := c.Cookies(CookieName)
	return token, token != ""
}

// Resolve returns the credential for the current request: the session cookie
// when present, otherwise an explicit access_key form value for flows that
// have no session yet.
func (store *Store) Resolve(c fiber.Ctx) string {
	if token, ok := store.Read(c); ok {
		return token
	}
	return c.FormValue(accessKeyField)
}
