package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-pro/internal/application/store"
	"github.com/tu-usuario/catalogo-pro/internal/domain/entity"
)

const (
	// SessionCookie cookie que identifica la sesión del cliente.
	SessionCookie = "session_id"
	// SessionHeader cabecera alternativa para clientes sin cookies.
	SessionHeader = "X-Session-ID"
	// ThemeCookie cookie espejo del tema vigente, para que las hojas de estilo
	// reaccionen sin consultar el API (el "reflejo al documento").
	ThemeCookie = "theme"

	localsStoreKey   = "session_store"
	localsSessionKey = "session_id"
)

// SessionMiddleware resuelve la sesión del cliente: toma el id de la cookie o
// la cabecera, emite uno nuevo si no hay, e hidrata el contenedor de estado de
// la sesión. La preferencia de tema del entorno del cliente llega por el client
// hint Sec-CH-Prefers-Color-Scheme y solo aplica en la primera hidratación.
func SessionMiddleware(sessions *store.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			sid = c.Get(SessionHeader)
		}
		if sid == "" {
			sid = uuid.New().String()
		}

		preferred, _ := entity.ParseTheme(c.Get("Sec-CH-Prefers-Color-Scheme"))
		st := sessions.Get(c.Context(), sid, preferred)

		c.Locals(localsSessionKey, sid)
		c.Locals(localsStoreKey, st)

		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    sid,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		err := c.Next()

		// Espejo del tema tras la petición: cualquier mutación del slice queda
		// reflejada en la cookie que leen las hojas de estilo.
		c.Cookie(&fiber.Cookie{
			Name:     ThemeCookie,
			Value:    string(st.Theme()),
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return err
	}
}

// GetSessionStore devuelve el contenedor de estado de la sesión actual.
func GetSessionStore(c *fiber.Ctx) *store.Store {
	st, _ := c.Locals(localsStoreKey).(*store.Store)
	return st
}

// GetSessionID devuelve el id de sesión de la petición actual.
func GetSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localsSessionKey).(string)
	return sid
}
