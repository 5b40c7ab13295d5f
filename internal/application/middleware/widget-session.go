package middleware

import (
	"net/http"

	"go-weather/internal/domain/usecase/widget"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "go_weather_session"
	sessionContextKey = "widget_session"
)

// WidgetSession resolves the visitor's widget session from its cookie, creating one when
// the cookie is missing or unknown, and stores it in the echo context.
func WidgetSession(registry *widget.Registry, cookiePath string) echo.MiddlewareFunc {
	if cookiePath == "" {
		cookiePath = "/"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				id = cookie.Value
			}

			session, created := registry.GetOrCreate(id, c.RealIP())
			if created {
				log.Info(msg.GetMessage("widget.session-created", session.ID()), zap.String("session_id", session.ID()))
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    session.ID(),
					Path:     cookiePath,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by WidgetSession.
func SessionFrom(c echo.Context) *widget.Session {
	session, _ := c.Get(sessionContextKey).(*widget.Session)
	return session
}
