package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/usecase/widget"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopUseCase struct{}

func (nopUseCase) FetchByCoordinates(context.Context, entity.Coordinates) (*entity.WeatherReading, error) {
	return nil, nil
}
func (nopUseCase) FetchByCity(context.Context, string) (*entity.WeatherReading, error) {
	return nil, nil
}
func (nopUseCase) FetchByVisitorPosition(context.Context, string) (*entity.WeatherReading, error) {
	return nil, nil
}
func (nopUseCase) SuggestCities(context.Context, string) []entity.CitySuggestion { return nil }

func TestWidgetSession(t *testing.T) {
	registry := widget.NewRegistry(widget.DefaultSessionConfig(), time.Minute, nopUseCase{})
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/go-weather/widget", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionFrom(c).ID())
	}, WidgetSession(registry, "/go-weather"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/go-weather/widget", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "/go-weather", cookies[0].Path)
	assert.Equal(t, cookies[0].Value, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/go-weather/widget", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, cookies[0].Value, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, registry.Len())
}

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	for path, skip := range map[string]bool{
		"/go-weather/health":             true,
		"/go-weather/swagger/index.html": true,
		"/go-weather/widget":             false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, skip, skipRequestLog(c), path)
	}
}
