package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/application/middleware"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/widget"
	"go-weather/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WidgetController struct {
	api      *echo.Group
	basePath string
	session  echo.MiddlewareFunc
}

// NewWidgetController serves, under basePath, the widget of the session resolved by sessionMiddleware
func NewWidgetController(api *echo.Group, basePath string, sessionMiddleware echo.MiddlewareFunc) *WidgetController {
	return &WidgetController{api: api, basePath: basePath, session: sessionMiddleware}
}

// InitWidgetRoutes initializes widget routes
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.GET("", controller.RenderPage, controller.session)
	controller.api.GET("/", controller.RenderPage, controller.session)
	controller.api.GET("/widget", controller.GetWidget, controller.session)
	controller.api.PUT("/widget/city", controller.SetCity, controller.session)
	controller.api.POST("/widget/search", controller.Search, controller.session)
	controller.api.POST("/widget/suggestions/:index", controller.SelectSuggestion, controller.session)
}

// RenderPage renders the widget as HTML, fetching the visitor's local weather on first display
func (controller *WidgetController) RenderPage(c echo.Context) error {
	session := middleware.SessionFrom(c)
	session.Bootstrap(c.Request().Context())

	return c.Render(http.StatusOK, widgetTemplate, PageData{
		BasePath: controller.basePath,
		View:     session.View(),
	})
}

// GetWidget godoc
// @Summary Get widget state
// @Description Snapshot of the visitor's widget. The first call fetches the weather at the visitor position
// @Tags widget
// @Produce json
// @Success 200 {object} model.WidgetView "Widget state"
// @Router /widget [get]
func (controller *WidgetController) GetWidget(c echo.Context) error {
	session := middleware.SessionFrom(c)
	session.Bootstrap(c.Request().Context())

	return c.JSON(http.StatusOK, session.View())
}

// SetCity godoc
// @Summary Type into the city field
// @Description Sets the city text. Suggestions are fetched once typing pauses
// @Tags widget
// @Accept json
// @Produce json
// @Param input body model.CityInputDTO true "City text"
// @Success 202 {object} model.WidgetView "Widget state"
// @Failure 400 {object} model.ErrorDTO "Invalid request body"
// @Router /widget/city [put]
func (controller *WidgetController) SetCity(c echo.Context) error {
	var dto model.CityInputDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorDTO{Error: "Invalid request body"})
	}

	session := middleware.SessionFrom(c)
	session.Input(dto.Value)

	return c.JSON(http.StatusAccepted, session.View())
}

// Search godoc
// @Summary Search the typed city
// @Description Fetches the weather for the current city text. Failures are reported in the error field
// @Tags widget
// @Produce json
// @Success 200 {object} model.WidgetView "Widget state"
// @Router /widget/search [post]
func (controller *WidgetController) Search(c echo.Context) error {
	session := middleware.SessionFrom(c)
	_ = session.Search(c.Request().Context())

	return c.JSON(http.StatusOK, session.View())
}

// SelectSuggestion godoc
// @Summary Select a suggestion
// @Description Clears the suggestions, sets the city text to the chosen name and fetches its weather
// @Tags widget
// @Produce json
// @Param index path int true "Suggestion index"
// @Success 200 {object} model.WidgetView "Widget state"
// @Failure 400 {object} model.ErrorDTO "Invalid index"
// @Failure 404 {object} model.ErrorDTO "Suggestion not found"
// @Router /widget/suggestions/{index} [post]
func (controller *WidgetController) SelectSuggestion(c echo.Context) error {
	index, err := numberutils.ToIntWithError(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorDTO{Error: "index must be an integer"})
	}

	session := middleware.SessionFrom(c)
	if err := session.Select(c.Request().Context(), index); errors.Is(err, widget.ErrSuggestionNotFound) {
		return c.JSON(http.StatusNotFound, model.ErrorDTO{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, session.View())
}
