package controller

import (
	"net/http"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"

	"github.com/labstack/echo/v4"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
}

// CheckHealth godoc
// @Summary Application health
// @Description Status of the application and of its Redis connection
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Application is up"
// @Failure 503 {object} model.HealthResponse "A component is down"
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth()

		if healthResponse.Status == model.StatusDown {
			return c.JSON(http.StatusServiceUnavailable, healthResponse)
		}
		return c.JSON(http.StatusOK, healthResponse)
	}
}
