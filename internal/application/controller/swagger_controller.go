package controller

import (
	_ "go-weather/docs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// InitSwaggerRoutes serves the OpenAPI UI and document under /swagger/
func InitSwaggerRoutes(api *echo.Group) {
	api.GET("/swagger/*", echoSwagger.WrapHandler)
}
