package model

import (
	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"
)

// WeatherView holds the rendered lines of a reading
type WeatherView struct {
	Location    string      `json:"location" example:"Paris"`
	Icon        entity.Icon `json:"icon" example:"sunny"`
	Description string      `json:"description" example:"clear sky"`
	Temperature string      `json:"temperature" example:"Temperature: 18°C"`
	Humidity    string      `json:"humidity" example:"Humidity: 40%"`
	WindSpeed   string      `json:"windSpeed" example:"Wind Speed: 3 m/s"`
}

// NewWeatherView renders reading. A nil reading renders nil.
func NewWeatherView(reading *entity.WeatherReading) *WeatherView {
	if reading == nil {
		return nil
	}
	return &WeatherView{
		Location:    reading.Location,
		Icon:        reading.Icon,
		Description: reading.Condition.Description,
		Temperature: "Temperature: " + numberutils.FormatFloat(reading.TemperatureC) + "°C",
		Humidity:    "Humidity: " + numberutils.FormatFloat(reading.HumidityPct) + "%",
		WindSpeed:   "Wind Speed: " + numberutils.FormatFloat(reading.WindSpeedMS) + " m/s",
	}
}

// Lines returns the view in display order.
func (v *WeatherView) Lines() []string {
	return []string{v.Location, string(v.Icon), v.Description, v.Temperature, v.Humidity, v.WindSpeed}
}

// WidgetView is a snapshot of one widget session
type WidgetView struct {
	City        string                  `json:"city"`
	Weather     *WeatherView            `json:"weather"`
	Error       *string                 `json:"error"`
	Suggestions []entity.CitySuggestion `json:"suggestions"`
	// Pending is true while a suggestion query for City is scheduled or in flight
	Pending bool `json:"pending"`
}
