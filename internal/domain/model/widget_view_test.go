package model

import (
	"testing"

	"go-weather/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeatherView(t *testing.T) {
	view := NewWeatherView(&entity.WeatherReading{
		Location:     "Paris",
		Condition:    entity.Condition{Description: "clear sky", Main: "Clear"},
		Icon:         entity.IconSunny,
		TemperatureC: 18,
		HumidityPct:  40,
		WindSpeedMS:  3,
	})

	require.NotNil(t, view)
	assert.Equal(t, []string{
		"Paris",
		"sunny",
		"clear sky",
		"Temperature: 18°C",
		"Humidity: 40%",
		"Wind Speed: 3 m/s",
	}, view.Lines())
}

func TestNewWeatherView_Fractions(t *testing.T) {
	view := NewWeatherView(&entity.WeatherReading{TemperatureC: -1.5, WindSpeedMS: 3.6})

	assert.Equal(t, "Temperature: -1.5°C", view.Temperature)
	assert.Equal(t, "Wind Speed: 3.6 m/s", view.WindSpeed)
}

func TestNewWeatherView_Nil(t *testing.T) {
	assert.Nil(t, NewWeatherView(nil))
}
