package entity

// Condition is the first weather condition reported for a location.
type Condition struct {
	Description string `json:"description"`
	Main        string `json:"main"`
}

// WeatherReading is one snapshot of current conditions for a location.
type WeatherReading struct {
	Location     string    `json:"location"`
	Condition    Condition `json:"condition"`
	Icon         Icon      `json:"icon"`
	TemperatureC float64   `json:"temperature"`
	HumidityPct  float64   `json:"humidity"`
	WindSpeedMS  float64   `json:"windSpeed"`
}
