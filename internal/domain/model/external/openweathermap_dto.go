package external

import "encoding/xml"

// CurrentWeatherResponse is the JSON body of GET /data/2.5/weather.
type CurrentWeatherResponse struct {
	Name    string               `json:"name"`
	Weather []WeatherDescription `json:"weather"`
	Main    MainMeasurements     `json:"main"`
	Wind    WindMeasurements     `json:"wind"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type WeatherDescription struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainMeasurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type WindMeasurements struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// CurrentWeatherXMLResponse is the body of GET /data/2.5/weather?mode=xml.
type CurrentWeatherXMLResponse struct {
	XMLName xml.Name `xml:"current"`
	City    struct {
		Name    string `xml:"name,attr"`
		Country string `xml:"country"`
	} `xml:"city"`
	Temperature struct {
		Value float64 `xml:"value,attr"`
	} `xml:"temperature"`
	Humidity struct {
		Value float64 `xml:"value,attr"`
	} `xml:"humidity"`
	Wind struct {
		Speed struct {
			Value float64 `xml:"value,attr"`
		} `xml:"speed"`
	} `xml:"wind"`
	Weather struct {
		Number int    `xml:"number,attr"`
		Value  string `xml:"value,attr"`
		Icon   string `xml:"icon,attr"`
	} `xml:"weather"`
}

// ToCurrentWeatherResponse converts the XML rendition into the JSON shape.
// The XML body carries no condition group, so it is derived from the condition id.
func (x *CurrentWeatherXMLResponse) ToCurrentWeatherResponse() *CurrentWeatherResponse {
	resp := &CurrentWeatherResponse{
		Name: x.City.Name,
		Weather: []WeatherDescription{{
			ID:          x.Weather.Number,
			Main:        ConditionGroup(x.Weather.Number),
			Description: x.Weather.Value,
			Icon:        x.Weather.Icon,
		}},
		Main: MainMeasurements{Temp: x.Temperature.Value, Humidity: x.Humidity.Value},
		Wind: WindMeasurements{Speed: x.Wind.Speed.Value},
	}
	resp.Sys.Country = x.City.Country
	return resp
}

// ConditionGroup maps an OpenWeatherMap condition id to its group name.
func ConditionGroup(id int) string {
	switch {
	case id >= 200 && id < 300:
		return "Thunderstorm"
	case id >= 300 && id < 400:
		return "Drizzle"
	case id >= 500 && id < 600:
		return "Rain"
	case id >= 600 && id < 700:
		return "Snow"
	case id == 701:
		return "Mist"
	case id == 741:
		return "Fog"
	case id >= 700 && id < 800:
		return "Atmosphere"
	case id == 800:
		return "Clear"
	case id > 800 && id < 900:
		return "Clouds"
	}
	return ""
}

// GeocodingResponse is one element of GET /geo/1.0/direct.
type GeocodingResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// APIErrorResponse is the error body OpenWeatherMap returns, e.g. {"cod":"404","message":"city not found"}.
// cod is a string on some endpoints and a number on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
