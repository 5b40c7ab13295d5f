package api

import (
	"context"
	"fmt"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	geocodingPath      = "/geo/1.0/direct"

	ModeJSON = "json"
	ModeXML  = "xml"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	mode       string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// mode selects the current weather body format, json or xml.
func NewWeatherGateway(baseUrl string, apiKey string, mode string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.RedactedQueryParams = append(clientOptions.RedactedQueryParams, "appid")
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	if mode != ModeXML {
		mode = ModeJSON
	}

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
		mode:       mode,
	}
}

// GetCurrentByCoordinates gets current conditions at a position
func (w *weatherGatewayImpl) GetCurrentByCoordinates(ctx context.Context, coordinates entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	return w.getCurrent(ctx, map[string]string{
		"lat": strconv.FormatFloat(coordinates.Latitude, 'f', -1, 64),
		"lon": strconv.FormatFloat(coordinates.Longitude, 'f', -1, 64),
	})
}

// GetCurrentByCity gets current conditions for a city name
func (w *weatherGatewayImpl) GetCurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	return w.getCurrent(ctx, map[string]string{"q": city})
}

func (w *weatherGatewayImpl) getCurrent(ctx context.Context, query map[string]string) (*external.CurrentWeatherResponse, error) {
	query["appid"] = w.apiKey
	query["units"] = "metric"

	var success any = &external.CurrentWeatherResponse{}
	if w.mode == ModeXML {
		query["mode"] = ModeXML
		success = &external.CurrentWeatherXMLResponse{}
	}

	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(query).
		WithSuccessResp(success).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		switch response := successResp.(type) {
		case *external.CurrentWeatherXMLResponse:
			return response.ToCurrentWeatherResponse(), nil
		case *external.CurrentWeatherResponse:
			return response, nil
		}
		return nil, fmt.Errorf("unexpected current weather response %T", successResp)
	}

	return nil, apiError(err, errResp)
}

// SearchCities resolves a partial city name into at most limit places
func (w *weatherGatewayImpl) SearchCities(ctx context.Context, query string, limit int) ([]external.GeocodingResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(geocodingPath).
		WithQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
			"appid": w.apiKey,
		}).
		WithSuccessResp(&[]external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*[]external.GeocodingResponse)
		return *response, nil
	}

	return nil, apiError(err, errResp)
}

// apiError keeps the transport error in the chain and adds the API message when one was decoded.
func apiError(err error, errResp any) error {
	if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse.Message != "" {
		return fmt.Errorf("openweathermap: %s: %w", errorResponse.Message, err)
	}
	return fmt.Errorf("openweathermap: %w", err)
}
