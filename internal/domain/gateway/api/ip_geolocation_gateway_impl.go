package api

import (
	"context"
	"fmt"
	"net/url"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

type ipGeolocationGatewayImpl struct {
	httpClient *http.Client
}

// NewIPGeolocationGateway creates a GeolocationGateway backed by an ip-api.com compatible service
func NewIPGeolocationGateway(baseUrl string, clientOptions http.ClientOptions) GeolocationGateway {
	return &ipGeolocationGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Locate looks the client address up. An empty address asks the service to use the caller address.
// Every failure is reported as ErrPositionDenied.
func (g *ipGeolocationGatewayImpl) Locate(ctx context.Context, clientIP string) (entity.Coordinates, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json/" + url.PathEscape(clientIP)).
		WithQueryParams(map[string]string{"fields": "status,message,lat,lon"}).
		WithSuccessResp(&external.IPLocationResponse{}).
		Execute()

	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: %w", ErrPositionDenied, err)
	}

	response := successResp.(*external.IPLocationResponse)
	if !response.Succeeded() {
		return entity.Coordinates{}, fmt.Errorf("%w: %s", ErrPositionDenied, response.Message)
	}

	coordinates := entity.Coordinates{Latitude: response.Lat, Longitude: response.Lon}
	if err := coordinates.Validate(); err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: %w", ErrPositionDenied, err)
	}
	return coordinates, nil
}
