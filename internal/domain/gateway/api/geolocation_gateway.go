package api

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
)

var (
	// ErrPositionDenied means the locator answered but refused to give a position.
	ErrPositionDenied = errors.New("position denied")
	// ErrLocatorUnsupported means no locator is available at all.
	ErrLocatorUnsupported = errors.New("locator unsupported")
)

const (
	LocatorIP     = "ip"
	LocatorStatic = "static"
	LocatorNone   = "none"
)

// GeolocationGateway resolves the position of a visitor
type GeolocationGateway interface {
	// Locate returns the position of the visitor behind clientIP
	Locate(ctx context.Context, clientIP string) (entity.Coordinates, error)
}

type staticGeolocationGateway struct {
	coordinates entity.Coordinates
}

// NewStaticGeolocationGateway places every visitor at the given coordinates.
func NewStaticGeolocationGateway(coordinates entity.Coordinates) GeolocationGateway {
	return &staticGeolocationGateway{coordinates: coordinates}
}

func (g *staticGeolocationGateway) Locate(context.Context, string) (entity.Coordinates, error) {
	return g.coordinates, nil
}

type unsupportedGeolocationGateway struct{}

// NewUnsupportedGeolocationGateway is used when no locator is configured.
func NewUnsupportedGeolocationGateway() GeolocationGateway {
	return unsupportedGeolocationGateway{}
}

func (unsupportedGeolocationGateway) Locate(context.Context, string) (entity.Coordinates, error) {
	return entity.Coordinates{}, ErrLocatorUnsupported
}
