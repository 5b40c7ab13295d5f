package weather

import "errors"

// The error texts are shown to the visitor as they are.
var (
	ErrUnableToFetch          = errors.New("Unable to fetch weather data")
	ErrCityNotFound           = errors.New("City not found")
	ErrGeolocationDenied      = errors.New("Geolocation is not enabled or supported")
	ErrGeolocationUnsupported = errors.New("Geolocation is not supported by this browser")
)

// Message returns the visitor facing text for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCityNotFound):
		return ErrCityNotFound.Error()
	case errors.Is(err, ErrGeolocationDenied):
		return ErrGeolocationDenied.Error()
	case errors.Is(err, ErrGeolocationUnsupported):
		return ErrGeolocationUnsupported.Error()
	default:
		return ErrUnableToFetch.Error()
	}
}
