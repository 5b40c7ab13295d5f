package api

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPGeolocationGateway_Success(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/json/203.0.113.7", r.URL.Path)
		assert.Equal(t, "status,message,lat,lon", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","lat":48.8566,"lon":2.3522}`))
	}))
	defer server.Close()

	coordinates, err := NewIPGeolocationGateway(server.URL, http.ClientOptions{}).Locate(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, coordinates)
}

func TestIPGeolocationGateway_Fail(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	_, err := NewIPGeolocationGateway(server.URL, http.ClientOptions{}).Locate(context.Background(), "10.0.0.1")

	assert.ErrorIs(t, err, ErrPositionDenied)
	assert.Contains(t, err.Error(), "private range")
}

func TestIPGeolocationGateway_TransportFailure(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	server.Close()

	_, err := NewIPGeolocationGateway(server.URL, http.ClientOptions{}).Locate(context.Background(), "")

	assert.ErrorIs(t, err, ErrPositionDenied)
}

func TestStaticAndUnsupportedGeolocationGateways(t *testing.T) {
	coordinates, err := NewStaticGeolocationGateway(entity.Coordinates{Latitude: 1, Longitude: 2}).Locate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Latitude: 1, Longitude: 2}, coordinates)

	_, err = NewUnsupportedGeolocationGateway().Locate(context.Background(), "")
	assert.ErrorIs(t, err, ErrLocatorUnsupported)
}
