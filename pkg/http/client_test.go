package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name" xml:"name,attr"`
}

type apiError struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}

type recordingLogger struct {
	mu        sync.Mutex
	requests  []string
	successes []int
	failures  []int
}

func (l *recordingLogger) LogRequest(method, url string, headers map[string]string, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, url)
}

func (l *recordingLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.successes = append(l.successes, httpStatus)
}

func (l *recordingLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, httpStatus)
}

func TestExecute_DecodesJSONAndEscapesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "go-weather", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"New York"}`))
	}))
	defer srv.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(srv.URL+"/", ClientOptions{
		Logger:              logger,
		RedactedQueryParams: []string{"appid"},
		DefaultHeaders:      map[string]string{"User-Agent": "go-weather"},
	})

	success, errResp, status, err := client.Request().
		WithPath("data/2.5/weather").
		WithQueryParams(map[string]string{"q": "New York", "appid": "secret"}).
		WithSuccessResp(&payload{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "New York", success.(*payload).Name)
	assert.Equal(t, "appid=secret&q=New+York", gotQuery)

	require.Len(t, logger.requests, 1)
	assert.Contains(t, logger.requests[0], "appid=%2A%2A%2A")
	assert.NotContains(t, logger.requests[0], "secret")
	assert.Equal(t, []int{http.StatusOK}, logger.successes)
}

func TestExecute_StatusErrorCarriesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(srv.URL, ClientOptions{Logger: logger})

	success, errResp, status, err := client.Request().
		WithSuccessResp(&payload{}).
		WithErrorResp(&apiError{}).
		Execute()

	require.Error(t, err)
	assert.Nil(t, success)
	assert.Equal(t, http.StatusNotFound, status)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "city not found", errResp.(*apiError).Message)
	assert.Equal(t, []int{http.StatusNotFound}, logger.failures)
}

func TestExecute_DecodesLatin1XML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		// "Zürich" encoded in ISO-8859-1
		_, _ = w.Write(append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><city name="Z`), append([]byte{0xFC}, []byte(`rich"/>`)...)...))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{})

	success, _, _, err := client.Request().WithSuccessResp(&payload{}).Execute()

	require.NoError(t, err)
	assert.Equal(t, "Zürich", success.(*payload).Name)
}

func TestExecute_InvalidJSONIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{})

	_, _, status, err := client.Request().WithSuccessResp(&payload{}).Execute()

	assert.Error(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestExecute_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	logger := &recordingLogger{}
	client := NewHttpClient(srv.URL, ClientOptions{Logger: logger})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, status, err := client.Request().WithContext(ctx).WithSuccessResp(&payload{}).Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, status)
	assert.Equal(t, []int{0}, logger.failures)
}

func TestExecute_RequiresPath(t *testing.T) {
	client := NewHttpClient("http://localhost", ClientOptions{})

	_, _, _, err := client.Request().WithPath("").Execute()

	assert.EqualError(t, err, "path is required")
}
