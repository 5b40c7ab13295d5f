package api

import (
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type zapHTTPLogger struct {
	component string
}

// NewHTTPLogger logs outbound calls of component through the application logger.
// URLs arrive already redacted by the HTTP client.
func NewHTTPLogger(component string) http.HTTPLogger {
	return &zapHTTPLogger{component: component}
}

func (l *zapHTTPLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug(msg.GetMessage("http.request", l.component, method, url),
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug(msg.GetMessage("http.response", l.component, method, url, httpStatus, latency),
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *zapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("http.response-fail", l.component, method, url, httpStatus, latency),
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err),
	)
}
