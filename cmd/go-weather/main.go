package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-weather/configs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/domain/usecase/widget"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// @title go-weather
// @version 1.0
// @description Current weather by city name or visitor position, with debounced city suggestions.
// @BasePath /go-weather
func main() {
	if err := resource.Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatalf("%v", err)
	}
	if err := msg.Init(configs.Env.MessagesFilePath); err != nil {
		log.Fatalf("%v", err)
	}
	log.SetLevel(configs.Env.LogLevel)
	defer log.Sync()

	appName := resource.GetStringOrDefault("app.name", configs.Env.ApplicationName)
	log.Info(msg.GetMessage("app.start", appName))

	// Init infra
	contextPath := resource.GetStringOrDefault("app.server.context-path", "/go-weather")
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	renderer, err := controller.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("%v", err)
	}
	e.Renderer = renderer
	apiGroup := e.Group(contextPath)

	redisClient := initRedis()

	// Init Gateways
	weatherGateway, weatherLimiter := initWeatherGateway(redisClient)
	geolocationGateway := initGeolocationGateway()

	var suggestionCache cache.SuggestionCache
	var healthChecker *redis.HealthChecker
	limiters := map[string]cache.RateMetrics{}
	if weatherLimiter != nil {
		limiters["openweathermap"] = weatherLimiter
	}
	if redisClient != nil {
		healthChecker = redis.NewHealthChecker(redisClient)
		if resource.GetBool("app.cache.enabled") {
			suggestionCache = cache.NewRedisSuggestionCache(redisClient)
		}
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		MinQueryLength:  resource.GetIntOrDefault("app.widget.min-query-length", 2),
		SuggestionLimit: resource.GetIntOrDefault("app.widget.suggestion-limit", 5),
	}, weatherGateway, geolocationGateway, suggestionCache)
	healthUseCase := health.NewHealthUseCase(cache.NewRedisHealthGateway(healthChecker, limiters))

	registry := widget.NewRegistry(widget.SessionConfig{
		Debounce:       resource.GetDurationOrDefault("app.widget.debounce", widget.DefaultSessionConfig().Debounce),
		MinQueryLength: resource.GetIntOrDefault("app.widget.min-query-length", 2),
	}, resource.GetDurationOrDefault("app.widget.session.idle-ttl", defaultIdleTTL), weatherUseCase)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	widgetController := controller.NewWidgetController(apiGroup, contextPath, middleware.WidgetSession(registry, contextPath))

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	widgetController.InitWidgetRoutes()
	controller.InitSwaggerRoutes(apiGroup)

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(registry, resource.GetStringOrDefault("app.widget.session.sweep-cron", "@every 1m"))
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", "app.widget.session.sweep-cron", err))
	}
	healthScheduler, err := schedule.NewHealthScheduler(healthUseCase, resource.GetDurationOrDefault("app.health.check-interval", defaultHealthInterval))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := healthScheduler.InitHealthScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", "app.health.check-interval", err))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("%v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info(msg.GetMessage("app.stopping", appName))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", defaultShutdownTimeout))
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	sessionScheduler.Stop()
	healthScheduler.Stop()
	registry.CloseAll()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}

// initRedis connects to Redis when enabled. An unreachable Redis is logged and disables
// every Redis backed component instead of stopping the application.
func initRedis() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		log.Info(msg.GetMessage("app.redis-disabled"))
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.SuggestionCacheName, resource.GetDurationOrDefault("app.cache.suggestions-ttl", defaultSuggestionsTTL))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", "app.redis", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Warn(msg.GetMessage("app.redis-unavailable", config.Addr(), err))
		_ = client.Close()
		return nil
	}
	return client
}

// initWeatherGateway returns the OpenWeatherMap gateway and, when a call budget is configured,
// the limiter guarding it.
func initWeatherGateway(redisClient *redis.Client) (api.WeatherGateway, *redis.RateLimiter) {
	gateway := api.NewWeatherGateway(
		resource.GetString("app.openweathermap.base-url"),
		resource.GetString("app.openweathermap.api-key"),
		resource.GetStringOrDefault("app.openweathermap.mode", api.ModeJSON),
		httpclient.ClientOptions{
			ReadTimeout:    resource.GetDurationOrDefault("app.openweathermap.timeout", defaultOutboundTimeout),
			Logger:         api.NewHTTPLogger("openweathermap"),
			DefaultHeaders: userAgentHeader(),
		},
	)

	maxCalls := resource.GetInt("app.openweathermap.max-calls-per-minute")
	if redisClient == nil || maxCalls <= 0 {
		return gateway, nil
	}

	limiter, err := redis.NewRateLimiter(redisClient, "openweathermap",
		redis.NewRateLimiterOptions().
			WithMaxTransactionsPerMinute(maxCalls).
			WithNamespace(resource.GetStringOrDefault("app.name", "go-weather")))
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", "app.openweathermap.max-calls-per-minute", err))
	}
	return api.NewRateLimitedWeatherGateway(gateway, limiter), limiter
}

func initGeolocationGateway() api.GeolocationGateway {
	switch provider := resource.GetStringOrDefault("app.geolocation.provider", api.LocatorNone); provider {
	case api.LocatorIP:
		return api.NewIPGeolocationGateway(resource.GetString("app.geolocation.base-url"), httpclient.ClientOptions{
			ReadTimeout:    resource.GetDurationOrDefault("app.geolocation.timeout", defaultOutboundTimeout),
			Logger:         api.NewHTTPLogger("geolocation"),
			DefaultHeaders: userAgentHeader(),
		})
	case api.LocatorStatic:
		coordinates := entity.Coordinates{
			Latitude:  resource.GetFloat64("app.geolocation.latitude"),
			Longitude: resource.GetFloat64("app.geolocation.longitude"),
		}
		if err := coordinates.Validate(); err != nil {
			log.Fatal(msg.GetMessage("app.config-invalid", "app.geolocation", err))
		}
		return api.NewStaticGeolocationGateway(coordinates)
	case api.LocatorNone:
		return api.NewUnsupportedGeolocationGateway()
	default:
		log.Fatal(msg.GetMessage("app.config-invalid", "app.geolocation.provider", provider))
		return nil
	}
}

func userAgentHeader() map[string]string {
	return map[string]string{"User-Agent": resource.GetStringOrDefault("app.name", configs.Env.ApplicationName)}
}
