package widget

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/usecase/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	mu            sync.Mutex
	queries       []string
	results       map[string][]entity.CitySuggestion
	release       map[string]chan struct{}
	canceled      map[string]bool
	started       chan string
	bootstrapErr  error
	bootstrapRuns atomic.Int32
}

func newFakeUseCase() *fakeUseCase {
	return &fakeUseCase{
		results: map[string][]entity.CitySuggestion{
			"Paris": {{Name: "Paris", Country: "FR"}, {Name: "Paris", Country: "US", State: "Texas"}},
			"Par":   {{Name: "Parma", Country: "IT"}},
			"Lis":   {{Name: "Lisbon", Country: "PT"}},
		},
		release:  map[string]chan struct{}{},
		canceled: map[string]bool{},
		started:  make(chan string, 10),
	}
}

func (f *fakeUseCase) FetchByCoordinates(context.Context, entity.Coordinates) (*entity.WeatherReading, error) {
	return nil, weather.ErrUnableToFetch
}

func (f *fakeUseCase) FetchByCity(_ context.Context, city string) (*entity.WeatherReading, error) {
	if city == "Paris" {
		return &entity.WeatherReading{Location: "Paris", Icon: entity.IconSunny, TemperatureC: 18}, nil
	}
	return nil, weather.ErrCityNotFound
}

func (f *fakeUseCase) FetchByVisitorPosition(context.Context, string) (*entity.WeatherReading, error) {
	f.bootstrapRuns.Add(1)
	if f.bootstrapErr != nil {
		return nil, f.bootstrapErr
	}
	return &entity.WeatherReading{Location: "Lisbon", Icon: entity.IconCloud}, nil
}

func (f *fakeUseCase) SuggestCities(ctx context.Context, query string) []entity.CitySuggestion {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	release := f.release[query]
	f.mu.Unlock()

	f.started <- query
	if release != nil {
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.canceled[query] = ctx.Err() != nil
	return f.results[query]
}

func (f *fakeUseCase) hold(query string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.release[query] = ch
	return ch
}

func (f *fakeUseCase) queried() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.queries...)
}

func (f *fakeUseCase) wasCanceled(query string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canceled[query]
}

func testConfig() SessionConfig {
	return SessionConfig{Debounce: 30 * time.Millisecond, MinQueryLength: 2}
}

func waitStarted(t *testing.T, useCase *fakeUseCase, query string) {
	t.Helper()
	select {
	case got := <-useCase.started:
		require.Equal(t, query, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("query %q never started", query)
	}
}

func TestSession_InputIsDebounced(t *testing.T) {
	useCase := newFakeUseCase()
	session := NewSession("s1", "", testConfig(), useCase)

	for _, value := range []string{"P", "Pa", "Par", "Pari", "Paris"} {
		session.Input(value)
	}

	waitStarted(t, useCase, "Paris")
	assert.Eventually(t, func() bool { return len(session.View().Suggestions) == 2 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Paris"}, useCase.queried())
	assert.Equal(t, "Paris", session.View().City)
}

func TestSession_ShortInputClearsSuggestionsAndDropsPendingQuery(t *testing.T) {
	useCase := newFakeUseCase()
	session := NewSession("s1", "", testConfig(), useCase)

	session.Input("Paris")
	waitStarted(t, useCase, "Paris")
	require.Eventually(t, func() bool { return len(session.View().Suggestions) == 2 }, 2*time.Second, 5*time.Millisecond)

	session.Input("Lis")
	session.Input("Li")

	assert.Empty(t, session.View().Suggestions)
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, []string{"Paris"}, useCase.queried())
	assert.Empty(t, session.View().Suggestions)
}

func TestSession_StaleSuggestionsAreDiscarded(t *testing.T) {
	useCase := newFakeUseCase()
	releasePar := useCase.hold("Par")
	releaseLis := useCase.hold("Lis")
	session := NewSession("s1", "", testConfig(), useCase)

	session.Input("Par")
	waitStarted(t, useCase, "Par")

	session.Input("Lis")
	waitStarted(t, useCase, "Lis")

	close(releaseLis)
	require.Eventually(t, func() bool {
		suggestions := session.View().Suggestions
		return len(suggestions) == 1 && suggestions[0].Name == "Lisbon"
	}, 2*time.Second, 5*time.Millisecond)

	close(releasePar)
	require.Eventually(t, func() bool { return useCase.wasCanceled("Par") }, 2*time.Second, 5*time.Millisecond)

	suggestions := session.View().Suggestions
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Lisbon", suggestions[0].Name)
	assert.False(t, useCase.wasCanceled("Lis"))
}

func TestSession_PendingUntilSlowQueryIsApplied(t *testing.T) {
	useCase := newFakeUseCase()
	release := useCase.hold("Par")
	session := NewSession("s1", "", testConfig(), useCase)

	assert.False(t, session.View().Pending)

	session.Input("Par")
	assert.True(t, session.View().Pending)

	waitStarted(t, useCase, "Par")
	time.Sleep(60 * time.Millisecond)
	view := session.View()
	assert.True(t, view.Pending)
	assert.Empty(t, view.Suggestions)

	close(release)
	require.Eventually(t, func() bool { return !session.View().Pending }, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, session.View().Suggestions, 1)

	session.Input("Lis")
	assert.True(t, session.View().Pending)
	session.Input("L")
	assert.False(t, session.View().Pending)
}

func TestSession_SelectClearsSuggestionsAndFetches(t *testing.T) {
	useCase := newFakeUseCase()
	session := NewSession("s1", "", testConfig(), useCase)

	session.Input("Paris")
	waitStarted(t, useCase, "Paris")
	require.Eventually(t, func() bool { return len(session.View().Suggestions) == 2 }, 2*time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, session.Select(context.Background(), 2), ErrSuggestionNotFound)
	assert.ErrorIs(t, session.Select(context.Background(), -1), ErrSuggestionNotFound)

	require.NoError(t, session.Select(context.Background(), 0))

	view := session.View()
	assert.Equal(t, "Paris", view.City)
	assert.Empty(t, view.Suggestions)
	require.NotNil(t, view.Weather)
	assert.Equal(t, "Temperature: 18°C", view.Weather.Temperature)
	assert.Nil(t, view.Error)
}

func TestSession_SearchKeepsWeatherXorError(t *testing.T) {
	session := NewSession("s1", "", testConfig(), newFakeUseCase())

	session.Input("Paris")
	require.NoError(t, session.Search(context.Background()))
	view := session.View()
	assert.NotNil(t, view.Weather)
	assert.Nil(t, view.Error)

	session.Input("Zzzzz")
	assert.ErrorIs(t, session.Search(context.Background()), weather.ErrCityNotFound)
	view = session.View()
	assert.Nil(t, view.Weather)
	require.NotNil(t, view.Error)
	assert.Equal(t, "City not found", *view.Error)

	session.Input("")
	assert.Error(t, session.Search(context.Background()))
	assert.Equal(t, "City not found", *session.View().Error)
}

func TestSession_BootstrapRunsOnce(t *testing.T) {
	useCase := newFakeUseCase()
	session := NewSession("s1", "", testConfig(), useCase)

	session.Bootstrap(context.Background())
	session.Bootstrap(context.Background())

	assert.Equal(t, int32(1), useCase.bootstrapRuns.Load())
	require.NotNil(t, session.View().Weather)
	assert.Equal(t, entity.IconCloud, session.View().Weather.Icon)
}

func TestSession_BootstrapErrors(t *testing.T) {
	cases := map[error]string{
		weather.ErrGeolocationDenied:      "Geolocation is not enabled or supported",
		weather.ErrGeolocationUnsupported: "Geolocation is not supported by this browser",
		weather.ErrUnableToFetch:          "Unable to fetch weather data",
	}

	for err, want := range cases {
		useCase := newFakeUseCase()
		useCase.bootstrapErr = err
		session := NewSession("s1", "", testConfig(), useCase)

		session.Bootstrap(context.Background())

		view := session.View()
		assert.Nil(t, view.Weather)
		require.NotNil(t, view.Error)
		assert.Equal(t, want, *view.Error)
	}
}

func TestSession_CloseIgnoresLateResults(t *testing.T) {
	useCase := newFakeUseCase()
	release := useCase.hold("Lis")
	session := NewSession("s1", "", testConfig(), useCase)

	session.Input("Lis")
	waitStarted(t, useCase, "Lis")
	session.Close()
	close(release)

	require.Eventually(t, func() bool { return useCase.wasCanceled("Lis") }, 2*time.Second, 5*time.Millisecond)
	assert.Empty(t, session.View().Suggestions)
	assert.False(t, session.View().Pending)
}
