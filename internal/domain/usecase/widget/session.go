package widget

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/bep/debounce"
	"go.uber.org/zap"
)

// ErrSuggestionNotFound is returned by Select for an index outside the current list.
var ErrSuggestionNotFound = errors.New("suggestion not found")

// SessionConfig holds the tunables of a widget session
type SessionConfig struct {
	// Debounce is the quiet period after the last keystroke before suggestions are fetched
	Debounce time.Duration
	// MinQueryLength is the longest input that is still too short to search
	MinQueryLength int
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{Debounce: 300 * time.Millisecond, MinQueryLength: 2}
}

// Session is the state of one visitor's widget.
//
// Every suggestion query gets a sequence number and its own context. Issuing
// a query cancels the previous one and a result is applied only while its
// sequence number is the latest, so a slow response never overwrites a newer one.
type Session struct {
	id       string
	clientIP string
	config   SessionConfig
	useCase  weather.UseCase
	debounce func(func())
	now      func() time.Time

	bootstrap sync.Once

	mu          sync.Mutex
	city        string
	reading     *entity.WeatherReading
	errMessage  string
	suggestions []entity.CitySuggestion
	seq         uint64
	pending     bool
	cancel      context.CancelFunc
	lastSeen    time.Time
	closed      bool
}

// NewSession creates the widget state of one visitor
func NewSession(id string, clientIP string, config SessionConfig, useCase weather.UseCase) *Session {
	return &Session{
		id:          id,
		clientIP:    clientIP,
		config:      config,
		useCase:     useCase,
		debounce:    debounce.New(config.Debounce),
		now:         time.Now,
		lastSeen:    time.Now(),
		suggestions: []entity.CitySuggestion{},
	}
}

func (s *Session) ID() string {
	return s.id
}

// Bootstrap fetches the conditions at the visitor position. Only the first call does anything.
func (s *Session) Bootstrap(ctx context.Context) {
	s.bootstrap.Do(func() {
		log.Debug(msg.GetMessage("widget.bootstrap", s.id), zap.String("session_id", s.id))
		reading, err := s.useCase.FetchByVisitorPosition(ctx, s.clientIP)
		s.applyReading(reading, err)
	})
}

// Input sets the city text and schedules a debounced suggestion query.
// Input too short to search clears the suggestions at once and drops any pending query.
// The view reports pending from here until the result of the latest query is applied.
func (s *Session) Input(value string) {
	s.mu.Lock()
	s.touch()
	s.city = value
	seq := s.invalidateLocked()

	if utf8.RuneCountInString(value) <= s.config.MinQueryLength {
		s.suggestions = []entity.CitySuggestion{}
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.mu.Unlock()

	s.debounce(func() { s.suggest(seq, value) })
}

// Search fetches the conditions for the current city text.
func (s *Session) Search(ctx context.Context) error {
	s.mu.Lock()
	s.touch()
	city := s.city
	s.mu.Unlock()

	return s.fetchCity(ctx, city)
}

// Select picks the suggestion at index: the list is cleared, the city text becomes
// the suggestion name and the conditions for that name are fetched.
func (s *Session) Select(ctx context.Context, index int) error {
	s.mu.Lock()
	s.touch()
	if index < 0 || index >= len(s.suggestions) {
		s.mu.Unlock()
		return ErrSuggestionNotFound
	}
	chosen := s.suggestions[index]
	s.suggestions = []entity.CitySuggestion{}
	s.city = chosen.Name
	s.invalidateLocked()
	s.mu.Unlock()

	return s.fetchCity(ctx, chosen.Name)
}

// View returns a snapshot of the widget.
func (s *Session) View() model.WidgetView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	view := model.WidgetView{
		City:        s.city,
		Weather:     model.NewWeatherView(s.reading),
		Suggestions: append([]entity.CitySuggestion{}, s.suggestions...),
		Pending:     s.pending,
	}
	if s.errMessage != "" {
		message := s.errMessage
		view.Error = &message
	}
	return view
}

// Close cancels in-flight suggestion work. A closed session ignores late results.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.invalidateLocked()
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) suggest(seq uint64, query string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	suggestions := s.useCase.SuggestCities(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	if s.closed || seq != s.seq {
		log.Debug(msg.GetMessage("widget.stale-suggestions", s.id, query), zap.String("session_id", s.id), zap.Uint64("seq", seq))
		return
	}
	s.cancel = nil
	s.pending = false
	s.suggestions = suggestions
}

func (s *Session) fetchCity(ctx context.Context, city string) error {
	reading, err := s.useCase.FetchByCity(ctx, city)
	s.applyReading(reading, err)
	return err
}

// applyReading keeps at most one of reading and error message set.
func (s *Session) applyReading(reading *entity.WeatherReading, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.reading = nil
		s.errMessage = weather.Message(err)
		return
	}
	s.reading = reading
	s.errMessage = ""
}

// invalidateLocked issues a new sequence number and cancels the query in flight.
// The session is no longer pending until a new query is scheduled.
func (s *Session) invalidateLocked() uint64 {
	s.seq++
	s.pending = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return s.seq
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}
