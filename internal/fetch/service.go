package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/update"
)

// HTTP defaults
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "cpnews/1.0 (+https://github.com/cpnews/cpnews)"
	MaxBodyBytes     = 4 << 20
)

// Service handles fetch operations
type Service struct {
	client    *http.Client
	providers feed.Set
	cache     Saver
	out       update.Sender
	userAgent string

	mu          sync.Mutex
	activeCount int
	wg          sync.WaitGroup
}

// NewService creates a new fetch service. A nil client gets DefaultTimeout;
// a nil cache disables persistence.
func NewService(client *http.Client, providers feed.Set, cache Saver, out update.Sender) *Service {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Service{
		client:    client,
		providers: providers,
		cache:     cache,
		out:       out,
		userAgent: DefaultUserAgent,
	}
}

// SetUserAgent overrides the User-Agent header
func (s *Service) SetUserAgent(ua string) {
	if ua != "" {
		s.userAgent = ua
	}
}

// Dispatch spawns a worker for locale and returns the job id immediately
func (s *Service) Dispatch(locale model.Locale) string {
	jobID := uuid.NewString()

	provider, ok := s.providers.For(locale)
	if !ok {
		logger.Errorf("[fetch] job %s: no provider for locale %q", jobID, locale)
		s.send(update.ErrorMessage(jobID, locale, fmt.Errorf("no provider for locale %q", locale)))
		return jobID
	}

	s.wg.Add(1)
	go s.run(jobID, provider)
	return jobID
}

// run executes one fetch and reports its outcome
func (s *Service) run(jobID string, provider feed.Provider) {
	s.mu.Lock()
	s.activeCount++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.activeCount--
		s.mu.Unlock()
		s.wg.Done()
	}()

	started := time.Now()
	logger.Infof("[fetch] job %s: %s GET %s", jobID, provider.Name(), provider.Endpoint())

	items, err := s.Fetch(context.Background(), provider)
	if err != nil {
		logger.Warnf("[fetch] job %s failed after %s: %v", jobID, time.Since(started).Round(time.Millisecond), err)
		s.send(update.ErrorMessage(jobID, provider.Locale(), err))
		return
	}

	logger.Infof("[fetch] job %s: %d items in %s", jobID, len(items), time.Since(started).Round(time.Millisecond))
	s.send(update.ItemsMessage(jobID, provider.Locale(), items))
}

// Fetch performs one GET, normalizes the body and saves non-empty results
func (s *Service) Fetch(ctx context.Context, provider feed.Provider) ([]model.NewsItem, error) {
	name := provider.Name()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.Endpoint(), nil)
	if err != nil {
		return nil, feed.NewTransportError(name, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, feed.NewTransportError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, feed.NewTransportError(name, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, feed.NewTransportError(name, fmt.Errorf("read body: %w", err))
	}
	if len(body) > MaxBodyBytes {
		return nil, feed.NewTransportError(name, fmt.Errorf("response exceeds %d bytes", MaxBodyBytes))
	}

	items, err := provider.Normalize(body)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 && s.cache != nil {
		if err := s.cache.Save(provider.Locale(), items); err != nil {
			logger.Warnf("[fetch] %s: cache save failed: %v", name, err)
		}
	}

	return items, nil
}

// active returns the number of running workers
func (s *Service) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCount
}

// Wait blocks until every dispatched worker has reported
func (s *Service) Wait() {
	s.wg.Wait()
}

// send reports msg without blocking; a full queue drops it
func (s *Service) send(msg update.Message) {
	if s.out == nil {
		return
	}
	if !s.out.TrySend(msg) {
		logger.Warnf("[fetch] job %s: update queue full, result for %s dropped", msg.JobID, msg.Locale)
	}
}
