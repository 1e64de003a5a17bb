package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

const (
	DefaultIdempotencyHeader = "Idempotency-Key"
	ReplayedHeader           = "Idempotent-Replayed"
)

type IdempotencyStore interface {
	Get(key string) (*CachedResponse, bool)
	Set(key string, response *CachedResponse)
	Stop()
}

type CachedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	CreatedAt  time.Time
}

type InMemoryIdempotencyStore struct {
	mu       sync.RWMutex
	store    map[string]*CachedResponse
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewInMemoryIdempotencyStore(ttl time.Duration) *InMemoryIdempotencyStore {
	store := &InMemoryIdempotencyStore{
		store:  make(map[string]*CachedResponse),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}

	go store.cleanup(cleanupInterval(ttl))

	return store
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > time.Hour {
		return time.Hour
	}
	return ttl
}

func (s *InMemoryIdempotencyStore) Get(key string) (*CachedResponse, bool) {
	s.mu.RLock()
	response, exists := s.store[key]
	s.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if s.expired(response) {
		s.mu.Lock()
		delete(s.store, key)
		s.mu.Unlock()
		return nil, false
	}

	return response, true
}

func (s *InMemoryIdempotencyStore) Set(key string, response *CachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	response.CreatedAt = s.now()
	s.store[key] = response
}

func (s *InMemoryIdempotencyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

func (s *InMemoryIdempotencyStore) expired(response *CachedResponse) bool {
	return s.now().Sub(response.CreatedAt) > s.ttl
}

func (s *InMemoryIdempotencyStore) purgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, response := range s.store {
		if s.expired(response) {
			delete(s.store, key)
		}
	}
}

func (s *InMemoryIdempotencyStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired()
		case <-s.stopCh:
			return
		}
	}
}

// Stop is safe to call more than once.
func (s *InMemoryIdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

type responseCapture struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (rc *responseCapture) WriteHeader(statusCode int) {
	rc.statusCode = statusCode
	rc.ResponseWriter.WriteHeader(statusCode)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the first successful response recorded for a key.
// Keys are scoped to method and path, so the same key sent to two endpoints
// does not collide. Requests without the header pass straight through.
func Idempotency(store IdempotencyStore, headerName string) func(http.Handler) http.Handler {
	if headerName == "" {
		headerName = DefaultIdempotencyHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(headerName)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			key = r.Method + " " + r.URL.Path + " " + key

			if cached, found := store.Get(key); found {
				replayCachedResponse(w, cached)
				return
			}

			capture := &responseCapture{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				body:           &bytes.Buffer{},
			}
			next.ServeHTTP(capture, r)

			if capture.statusCode >= 200 && capture.statusCode < 300 {
				headers := w.Header().Clone()
				headers.Del(RequestIDHeader)
				store.Set(key, &CachedResponse{
					StatusCode: capture.statusCode,
					Headers:    headers,
					Body:       capture.body.Bytes(),
				})
			}
		})
	}
}

func replayCachedResponse(w http.ResponseWriter, cached *CachedResponse) {
	for key, values := range cached.Headers {
		w.Header()[key] = append([]string(nil), values...)
	}
	w.Header().Set(ReplayedHeader, "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}
