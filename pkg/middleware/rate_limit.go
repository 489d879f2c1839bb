package middleware

import (
	"net/http"
	"roomly/pkg/logger"
	"sync"
	"time"
)

// GuestExtractor pulls the guest identity (phone number) a request should be
// throttled on. Booking submissions carry it in the X-Guest-Phone header.
type GuestExtractor func(r *http.Request) string

type GuestRateLimiter struct {
	mu        sync.RWMutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	extractor GuestExtractor
	log       *logger.Logger
	stopCh    chan struct{}
}

func NewGuestRateLimiter(limit int, window time.Duration, extractor GuestExtractor, log *logger.Logger) *GuestRateLimiter {
	limiter := &GuestRateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		extractor: extractor,
		log:       log,
		stopCh:    make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *GuestRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for guest, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, guest)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *GuestRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *GuestRateLimiter) Allow(guest string) bool {
	if guest == "" {
		return true
	}

	now := time.Now()

	rl.mu.RLock()
	timestamps := rl.requests[guest]
	rl.mu.RUnlock()

	validTimestamps := make([]time.Time, 0)
	for _, ts := range timestamps {
		if now.Sub(ts) < rl.window {
			validTimestamps = append(validTimestamps, ts)
		}
	}

	if len(validTimestamps) >= rl.limit {
		return false
	}

	validTimestamps = append(validTimestamps, now)

	rl.mu.Lock()
	rl.requests[guest] = validTimestamps
	rl.mu.Unlock()

	return true
}

func GuestRateLimit(limiter *GuestRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guest := extractGuest(r, limiter.extractor)

			if guest == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(guest) {
				rejectRateLimited(w, limiter.log, r, guest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractGuest(r *http.Request, extractor GuestExtractor) string {
	if extractor == nil {
		return r.Header.Get("X-Guest-Phone")
	}
	return extractor(r)
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, guest string) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		if id, ok := rid.(string); ok {
			requestID = id
		}
	}

	log.Warn("Rate limit exceeded",
		"request_id", requestID,
		"guest", guest,
		"path", r.URL.Path,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
}

func DefaultGuestExtractor(r *http.Request) string {
	return r.Header.Get("X-Guest-Phone")
}
