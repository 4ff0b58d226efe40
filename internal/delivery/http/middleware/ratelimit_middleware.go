package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"health-predict-backend/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles requests per client IP with a token bucket.
// Applied to the login endpoints to slow down credential guessing.
type RateLimitMiddleware struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimitMiddleware allows perMinute requests per IP sustained, with
// burst available immediately.
func NewRateLimitMiddleware(perMinute, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		rate:  rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.getLimiter(clientIP(r))
		if !limiter.Allow() {
			response.Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	if limiter, ok := m.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(m.rate, m.burst)
	actual, _ := m.limiters.LoadOrStore(key, limiter)
	return actual.(*rate.Limiter)
}

// clientIP resolves the originating address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
