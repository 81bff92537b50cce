package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PledgeBoard_Go/internal/logger"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
)

// clientWindow counts one client's activity since its window opened
type clientWindow struct {
	failedAuth int
	requests   int
}

// ClientMonitor tracks failed API key checks and request volume per client IP.
// A client's window opens on its first sighting and lasts DetectorWindow;
// the least recently seen clients are dropped past MaxTrackedClients.
type ClientMonitor struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	limit   int
}

// NewClientMonitor allows each client limit requests per window
func NewClientMonitor(limit int) *ClientMonitor {
	return &ClientMonitor{
		clients: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, DetectorWindow),
		limit:   limit,
	}
}

// window returns ip's current window. Caller must hold the mutex.
func (m *ClientMonitor) window(ip string) *clientWindow {
	if w, ok := m.clients.Get(ip); ok {
		return w
	}
	w := &clientWindow{}
	m.clients.Add(ip, w)
	return w
}

// RecordFailedAuth counts a rejected key and returns the client's total for the window
func (m *ClientMonitor) RecordFailedAuth(ip, reason string) int {
	metrics.AuthFailures.WithLabelValues(reason).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.window(ip)
	w.failedAuth++
	if w.failedAuth%FailedAuthAlertThreshold == 0 {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// Allow counts a request and reports whether ip is still inside its limit
func (m *ClientMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.window(ip)
	w.requests++
	if w.requests <= m.limit {
		return true
	}

	metrics.RequestsThrottled.Inc()
	if over := w.requests - m.limit; over == 1 || over%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", w.requests)
	}
	return false
}

// FailedAuths returns ip's failed key checks in the current window
func (m *ClientMonitor) FailedAuths(ip string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.clients.Peek(ip); ok {
		return w.failedAuth
	}
	return 0
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header on everything outside PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			reason := metrics.ReasonInvalidKey
			if provided == "" {
				reason = metrics.ReasonMissingKey
			}
			ip := clientIP(r, trustedProxies)
			count := monitor.RecordFailedAuth(ip, reason)

			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"reason", reason,
				"failures_in_window", count)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimitMiddleware refuses clients that exceeded their request window
func RateLimitMiddleware(trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.Allow(clientIP(r, trustedProxies)) {
				w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	if i := strings.LastIndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[i+1:]
	}
	return strings.TrimSpace(forwarded)
}

// SecurityHeadersMiddleware sets the browser hardening headers. Account
// state changes under the client, so API replies are never stored.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPathPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}
