package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"tempo/shared"
	"tempo/shared/constant"
	"tempo/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client IP and user agent in a fixed window.
// Internal API clients are not counted, and cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || isAPIClient(r.Context()) {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.clientIP(r), userAgent(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				log.Warn().
					Err(err).
					Str("request_id", RequestIDFromContext(r.Context())).
					Msg("rate limiter unavailable, letting request through")

				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > int64(maxReqs) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// clientIP reads the forwarding headers only behind a trusted proxy.
func (a *appMiddleware) clientIP(r *http.Request) string {
	if a.config.App.RateLimiter.TrustProxy {
		// X-Forwarded-For may list a chain of proxies, the first entry is the client
		if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
			first, _, _ := strings.Cut(xff, ",")

			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
