package httpclient

import (
	"net/http"
	"time"

	"loadtracker/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper writes one log entry per outbound request.
// Transport failures log at Error, 5xx responses at Warn, everything else at Debug.
type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs its outcome. Query strings are not logged.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := lrt.Proxied.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Duration("duration", time.Since(start)),
	}
	log := logger.Named("http")

	switch {
	case err != nil:
		log.Error("Outbound request failed", append(fields, zap.Error(err))...)
		return nil, err
	case resp.StatusCode >= http.StatusInternalServerError:
		log.Warn("Outbound request returned server error", append(fields, zap.Int("status_code", resp.StatusCode))...)
	default:
		log.Debug("Outbound request completed", append(fields, zap.Int("status_code", resp.StatusCode))...)
	}
	return resp, nil
}

// BearerRoundTripper sets an Authorization header on every outgoing request.
type BearerRoundTripper struct {
	Token   string
	Proxied http.RoundTripper
}

// RoundTrip clones the request before adding the header, as RoundTrippers must not mutate it.
func (b *BearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+b.Token)
	return b.Proxied.RoundTrip(r)
}

// Option customizes the client built by NewClient.
type Option func(rt http.RoundTripper) http.RoundTripper

// WithBearerToken authenticates every request with token. An empty token is a no-op.
func WithBearerToken(token string) Option {
	return func(rt http.RoundTripper) http.RoundTripper {
		if token == "" {
			return rt
		}
		return &BearerRoundTripper{Token: token, Proxied: rt}
	}
}

// NewClient returns an http.Client that logs every request. Options wrap the logging
// transport in order, so the last option runs first.
func NewClient(timeout time.Duration, opts ...Option) *http.Client {
	var rt http.RoundTripper = &LoggingRoundTripper{
		Proxied: http.DefaultTransport,
	}
	for _, opt := range opts {
		rt = opt(rt)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   timeout,
	}
}
