package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/utils"
)

type options struct {
	cookies utils.CookieStore
}

// Option configures [NewAdapters] and [NewHTTPClient].
type Option func(*options)

// WithCookieStore keeps the cookies of the base URL in store, so the server
// session survives a restart.
func WithCookieStore(store utils.CookieStore) Option {
	return func(o *options) {
		o.cookies = store
	}
}

// NewHTTPClient returns the shared client: base URL, fixed timeout, JSON
// headers and a cookie jar.
func NewHTTPClient(cfg config.ClientAdapter, opts ...Option) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var clientOpts []utils.HTTPClientOption
	if o.cookies != nil {
		clientOpts = append(clientOpts, utils.WithCookieStore(context.Background(), baseURL, o.cookies))
	}

	client, err := utils.NewHTTPClient(clientOpts...)
	if err != nil {
		return nil, err
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
