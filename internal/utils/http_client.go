package utils

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods and owns the cookie jar that carries the
// server session. The jar is set once and never replaced.
type HTTPClient struct {
	*resty.Client
	jar *CookieJar
}

type httpClientOptions struct {
	ctx    context.Context
	origin string
	store  CookieStore
}

// HTTPClientOption configures [NewHTTPClient].
type HTTPClientOption func(*httpClientOptions)

// WithCookieStore restores and saves the cookies of origin through store.
func WithCookieStore(ctx context.Context, origin string, store CookieStore) HTTPClientOption {
	return func(o *httpClientOptions) {
		o.ctx = ctx
		o.origin = origin
		o.store = store
	}
}

// NewHTTPClient creates a resty client with its own cookie jar. Every
// request made through it sends and stores cookies, which is how the
// session credential travels.
func NewHTTPClient(opts ...HTTPClientOption) (*HTTPClient, error) {
	var o httpClientOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		jar *CookieJar
		err error
	)
	if o.store != nil {
		if o.ctx == nil {
			o.ctx = context.Background()
		}
		jar, err = NewPersistentCookieJar(o.ctx, o.origin, o.store)
	} else {
		jar, err = NewCookieJar()
	}
	if err != nil {
		return nil, err
	}

	return &HTTPClient{Client: resty.New().SetCookieJar(jar), jar: jar}, nil
}

// ResetCookies drops every stored cookie.
func (c *HTTPClient) ResetCookies() error {
	return c.jar.Reset()
}

// Jar returns the cookie jar of the client.
func (c *HTTPClient) Jar() http.CookieJar {
	return c.jar
}
