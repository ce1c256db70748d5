package utils

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// CookieStore persists the cookies of one origin between runs.
type CookieStore interface {
	LoadCookies(ctx context.Context) ([]*http.Cookie, error)
	// SaveCookies replaces the stored set. An empty set removes it.
	SaveCookies(ctx context.Context, cookies []*http.Cookie) error
	ClearCookies(ctx context.Context) error
}

// CookieJar is the single [http.CookieJar] of an [HTTPClient]. Reset swaps
// the inner jar under the lock, so it is safe while requests are in flight.
// With a store attached, the cookies of origin are saved after every
// response that sets cookies there.
type CookieJar struct {
	mu     sync.RWMutex
	jar    *cookiejar.Jar
	origin *url.URL
	store  CookieStore
}

// NewCookieJar returns an in-memory jar using the public suffix list.
func NewCookieJar() (*CookieJar, error) {
	jar, err := newInnerJar()
	if err != nil {
		return nil, err
	}
	return &CookieJar{jar: jar}, nil
}

// NewPersistentCookieJar returns a jar restoring the saved cookies of
// origin from store.
func NewPersistentCookieJar(ctx context.Context, origin string, store CookieStore) (*CookieJar, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse cookie origin: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("cookie origin %q has no host", origin)
	}

	jar, err := NewCookieJar()
	if err != nil {
		return nil, err
	}
	jar.origin = u
	jar.store = store

	saved, err := store.LoadCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved cookies: %w", err)
	}
	if len(saved) > 0 {
		for _, c := range saved {
			if c.Path == "" {
				c.Path = originPath(u)
			}
		}
		jar.jar.SetCookies(u, saved)
	}

	return jar, nil
}

func newInnerJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return jar, nil
}

// Cookies implements [http.CookieJar].
func (j *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

// SetCookies implements [http.CookieJar].
func (j *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.jar.SetCookies(u, cookies)
	if j.store == nil || len(cookies) == 0 || !strings.EqualFold(u.Hostname(), j.origin.Hostname()) {
		return
	}
	// a failed save keeps the session for this run only
	_ = j.store.SaveCookies(context.Background(), j.jar.Cookies(j.origin))
}

// Reset drops every cookie, including the saved copy.
func (j *CookieJar) Reset() error {
	jar, err := newInnerJar()
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.jar = jar
	if j.store == nil {
		return nil
	}
	return j.store.ClearCookies(context.Background())
}

func originPath(u *url.URL) string {
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
