package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
	"github.com/MKhiriev/go-site-client/internal/utils"
)

// HeaderRequestID is the header carrying the per-request identifier.
const HeaderRequestID = "X-Request-ID"

const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
	adminPrefix    = "/admin"
)

// credentialPaths answer 401 for wrong credentials, not for an expired
// session.
var credentialPaths = []string{pathLogin, pathAdminLogin}

// LoginPathFor returns the login screen matching the area of currentPath.
func LoginPathFor(currentPath string) string {
	if strings.HasPrefix(currentPath, adminPrefix) {
		return AdminLoginPath
	}
	return LoginPath
}

// SessionExpired is emitted when the server rejects the session.
type SessionExpired struct {
	// From is the screen path that was active when the 401 arrived.
	From string
	// LoginPath is where the user should be sent.
	LoginPath string
}

// PathProvider reports the screen path currently shown.
type PathProvider interface {
	CurrentPath() string
}

// PathFunc adapts a function to [PathProvider].
type PathFunc func() string

func (f PathFunc) CurrentPath() string { return f() }

// RequestIDGenerator produces request identifiers.
type RequestIDGenerator interface {
	Generate() string
}

// Interceptor hooks into every request made by the shared HTTP client. It
// tags and logs requests and turns a 401 into a cleared session mirror,
// dropped cookies and a [SessionExpired] event. It never navigates.
type Interceptor struct {
	sessions store.SessionStore
	ids      RequestIDGenerator
	logger   *logger.Logger
	cookies  cookieResetter

	mu          sync.RWMutex
	paths       PathProvider
	nextID      int
	subscribers map[int]func(SessionExpired)
}

// NewInterceptor returns an interceptor clearing sessions on 401.
func NewInterceptor(sessions store.SessionStore, ids RequestIDGenerator, logger *logger.Logger) *Interceptor {
	return &Interceptor{
		sessions:    sessions,
		ids:         ids,
		logger:      logger,
		paths:       PathFunc(func() string { return "/" }),
		subscribers: make(map[int]func(SessionExpired)),
	}
}

// SetPathProvider replaces the source of the current screen path.
func (i *Interceptor) SetPathProvider(p PathProvider) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paths = p
}

// Subscribe registers fn for session-expired events. The returned function
// removes the subscription.
func (i *Interceptor) Subscribe(fn func(SessionExpired)) func() {
	i.mu.Lock()
	defer i.mu.Unlock()

	id := i.nextID
	i.nextID++
	i.subscribers[id] = fn

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		delete(i.subscribers, id)
	}
}

type cookieResetter interface {
	ResetCookies() error
}

// Attach registers the hooks on client. Its cookies are dropped when the
// session expires.
func (i *Interceptor) Attach(client *utils.HTTPClient) {
	i.cookies = client
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i *Interceptor) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	ctx := req.Context()

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = i.ids.Generate()
	}
	req.SetHeader(HeaderRequestID, requestID)

	i.log(ctx).Debug().
		Str("func", "Interceptor.onBeforeRequest").
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", requestID).
		Msg("outgoing request")
	return nil
}

func (i *Interceptor) onAfterResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	log := i.log(req.Context())

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized:
		if isCredentialRequest(req) {
			return nil
		}
		i.expireSession(req.Context(), req)
	case status >= http.StatusBadRequest:
		log.Warn().
			Str("func", "Interceptor.onAfterResponse").
			Str("method", req.Method).
			Str("url", req.URL).
			Int("status", status).
			Msg("request failed")
	}

	return nil
}

func (i *Interceptor) onError(req *resty.Request, err error) {
	log := i.log(req.Context())

	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		// response received; a hook rejected it
		log.Err(respErr.Err).
			Str("func", "Interceptor.onError").
			Str("url", req.URL).
			Int("status", respErr.Response.StatusCode()).
			Msg("response processing failed")
		return
	}

	if req.RawRequest == nil {
		log.Err(err).
			Str("func", "Interceptor.onError").
			Str("url", req.URL).
			Msg("failed to build request")
		return
	}

	log.Err(err).
		Str("func", "Interceptor.onError").
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("no response from server")
}

func (i *Interceptor) expireSession(ctx context.Context, req *resty.Request) {
	if err := i.sessions.Clear(ctx); err != nil {
		i.log(ctx).Err(err).Str("func", "Interceptor.expireSession").Msg("failed to clear session mirror")
	}
	if i.cookies != nil {
		if err := i.cookies.ResetCookies(); err != nil {
			i.log(ctx).Err(err).Str("func", "Interceptor.expireSession").Msg("failed to drop session cookies")
		}
	}

	i.mu.RLock()
	from := i.paths.CurrentPath()
	subscribers := make([]func(SessionExpired), 0, len(i.subscribers))
	for id := 0; id < i.nextID; id++ {
		if fn, ok := i.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	i.mu.RUnlock()

	event := SessionExpired{From: from, LoginPath: LoginPathFor(from)}
	i.log(ctx).Info().
		Str("func", "Interceptor.expireSession").
		Str("url", req.URL).
		Str("from", event.From).
		Str("login_path", event.LoginPath).
		Msg("session expired")

	for _, fn := range subscribers {
		fn(event)
	}
}

func (i *Interceptor) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return i.logger
}

func isCredentialRequest(req *resty.Request) bool {
	path := requestPath(req)
	for _, p := range credentialPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// requestPath returns the path of req relative to the base URL.
func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	path := req.URL
	if idx := strings.Index(path, "://"); idx >= 0 {
		path = path[idx+3:]
		if slash := strings.IndexByte(path, '/'); slash >= 0 {
			path = path[slash:]
		}
	}
	if q := strings.IndexByte(path, '?'); q >= 0 {
		path = path[:q]
	}
	return path
}
