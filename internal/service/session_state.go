package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

// Status is the lifecycle state of [SessionState].
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Snapshot is an immutable copy of the session state handed to
// subscribers and guards.
type Snapshot struct {
	Status      Status
	User        *models.User
	Loading     bool
	Initialized bool
}

// IsAuthenticated reports whether a user snapshot is present.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the user may enter the admin panel.
func (s Snapshot) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin()
}

// SessionOption configures a [SessionState].
type SessionOption func(*SessionState)

// WithProfileRefresh makes Init re-read the profile from the server in the
// background when a cached user was found.
func WithProfileRefresh(enabled bool) SessionOption {
	return func(s *SessionState) {
		s.refreshOnInit = enabled
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// SessionState is the single source of truth about who is logged in. It
// moves from uninitialized through loading to an authenticated or
// anonymous ready state and notifies subscribers on every change.
//
// It is safe for concurrent use. Subscribers are called outside the lock,
// in registration order, with a copy of the new snapshot.
type SessionState struct {
	auth          AuthClient
	logger        *logger.Logger
	refreshOnInit bool

	mu          sync.Mutex
	snapshot    Snapshot
	subscribers []subscriber
	nextID      int
	disposed    bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionState returns an uninitialized state backed by auth.
func NewSessionState(auth AuthClient, logger *logger.Logger, opts ...SessionOption) *SessionState {
	s := &SessionState{
		auth:     auth,
		logger:   logger,
		snapshot: Snapshot{Status: StatusUninitialized},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init reads the session mirror and becomes ready. A cached user makes the
// state authenticated right away; the optional background refresh may
// demote it later.
func (s *SessionState) Init(ctx context.Context) {
	if !s.update(func(snap *Snapshot) {
		snap.Status = StatusLoading
		snap.Loading = true
	}) {
		return
	}

	user := s.auth.CurrentUser(ctx)
	s.update(func(snap *Snapshot) {
		snap.User = user
		snap.Loading = false
		snap.Initialized = true
		snap.Status = statusFor(user)
	})

	if user == nil || !s.refreshOnInit {
		return
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	refreshCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.Refresh(refreshCtx)
	}()
}

// Login authenticates and, on success, switches to the authenticated
// state.
func (s *SessionState) Login(ctx context.Context, c models.Credentials) models.AuthResult {
	s.setLoading(true)
	res := s.auth.Login(ctx, c)

	s.update(func(snap *Snapshot) {
		snap.Loading = false
		if res.Success && res.User != nil {
			snap.User = res.User
			snap.Status = StatusAuthenticated
		}
	})
	return res
}

// Register creates an account. A returned user logs the session in.
func (s *SessionState) Register(ctx context.Context, d models.RegisterData) models.AuthResult {
	res := s.auth.Register(ctx, d)
	if res.Success && res.User != nil {
		s.setUser(res.User)
	}
	return res
}

// Logout ends the session. The state becomes anonymous even when the
// server call failed.
func (s *SessionState) Logout(ctx context.Context) models.AuthResult {
	res := s.auth.Logout(ctx)
	s.setUser(nil)
	return res
}

// LogoutAll ends every session of the user.
func (s *SessionState) LogoutAll(ctx context.Context) models.AuthResult {
	res := s.auth.LogoutAll(ctx)
	s.setUser(nil)
	return res
}

// Refresh re-reads the profile. A 401 demotes the state to anonymous;
// transport failures keep the cached user.
func (s *SessionState) Refresh(ctx context.Context) models.AuthResult {
	res := s.auth.GetProfile(ctx)

	switch {
	case res.Success && res.User != nil:
		s.setUser(res.User)
	case res.Kind == models.ResultUnauthorized:
		s.HandleSessionExpired()
	default:
		s.logger.Debug().
			Str("func", "SessionState.Refresh").
			Str("kind", string(res.Kind)).
			Msg("profile refresh failed, keeping cached user")
	}
	return res
}

// UpdateProfile saves p and replaces the user snapshot on success.
func (s *SessionState) UpdateProfile(ctx context.Context, p models.ProfileUpdate) models.AuthResult {
	res := s.auth.UpdateProfile(ctx, p)
	if res.Success && res.User != nil {
		s.setUser(res.User)
	}
	return res
}

// HandleSessionExpired demotes the state after the server rejected the
// session. The session mirror has already been cleared by then.
func (s *SessionState) HandleSessionExpired() {
	s.setUser(nil)
}

// Subscribe registers fn for state changes. The returned function removes
// the subscription.
func (s *SessionState) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Dispose stops background work and notifications. Later calls that
// change state are no-ops.
func (s *SessionState) Dispose() {
	s.mu.Lock()
	s.disposed = true
	s.subscribers = nil
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Snapshot returns the current state.
func (s *SessionState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// User returns the current user or nil.
func (s *SessionState) User() *models.User {
	return s.Snapshot().User
}

func (s *SessionState) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

func (s *SessionState) IsAdmin() bool {
	return s.Snapshot().IsAdmin()
}

func (s *SessionState) setUser(u *models.User) {
	s.update(func(snap *Snapshot) {
		snap.User = u
		snap.Loading = false
		if snap.Initialized {
			snap.Status = statusFor(u)
		}
	})
}

func (s *SessionState) setLoading(loading bool) {
	s.update(func(snap *Snapshot) {
		snap.Loading = loading
	})
}

// update applies change and notifies subscribers. It reports false once
// the state is disposed.
func (s *SessionState) update(change func(*Snapshot)) bool {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return false
	}

	change(&s.snapshot)
	snap := s.snapshot
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
	return true
}

func statusFor(u *models.User) Status {
	if u == nil {
		return StatusAnonymous
	}
	return StatusAuthenticated
}
