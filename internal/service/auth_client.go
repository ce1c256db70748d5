package service

import (
	"context"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
	"github.com/MKhiriev/go-site-client/models"
)

type authClient struct {
	adapter     adapter.AuthAdapter
	sessions    store.SessionStore
	fingerprint FingerprintSource
	logger      *logger.Logger
}

// NewAuthClient returns an [AuthClient] calling authAdapter and mirroring
// the session into sessions.
func NewAuthClient(authAdapter adapter.AuthAdapter, sessions store.SessionStore, fingerprint FingerprintSource, logger *logger.Logger) AuthClient {
	return &authClient{
		adapter:     authAdapter,
		sessions:    sessions,
		fingerprint: fingerprint,
		logger:      logger,
	}
}

func (a *authClient) Login(ctx context.Context, c models.Credentials) models.AuthResult {
	c.DeviceFingerprint = a.fingerprint.Value(ctx)

	resp, err := a.adapter.Login(ctx, c)
	res := toResult(resp, err)

	// a 401 on the login endpoint means wrong credentials
	if res.Kind == models.ResultUnauthorized {
		res.Kind = models.ResultInvalid
		if resp.Message == "" && resp.Error == "" {
			res.Message = "Invalid email or password"
		}
	}

	if res.Requires2FA {
		res.Success = false
		res.User = nil
		return res
	}

	if !res.Success {
		a.logger.Info().
			Str("func", "authClient.Login").
			Str("kind", string(res.Kind)).
			Int("failed_attempts", res.FailedAttempts).
			Bool("account_locked", res.AccountLocked).
			Msg("login rejected")
		return res
	}

	a.persist(ctx, "authClient.Login", resp)
	return res
}

func (a *authClient) Register(ctx context.Context, d models.RegisterData) models.AuthResult {
	d.DeviceFingerprint = a.fingerprint.Value(ctx)

	resp, err := a.adapter.Register(ctx, d)
	res := toResult(resp, err)
	if res.Success {
		a.persist(ctx, "authClient.Register", resp)
	}
	return res
}

func (a *authClient) Logout(ctx context.Context) models.AuthResult {
	resp, err := a.adapter.Logout(ctx)
	a.clearLocal(ctx, "authClient.Logout", err)
	return logoutResult(resp, err)
}

func (a *authClient) LogoutAll(ctx context.Context) models.AuthResult {
	resp, err := a.adapter.LogoutAll(ctx)
	a.clearLocal(ctx, "authClient.LogoutAll", err)
	return logoutResult(resp, err)
}

func (a *authClient) GetProfile(ctx context.Context) models.AuthResult {
	resp, err := a.adapter.GetProfile(ctx)
	res := toResult(resp, err)
	if res.Success {
		a.replaceUser(ctx, "authClient.GetProfile", resp.User)
	}
	return res
}

func (a *authClient) UpdateProfile(ctx context.Context, p models.ProfileUpdate) models.AuthResult {
	resp, err := a.adapter.UpdateProfile(ctx, p)
	res := toResult(resp, err)
	if res.Success {
		a.replaceUser(ctx, "authClient.UpdateProfile", resp.User)
	}
	return res
}

func (a *authClient) ChangePassword(ctx context.Context, current, next string, logoutAllSessions bool) models.AuthResult {
	resp, err := a.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword:   current,
		NewPassword:       next,
		LogoutAllSessions: logoutAllSessions,
	})
	return a.passThrough(ctx, "authClient.ChangePassword", resp, err)
}

func (a *authClient) ForgotPassword(ctx context.Context, email string) models.AuthResult {
	resp, err := a.adapter.ForgotPassword(ctx, email)
	return toResult(resp, err)
}

func (a *authClient) ResetPassword(ctx context.Context, token, password string) models.AuthResult {
	resp, err := a.adapter.ResetPassword(ctx, token, password)
	return toResult(resp, err)
}

func (a *authClient) VerifyEmail(ctx context.Context, token string) models.AuthResult {
	resp, err := a.adapter.VerifyEmail(ctx, token)
	return a.passThrough(ctx, "authClient.VerifyEmail", resp, err)
}

func (a *authClient) Setup2FA(ctx context.Context) models.TwoFASetupResult {
	resp, err := a.adapter.Setup2FA(ctx)
	return models.TwoFASetupResult{
		AuthResult:  toResult(resp, err),
		Secret:      resp.Secret,
		QRCodeURL:   resp.QRCodeURL,
		BackupCodes: resp.BackupCodes,
	}
}

func (a *authClient) Verify2FA(ctx context.Context, code string) models.AuthResult {
	resp, err := a.adapter.Verify2FA(ctx, code)
	return a.passThrough(ctx, "authClient.Verify2FA", resp, err)
}

func (a *authClient) Disable2FA(ctx context.Context, password, code string) models.AuthResult {
	resp, err := a.adapter.Disable2FA(ctx, password, code)
	return a.passThrough(ctx, "authClient.Disable2FA", resp, err)
}

func (a *authClient) GetSessions(ctx context.Context) models.SessionsResult {
	resp, err := a.adapter.GetSessions(ctx)
	return models.SessionsResult{
		AuthResult: toResult(resp, err),
		Sessions:   resp.Sessions,
	}
}

func (a *authClient) TerminateSession(ctx context.Context, sessionID string) models.AuthResult {
	resp, err := a.adapter.TerminateSession(ctx, sessionID)
	return toResult(resp, err)
}

func (a *authClient) CurrentUser(ctx context.Context) *models.User {
	return a.sessions.GetUser(ctx)
}

func (a *authClient) IsAuthenticated(ctx context.Context) bool {
	return a.sessions.GetUser(ctx) != nil
}

func (a *authClient) IsAdmin(ctx context.Context) bool {
	u := a.sessions.GetUser(ctx)
	return u != nil && u.IsAdmin()
}

// passThrough normalises resp and replaces the cached user only when the
// server echoed one.
func (a *authClient) passThrough(ctx context.Context, fn string, resp models.AuthResponse, err error) models.AuthResult {
	res := toResult(resp, err)
	if res.Success && resp.User != nil {
		a.replaceUser(ctx, fn, resp.User)
	}
	return res
}

func (a *authClient) persist(ctx context.Context, fn string, resp models.AuthResponse) {
	if resp.User == nil {
		return
	}
	a.replaceUser(ctx, fn, resp.User)

	if resp.SessionInfo != nil {
		if err := a.sessions.SetSessionInfo(ctx, resp.SessionInfo); err != nil {
			a.logger.Err(err).Str("func", fn).Msg("failed to persist session info")
		}
	}
}

func (a *authClient) replaceUser(ctx context.Context, fn string, u *models.User) {
	if u == nil {
		return
	}
	if err := a.sessions.SetUser(ctx, u); err != nil {
		a.logger.Err(err).Str("func", fn).Int64("user_id", u.ID).Msg("failed to persist user")
	}
}

// logoutResult treats any 2xx as success; logout endpoints may answer
// with an empty body.
func logoutResult(resp models.AuthResponse, err error) models.AuthResult {
	res := toResult(resp, err)
	if err == nil {
		res.Success = true
		res.Kind = models.ResultOK
		res.Message = firstNonEmpty(resp.Message, "Logged out")
	}
	return res
}

// clearLocal wipes the session mirror and the cookie jar whatever the
// outcome of the server call.
func (a *authClient) clearLocal(ctx context.Context, fn string, callErr error) {
	if callErr != nil {
		a.logger.Warn().Err(callErr).Str("func", fn).Msg("logout request failed, clearing local session anyway")
	}
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Err(err).Str("func", fn).Msg("failed to clear session mirror")
	}
	if err := a.adapter.ClearCookies(); err != nil {
		a.logger.Err(err).Str("func", fn).Msg("failed to clear cookies")
	}
}
