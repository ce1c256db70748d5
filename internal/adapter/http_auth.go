package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/utils"
	"github.com/MKhiriev/go-site-client/models"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter returns an [AuthAdapter] sending requests through
// client.
func NewHTTPAuthAdapter(client *utils.HTTPClient, logger *logger.Logger) AuthAdapter {
	return &httpAuthAdapter{client: client, logger: logger}
}

func (h *httpAuthAdapter) Login(ctx context.Context, c models.Credentials) (models.AuthResponse, error) {
	path := pathLogin
	if c.LoginType == models.LoginTypeAdmin {
		path = pathAdminLogin
	}
	return h.call(ctx, http.MethodPost, path, c, nil)
}

func (h *httpAuthAdapter) Register(ctx context.Context, d models.RegisterData) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathRegister, d, nil)
}

func (h *httpAuthAdapter) Logout(ctx context.Context) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathLogout, nil, nil)
}

func (h *httpAuthAdapter) LogoutAll(ctx context.Context) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathLogoutAll, nil, nil)
}

func (h *httpAuthAdapter) GetProfile(ctx context.Context) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodGet, pathProfile, nil, nil)
}

func (h *httpAuthAdapter) UpdateProfile(ctx context.Context, p models.ProfileUpdate) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPut, pathProfile, p, nil)
}

func (h *httpAuthAdapter) ChangePassword(ctx context.Context, r models.ChangePasswordRequest) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathChangePassword, r, nil)
}

func (h *httpAuthAdapter) ForgotPassword(ctx context.Context, email string) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathForgotPassword, map[string]string{"email": email}, nil)
}

func (h *httpAuthAdapter) ResetPassword(ctx context.Context, token, password string) (models.AuthResponse, error) {
	body := map[string]string{"token": token, "password": password}
	return h.call(ctx, http.MethodPost, pathResetPassword, body, nil)
}

func (h *httpAuthAdapter) VerifyEmail(ctx context.Context, token string) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathVerifyEmail, map[string]string{"token": token}, nil)
}

func (h *httpAuthAdapter) Setup2FA(ctx context.Context) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathSetup2FA, nil, nil)
}

func (h *httpAuthAdapter) Verify2FA(ctx context.Context, code string) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodPost, pathVerify2FA, map[string]string{"token": code}, nil)
}

func (h *httpAuthAdapter) Disable2FA(ctx context.Context, password, code string) (models.AuthResponse, error) {
	body := map[string]string{"password": password, "token": code}
	return h.call(ctx, http.MethodPost, pathDisable2FA, body, nil)
}

func (h *httpAuthAdapter) GetSessions(ctx context.Context) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodGet, pathSessions, nil, nil)
}

func (h *httpAuthAdapter) TerminateSession(ctx context.Context, sessionID string) (models.AuthResponse, error) {
	return h.call(ctx, http.MethodDelete, pathSession, nil, map[string]string{"id": sessionID})
}

func (h *httpAuthAdapter) ClearCookies() error {
	return h.client.ResetCookies()
}

// call sends body and decodes the envelope whatever the status. A
// non-2xx status is returned as a [StatusError] alongside the decoded
// envelope.
func (h *httpAuthAdapter) call(ctx context.Context, method, path string, body any, pathParams map[string]string) (models.AuthResponse, error) {
	req := h.client.R()
	if body != nil {
		req.SetBody(body)
	}
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}

	resp, err := execute(ctx, req, method, path)
	if err != nil {
		return models.AuthResponse{}, err
	}

	var envelope models.AuthResponse
	decodeErr := decodeJSON(resp.Body(), &envelope)

	if err = mapHTTPError(resp); err != nil {
		if decodeErr != nil {
			envelope = models.AuthResponse{}
		}
		return envelope, err
	}
	if decodeErr != nil {
		h.logger.Err(decodeErr).Str("func", "httpAuthAdapter.call").Str("path", path).Msg("failed to decode auth response")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrDecodeResponse, decodeErr)
	}

	return envelope, nil
}
