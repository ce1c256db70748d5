package service

import (
	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
	"github.com/MKhiriev/go-site-client/internal/validators"
)

// ClientServices groups the services used by the terminal UI.
type ClientServices struct {
	Auth       AuthClient
	Session    *SessionState
	Content    ContentService
	Admin      AdminService
	RefreshJob ProfileRefreshJob
}

// NewClientServices wires the services on top of the adapters and the
// session store.
func NewClientServices(adapters *adapter.Adapters, sessions store.SessionStore, fingerprint FingerprintSource, siteURL string, log *logger.Logger, opts ...SessionOption) *ClientServices {
	auth := NewAuthClient(adapters.Auth, sessions, fingerprint, log.WithComponent("auth"))
	state := NewSessionState(auth, log.WithComponent("session"), opts...)

	return &ClientServices{
		Auth:       auth,
		Session:    state,
		Content:    NewContentService(adapters.Feature, validators.NewFormValidator(), siteURL, log.WithComponent("content")),
		Admin:      NewAdminService(adapters.Feature, log.WithComponent("admin")),
		RefreshJob: NewProfileRefreshJob(state),
	}
}
