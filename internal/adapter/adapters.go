package adapter

import (
	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
	"github.com/MKhiriev/go-site-client/internal/utils"
)

// Adapters groups the adapters sharing one HTTP client and interceptor.
type Adapters struct {
	Auth        AuthAdapter
	Feature     FeatureAdapter
	Interceptor *Interceptor
}

// NewAdapters builds the shared client, attaches the interceptor and wires
// the adapters to it.
func NewAdapters(cfg config.ClientAdapter, sessions store.SessionStore, logger *logger.Logger, opts ...Option) (*Adapters, error) {
	client, err := NewHTTPClient(cfg, opts...)
	if err != nil {
		return nil, err
	}

	interceptor := NewInterceptor(sessions, utils.NewUUIDGenerator(), logger.WithComponent("interceptor"))
	interceptor.Attach(client)

	return &Adapters{
		Auth:        NewHTTPAuthAdapter(client, logger),
		Feature:     NewHTTPFeatureAdapter(client, logger),
		Interceptor: interceptor,
	}, nil
}
