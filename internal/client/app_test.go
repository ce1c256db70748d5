package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/mock"
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/internal/tui"
	"github.com/MKhiriev/go-site-client/models"
)

// fakeProgram records messages sent to the UI.
type fakeProgram struct {
	mu       sync.Mutex
	msgs     []tea.Msg
	location *tui.Location
}

func (f *fakeProgram) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

func (f *fakeProgram) Location() *tui.Location {
	return f.location
}

func (f *fakeProgram) sent() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tea.Msg(nil), f.msgs...)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, config.ClientApp{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestApp_ExpiredSessionReachesUI(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Session expired"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)
	sessions.EXPECT().Clear(gomock.Any()).Return(nil)

	adapters, err := adapter.NewAdapters(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 2 * time.Second}, sessions, logger.Nop())
	require.NoError(t, err)

	auth := mock.NewMockAuthClient(ctrl)
	auth.EXPECT().CurrentUser(gomock.Any()).Return(&models.User{ID: 1, Email: "ann@example.com"})
	state := service.NewSessionState(auth, logger.Nop())
	t.Cleanup(state.Dispose)
	state.Init(context.Background())
	require.True(t, state.IsAuthenticated())

	services := &service.ClientServices{Auth: auth, Session: state}
	app, err := NewApp(services, adapters, nil, nil, config.ClientApp{}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	program := &fakeProgram{location: tui.NewLocation()}
	unsubscribe := app.connect(program)
	defer unsubscribe()

	_, err = adapters.Feature.ListStories(context.Background(), models.ListQuery{})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.False(t, state.IsAuthenticated())

	msgs := program.sent()
	require.Len(t, msgs, 2)

	changed, ok := msgs[0].(tui.SessionChanged)
	require.True(t, ok)
	assert.Nil(t, changed.Snapshot.User)
	assert.Equal(t, service.StatusAnonymous, changed.Snapshot.Status)

	assert.Equal(t, tui.NavigateTo{Path: adapter.LoginPath, From: "/"}, msgs[1])
}

func TestApp_UnsubscribeStopsForwarding(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthClient(ctrl)
	auth.EXPECT().CurrentUser(gomock.Any()).Return(nil)

	adapters, err := adapter.NewAdapters(config.ClientAdapter{BaseURL: "http://127.0.0.1:1", RequestTimeout: time.Second}, mock.NewMockSessionStore(ctrl), logger.Nop())
	require.NoError(t, err)

	state := service.NewSessionState(auth, logger.Nop())
	t.Cleanup(state.Dispose)

	app, err := NewApp(&service.ClientServices{Auth: auth, Session: state}, adapters, nil, nil, config.ClientApp{}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	program := &fakeProgram{location: tui.NewLocation()}
	app.connect(program)()

	state.Init(context.Background())

	assert.Empty(t, program.sent())
}
