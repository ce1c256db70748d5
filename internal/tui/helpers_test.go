package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/mock"
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/models"
)

type testEnv struct {
	deps    Deps
	auth    *mock.MockAuthClient
	content *mock.MockContentService
	admin   *mock.MockAdminService
}

// newTestEnv wires a real SessionState over a mocked auth client. When
// initialized is true the session is loaded with user (nil means guest).
func newTestEnv(t *testing.T, initialized bool, user *models.User) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthClient(ctrl)
	content := mock.NewMockContentService(ctrl)
	admin := mock.NewMockAdminService(ctrl)
	content.EXPECT().TrackPageView(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	session := service.NewSessionState(auth, logger.Nop())
	t.Cleanup(session.Dispose)

	if initialized {
		auth.EXPECT().CurrentUser(gomock.Any()).Return(user)
		session.Init(context.Background())
	}

	return testEnv{
		deps: Deps{
			Ctx:     context.Background(),
			Session: session,
			Auth:    auth,
			Content: content,
			Admin:   admin,
			Logger:  logger.Nop(),
		},
		auth:    auth,
		content: content,
		admin:   admin,
	}
}

func regularUser() *models.User {
	return &models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
}

func adminUser(level models.AdminLevel) *models.User {
	return &models.User{ID: 2, Name: "Root", Email: "root@example.com", AdminLevel: level}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// run executes cmd and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// requireNavigate asserts that cmd asks the router for path.
func requireNavigate(t *testing.T, cmd tea.Cmd, path string) NavigateTo {
	t.Helper()
	nav, ok := run(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, path, nav.Path)
	return nav
}
