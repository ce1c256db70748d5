package tui

import (
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/models"
)

// NavigateTo asks the router to show Path. From is remembered by the login
// screens so they can return after a successful login.
type NavigateTo struct {
	Path string
	From string
}

// SessionChanged carries a new session snapshot into the program. The
// router re-runs the guard of the current route on every one.
type SessionChanged struct {
	Snapshot service.Snapshot
}

type loginDoneMsg struct {
	result models.AuthResult
}

type registerDoneMsg struct {
	result models.AuthResult
}

type logoutDoneMsg struct {
	result models.AuthResult
}

type profileSavedMsg struct {
	result models.AuthResult
}

type sessionsLoadedMsg struct {
	result models.SessionsResult
}

type sessionTerminatedMsg struct {
	id     string
	result models.AuthResult
}

type storiesLoadedMsg struct {
	page models.Page[models.Story]
	err  error
}

type storyLoadedMsg struct {
	story models.Story
	err   error
}

type toggledMsg struct {
	bookmark bool
	result   models.ToggleResult
	err      error
}

type galleryLoadedMsg struct {
	page models.Page[models.GalleryItem]
	err  error
}

type toursLoadedMsg struct {
	page models.Page[models.Tour]
	err  error
}

type tourLoadedMsg struct {
	tour models.Tour
	err  error
}

type bookingDoneMsg struct {
	confirmation models.BookingConfirmation
	err          error
}

type contactSentMsg struct {
	err error
}

type messagesLoadedMsg struct {
	page models.Page[models.ContactMessage]
	err  error
}

type messageReadMsg struct {
	id  int64
	err error
}

type statsLoadedMsg struct {
	stats models.AdminStats
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
