// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/models"
)

func TestListStories_QueryAndEnvelope(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Get("/api/stories", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("per_page"))
			assert.Equal(t, "alps", r.URL.Query().Get("q"))
			assert.False(t, r.URL.Query().Has("category"))
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{
					"items":       []map[string]any{{"id": 1, "title": "Alps"}},
					"page":        2,
					"total_pages": 3,
				},
			})
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	page, err := a.Feature.ListStories(context.Background(), models.ListQuery{Page: 2, PerPage: 10, Search: "alps"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alps", page.Items[0].Title)
	assert.True(t, page.HasNext())
}

func TestGetStory_BareBody(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Get("/api/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "42", chi.URLParam(r, "id"))
			writeJSON(w, http.StatusOK, map[string]any{"id": 42, "title": "Fjords", "likes": 7})
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	story, err := a.Feature.GetStory(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), story.ID)
	assert.Equal(t, 7, story.Likes)
}

func TestGetTour_NotFound(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Get("/api/tours/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Tour not found"})
		})
	})

	a, sessions := newTestAdapters(t, srv.URL)
	_, err := a.Feature.GetTour(context.Background(), 9)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Tour not found", MessageOf(err))
	assert.Zero(t, sessions.cleared.Load())
}

func TestToggles(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Post("/api/stories/{id}/like", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"active": true, "count": 8})
		})
		r.Post("/api/stories/{id}/bookmark", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"active": false, "count": 0}})
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	like, err := a.Feature.LikeStory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.ToggleResult{Active: true, Count: 8}, like)

	bm, err := a.Feature.BookmarkStory(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, bm.Active)
}

func TestCreateBooking(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Post("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
			var b models.Booking
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&b))
			assert.Equal(t, int64(3), b.TourID)
			writeJSON(w, http.StatusCreated, map[string]any{"reference": "BK-1", "message": "Booked"})
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	conf, err := a.Feature.CreateBooking(context.Background(), models.Booking{TourID: 3, Travelers: 2})
	require.NoError(t, err)
	assert.Equal(t, "BK-1", conf.Reference)
}

func TestContactAndAnalytics(t *testing.T) {
	var contacted, tracked bool
	srv := newTestBackend(t, func(r chi.Router) {
		r.Post("/api/contact", func(w http.ResponseWriter, r *http.Request) {
			contacted = true
			w.WriteHeader(http.StatusNoContent)
		})
		r.Post("/api/analytics/page-view", func(w http.ResponseWriter, r *http.Request) {
			var v models.PageView
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&v))
			tracked = v.Path == "/stories"
			w.WriteHeader(http.StatusAccepted)
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	require.NoError(t, a.Feature.SendContactMessage(context.Background(), models.ContactMessage{Name: "Ann"}))
	require.NoError(t, a.Feature.TrackPageView(context.Background(), models.PageView{Path: "/stories"}))
	assert.True(t, contacted)
	assert.True(t, tracked)
}

func TestAdminEndpoints(t *testing.T) {
	var markedID string
	srv := newTestBackend(t, func(r chi.Router) {
		r.Get("/api/admin/messages", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"items": []map[string]any{{"id": 5, "subject": "Hi", "message": "Hello"}}, "page": 1, "total_pages": 1})
		})
		r.Put("/api/admin/messages/{id}/read", func(w http.ResponseWriter, r *http.Request) {
			markedID = chi.URLParam(r, "id")
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"users": 10, "unread_messages": 2})
		})
	})

	a, _ := newTestAdapters(t, srv.URL)
	msgs, err := a.Feature.ListMessages(context.Background(), models.ListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, msgs.Items, 1)
	assert.Equal(t, "Hello", msgs.Items[0].Body)
	assert.False(t, msgs.HasNext())

	require.NoError(t, a.Feature.MarkMessageRead(context.Background(), 5))
	assert.Equal(t, "5", markedID)

	stats, err := a.Feature.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.UnreadMessages)
}
