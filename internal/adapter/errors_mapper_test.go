// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
)

func testAdapterConfig(url string) config.ClientAdapter {
	return config.ClientAdapter{BaseURL: url, RequestTimeout: 2 * time.Second}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"message":"bad input"}`, ErrBadRequest, "bad input"},
		{http.StatusUnauthorized, `{"error":"expired"}`, ErrUnauthorized, "expired"},
		{http.StatusForbidden, "", ErrForbidden, "Forbidden"},
		{http.StatusNotFound, "missing", ErrNotFound, "missing"},
		{http.StatusConflict, `{}`, ErrConflict, "Conflict"},
		{http.StatusUnprocessableEntity, `{"message":"invalid"}`, ErrUnprocessable, "invalid"},
		{http.StatusTooManyRequests, "", ErrTooManyRequests, "Too Many Requests"},
		{http.StatusInternalServerError, "<html>boom</html>", ErrInternalServerError, "Internal Server Error"},
		{http.StatusBadGateway, "", ErrBadGateway, "Bad Gateway"},
		{http.StatusServiceUnavailable, "", ErrServiceUnavailable, "Service Unavailable"},
		{http.StatusTeapot, "", ErrUnexpectedStatus, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := newTestBackend(t, func(r chi.Router) {
				r.Get("/x", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})
			})

			client, err := NewHTTPClient(testAdapterConfig(srv.URL))
			require.NoError(t, err)
			resp, err := client.R().Get("/x")
			require.NoError(t, err)

			mapped := mapHTTPError(resp)
			require.Error(t, mapped)
			assert.True(t, errors.Is(mapped, tt.want))
			assert.Equal(t, tt.status, StatusOf(mapped))
			assert.Equal(t, tt.wantMsg, MessageOf(mapped))
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	srv := newTestBackend(t, func(r chi.Router) {
		r.Get("/x", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	client, err := NewHTTPClient(testAdapterConfig(srv.URL))
	require.NoError(t, err)
	resp, err := client.R().Get("/x")
	require.NoError(t, err)
	assert.NoError(t, mapHTTPError(resp))
}

func TestStatusOf_NonStatusError(t *testing.T) {
	assert.Zero(t, StatusOf(errors.New("x")))
	assert.Empty(t, MessageOf(ErrTransport))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"https://api.example.com/", "https://api.example.com", false},
		{"api.example.com", "https://api.example.com", false},
		{"http://localhost:8080", "http://localhost:8080", false},
		{"  ", "", true},
		{"ftp://example.com", "", true},
		{"https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAdapters_InvalidBaseURL(t *testing.T) {
	_, err := NewAdapters(testAdapterConfig(""), &spySessionStore{}, logger.Nop())
	require.Error(t, err)
}
