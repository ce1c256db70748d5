package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/utils"
	"github.com/MKhiriev/go-site-client/models"
)

type httpFeatureAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPFeatureAdapter returns a [FeatureAdapter] sending requests through
// client.
func NewHTTPFeatureAdapter(client *utils.HTTPClient, logger *logger.Logger) FeatureAdapter {
	return &httpFeatureAdapter{client: client, logger: logger}
}

func (h *httpFeatureAdapter) ListStories(ctx context.Context, q models.ListQuery) (models.Page[models.Story], error) {
	return fetch[models.Page[models.Story]](ctx, setListQuery(h.client.R(), q), http.MethodGet, pathStories)
}

func (h *httpFeatureAdapter) GetStory(ctx context.Context, id int64) (models.Story, error) {
	req := h.client.R().SetPathParam("id", idParam(id))
	return fetch[models.Story](ctx, req, http.MethodGet, pathStory)
}

func (h *httpFeatureAdapter) LikeStory(ctx context.Context, id int64) (models.ToggleResult, error) {
	req := h.client.R().SetPathParam("id", idParam(id))
	return fetch[models.ToggleResult](ctx, req, http.MethodPost, pathStoryLike)
}

func (h *httpFeatureAdapter) BookmarkStory(ctx context.Context, id int64) (models.ToggleResult, error) {
	req := h.client.R().SetPathParam("id", idParam(id))
	return fetch[models.ToggleResult](ctx, req, http.MethodPost, pathStoryBookmark)
}

func (h *httpFeatureAdapter) ListGallery(ctx context.Context, q models.ListQuery) (models.Page[models.GalleryItem], error) {
	return fetch[models.Page[models.GalleryItem]](ctx, setListQuery(h.client.R(), q), http.MethodGet, pathGallery)
}

func (h *httpFeatureAdapter) ListTours(ctx context.Context, q models.ListQuery) (models.Page[models.Tour], error) {
	return fetch[models.Page[models.Tour]](ctx, setListQuery(h.client.R(), q), http.MethodGet, pathTours)
}

func (h *httpFeatureAdapter) GetTour(ctx context.Context, id int64) (models.Tour, error) {
	req := h.client.R().SetPathParam("id", idParam(id))
	return fetch[models.Tour](ctx, req, http.MethodGet, pathTour)
}

func (h *httpFeatureAdapter) CreateBooking(ctx context.Context, b models.Booking) (models.BookingConfirmation, error) {
	return fetch[models.BookingConfirmation](ctx, h.client.R().SetBody(b), http.MethodPost, pathBookings)
}

func (h *httpFeatureAdapter) SendContactMessage(ctx context.Context, m models.ContactMessage) error {
	return send(ctx, h.client.R().SetBody(m), http.MethodPost, pathContact)
}

func (h *httpFeatureAdapter) ListMessages(ctx context.Context, q models.ListQuery) (models.Page[models.ContactMessage], error) {
	return fetch[models.Page[models.ContactMessage]](ctx, setListQuery(h.client.R(), q), http.MethodGet, pathAdminMessages)
}

func (h *httpFeatureAdapter) MarkMessageRead(ctx context.Context, id int64) error {
	return send(ctx, h.client.R().SetPathParam("id", idParam(id)), http.MethodPut, pathAdminMessage)
}

func (h *httpFeatureAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	return fetch[models.AdminStats](ctx, h.client.R(), http.MethodGet, pathAdminStats)
}

func (h *httpFeatureAdapter) TrackPageView(ctx context.Context, v models.PageView) error {
	return send(ctx, h.client.R().SetBody(v), http.MethodPost, pathPageView)
}

func fetch[T any](ctx context.Context, req *resty.Request, method, path string) (T, error) {
	var zero T

	resp, err := execute(ctx, req, method, path)
	if err != nil {
		return zero, err
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	out, err := decodeData[T](resp.Body())
	if err != nil {
		return zero, fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, path, err)
	}
	return out, nil
}

func send(ctx context.Context, req *resty.Request, method, path string) error {
	resp, err := execute(ctx, req, method, path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}
