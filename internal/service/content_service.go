package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

type contentService struct {
	adapter   adapter.FeatureAdapter
	validator validators.Validator
	siteURL   string
	logger    *logger.Logger
}

// NewContentService returns a [ContentService]. siteURL is the public
// origin used for share links.
func NewContentService(featureAdapter adapter.FeatureAdapter, validator validators.Validator, siteURL string, logger *logger.Logger) ContentService {
	return &contentService{
		adapter:   featureAdapter,
		validator: validator,
		siteURL:   strings.TrimRight(siteURL, "/"),
		logger:    logger,
	}
}

func (c *contentService) ListStories(ctx context.Context, q models.ListQuery) (models.Page[models.Story], error) {
	page, err := c.adapter.ListStories(ctx, q)
	if err != nil {
		c.logFailure("contentService.ListStories", err)
		return models.Page[models.Story]{}, err
	}
	return page, nil
}

func (c *contentService) GetStory(ctx context.Context, id int64) (models.Story, error) {
	story, err := c.adapter.GetStory(ctx, id)
	if err != nil {
		c.logFailure("contentService.GetStory", err)
		return models.Story{}, err
	}
	return story, nil
}

func (c *contentService) LikeStory(ctx context.Context, id int64) (models.ToggleResult, error) {
	res, err := c.adapter.LikeStory(ctx, id)
	if err != nil {
		c.logFailure("contentService.LikeStory", err)
		return models.ToggleResult{}, err
	}
	return res, nil
}

func (c *contentService) BookmarkStory(ctx context.Context, id int64) (models.ToggleResult, error) {
	res, err := c.adapter.BookmarkStory(ctx, id)
	if err != nil {
		c.logFailure("contentService.BookmarkStory", err)
		return models.ToggleResult{}, err
	}
	return res, nil
}

func (c *contentService) ShareURL(story models.Story) string {
	path := story.ShareURLPath
	if path == "" {
		path = fmt.Sprintf("/stories/%d", story.ID)
	}
	if strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.siteURL + path
}

func (c *contentService) ListGallery(ctx context.Context, q models.ListQuery) (models.Page[models.GalleryItem], error) {
	page, err := c.adapter.ListGallery(ctx, q)
	if err != nil {
		c.logFailure("contentService.ListGallery", err)
		return models.Page[models.GalleryItem]{}, err
	}
	return page, nil
}

func (c *contentService) ListTours(ctx context.Context, q models.ListQuery) (models.Page[models.Tour], error) {
	page, err := c.adapter.ListTours(ctx, q)
	if err != nil {
		c.logFailure("contentService.ListTours", err)
		return models.Page[models.Tour]{}, err
	}
	return page, nil
}

func (c *contentService) GetTour(ctx context.Context, id int64) (models.Tour, error) {
	tour, err := c.adapter.GetTour(ctx, id)
	if err != nil {
		c.logFailure("contentService.GetTour", err)
		return models.Tour{}, err
	}
	return tour, nil
}

func (c *contentService) CreateBooking(ctx context.Context, b models.Booking) (models.BookingConfirmation, error) {
	if err := c.validator.Validate(ctx, b); err != nil {
		return models.BookingConfirmation{}, err
	}

	conf, err := c.adapter.CreateBooking(ctx, b)
	if err != nil {
		c.logFailure("contentService.CreateBooking", err)
		return models.BookingConfirmation{}, err
	}
	return conf, nil
}

func (c *contentService) SendContactMessage(ctx context.Context, m models.ContactMessage) error {
	if err := c.validator.Validate(ctx, m); err != nil {
		return err
	}

	if err := c.adapter.SendContactMessage(ctx, m); err != nil {
		c.logFailure("contentService.SendContactMessage", err)
		return err
	}
	return nil
}

func (c *contentService) TrackPageView(ctx context.Context, path, referrer string) {
	err := c.adapter.TrackPageView(ctx, models.PageView{
		Path:      path,
		Referrer:  referrer,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "contentService.TrackPageView").Str("path", path).Msg("page view not tracked")
	}
}

func (c *contentService) logFailure(fn string, err error) {
	c.logger.Warn().Err(err).Str("func", fn).Int("status", adapter.StatusOf(err)).Msg("request failed")
}
