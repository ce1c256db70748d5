package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/mock"
	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

const testSiteURL = "https://travel.example.com/"

func newTestContentService(t *testing.T) (ContentService, *mock.MockFeatureAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	feature := mock.NewMockFeatureAdapter(ctrl)
	return NewContentService(feature, validators.NewFormValidator(), testSiteURL, logger.Nop()), feature
}

func TestContentService_Stories(t *testing.T) {
	svc, feature := newTestContentService(t)
	ctx := context.Background()

	q := models.ListQuery{Page: 2, PerPage: 10, Search: "alps"}
	page := models.Page[models.Story]{Items: []models.Story{{ID: 1}, {ID: 2}}, Page: 2, TotalPages: 3}

	feature.EXPECT().ListStories(ctx, q).Return(page, nil)
	feature.EXPECT().GetStory(ctx, int64(1)).Return(models.Story{ID: 1, Title: "Alps"}, nil)
	feature.EXPECT().LikeStory(ctx, int64(1)).Return(models.ToggleResult{Active: true, Count: 4}, nil)
	feature.EXPECT().BookmarkStory(ctx, int64(1)).Return(models.ToggleResult{}, adapter.NewStatusError(http.StatusUnauthorized, ""))

	got, err := svc.ListStories(ctx, q)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.True(t, got.HasNext())

	story, err := svc.GetStory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alps", story.Title)

	like, err := svc.LikeStory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, like.Count)

	_, err = svc.BookmarkStory(ctx, 1)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestContentService_ShareURL(t *testing.T) {
	svc, _ := newTestContentService(t)

	tests := []struct {
		name  string
		story models.Story
		want  string
	}{
		{
			name:  "default path",
			story: models.Story{ID: 42},
			want:  "https://travel.example.com/stories/42",
		},
		{
			name:  "server path",
			story: models.Story{ID: 42, ShareURLPath: "/s/alps-trip"},
			want:  "https://travel.example.com/s/alps-trip",
		},
		{
			name:  "relative server path",
			story: models.Story{ID: 42, ShareURLPath: "s/alps-trip"},
			want:  "https://travel.example.com/s/alps-trip",
		},
		{
			name:  "absolute server url",
			story: models.Story{ID: 42, ShareURLPath: "https://cdn.example.com/s/42"},
			want:  "https://cdn.example.com/s/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ShareURL(tt.story))
		})
	}
}

func TestContentService_GalleryAndTours(t *testing.T) {
	svc, feature := newTestContentService(t)
	ctx := context.Background()

	feature.EXPECT().ListGallery(ctx, models.ListQuery{Category: "mountains"}).
		Return(models.Page[models.GalleryItem]{Items: []models.GalleryItem{{ID: 5}}}, nil)
	feature.EXPECT().ListTours(ctx, models.ListQuery{}).
		Return(models.Page[models.Tour]{}, errors.New("boom"))
	feature.EXPECT().GetTour(ctx, int64(3)).Return(models.Tour{ID: 3, Days: 7}, nil)

	gallery, err := svc.ListGallery(ctx, models.ListQuery{Category: "mountains"})
	require.NoError(t, err)
	assert.Len(t, gallery.Items, 1)

	_, err = svc.ListTours(ctx, models.ListQuery{})
	assert.Error(t, err)

	tour, err := svc.GetTour(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, tour.Days)
}

func TestContentService_CreateBooking(t *testing.T) {
	valid := models.Booking{
		TourID:    3,
		Name:      "Ann",
		Email:     "ann@example.com",
		Travelers: 2,
		StartDate: time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("valid booking is sent", func(t *testing.T) {
		svc, feature := newTestContentService(t)
		ctx := context.Background()

		feature.EXPECT().CreateBooking(ctx, valid).Return(models.BookingConfirmation{Reference: "BK-1"}, nil)

		conf, err := svc.CreateBooking(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "BK-1", conf.Reference)
	})

	t.Run("invalid booking is not sent", func(t *testing.T) {
		svc, _ := newTestContentService(t)

		b := valid
		b.Travelers = 0

		_, err := svc.CreateBooking(context.Background(), b)
		assert.ErrorIs(t, err, validators.ErrInvalidTravelers)
	})
}

func TestContentService_SendContactMessage(t *testing.T) {
	msg := models.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello there"}

	t.Run("valid message is sent", func(t *testing.T) {
		svc, feature := newTestContentService(t)
		ctx := context.Background()

		feature.EXPECT().SendContactMessage(ctx, msg).Return(nil)
		assert.NoError(t, svc.SendContactMessage(ctx, msg))
	})

	t.Run("missing email", func(t *testing.T) {
		svc, _ := newTestContentService(t)

		m := msg
		m.Email = ""
		err := svc.SendContactMessage(context.Background(), m)
		assert.ErrorIs(t, err, validators.ErrEmailRequired)
	})
}

func TestContentService_TrackPageView(t *testing.T) {
	svc, feature := newTestContentService(t)
	ctx := context.Background()

	feature.EXPECT().TrackPageView(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v models.PageView) error {
			assert.Equal(t, "/stories", v.Path)
			assert.Equal(t, "/", v.Referrer)
			assert.False(t, v.Timestamp.IsZero())
			return errors.New("analytics down")
		},
	)

	svc.TrackPageView(ctx, "/stories", "/")
}
