package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

type adminService struct {
	adapter adapter.FeatureAdapter
	logger  *logger.Logger

	inflight singleflight.Group
}

// NewAdminService returns an [AdminService].
func NewAdminService(featureAdapter adapter.FeatureAdapter, logger *logger.Logger) AdminService {
	return &adminService{adapter: featureAdapter, logger: logger}
}

func (a *adminService) LoadMessages(ctx context.Context, q models.ListQuery) (models.Page[models.ContactMessage], error) {
	key := fmt.Sprintf("messages:%d:%d:%s:%s", q.Page, q.PerPage, q.Search, q.Category)

	v, err, shared := a.inflight.Do(key, func() (any, error) {
		return a.adapter.ListMessages(ctx, q)
	})
	if shared {
		a.logger.Debug().Str("func", "adminService.LoadMessages").Str("key", key).Msg("joined in-flight request")
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "adminService.LoadMessages").Msg("failed to load messages")
		return models.Page[models.ContactMessage]{}, err
	}

	return v.(models.Page[models.ContactMessage]), nil
}

func (a *adminService) MarkMessageRead(ctx context.Context, id int64) error {
	if err := a.adapter.MarkMessageRead(ctx, id); err != nil {
		a.logger.Warn().Err(err).Str("func", "adminService.MarkMessageRead").Int64("id", id).Msg("failed to mark message read")
		return err
	}
	return nil
}

func (a *adminService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := a.adapter.AdminStats(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "adminService.Stats").Msg("failed to load admin stats")
		return models.AdminStats{}, err
	}
	return stats, nil
}
