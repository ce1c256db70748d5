// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/mock"
	"github.com/MKhiriev/go-site-client/internal/service"
)

// orderWorker records Start and Stop calls into a shared journal.
type orderWorker struct {
	id      int
	journal *[]string
}

func (w *orderWorker) Start(context.Context) {
	*w.journal = append(*w.journal, "start", string(rune('0'+w.id)))
}

func (w *orderWorker) Stop() {
	*w.journal = append(*w.journal, "stop", string(rune('0'+w.id)))
}

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var journal []string
	ws := &Workers{workers: []Worker{
		&orderWorker{id: 1, journal: &journal},
		&orderWorker{id: 2, journal: &journal},
		&orderWorker{id: 3, journal: &journal},
	}}

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"start", "1", "start", "2", "start", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, journal)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestNewClientWorkers(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{name: "refresh enabled", interval: time.Minute, want: 1},
		{name: "refresh disabled", interval: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			services := &service.ClientServices{RefreshJob: mock.NewMockProfileRefreshJob(ctrl)}

			ws := NewClientWorkers(services, config.ClientWorkers{ProfileRefreshInterval: tt.interval}, logger.Nop())

			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestProfileRefreshWorker_DrivesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockProfileRefreshJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 3*time.Minute),
		job.EXPECT().Stop(),
	)

	w := NewProfileRefreshWorker(job, 3*time.Minute, logger.Nop())
	w.Start(ctx)
	w.Stop()
}
