// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the site client: a path based
// router with route guards and one screen per route.
package tui

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/models"
)

// Deps are the services and settings shared by every screen.
type Deps struct {
	Ctx     context.Context
	Session *service.SessionState
	Auth    service.AuthClient
	Content service.ContentService
	Admin   service.AdminService

	BuildInfo   models.AppBuildInfo
	Development bool

	// Clipboard copies text for the share action. Defaults to the system
	// clipboard.
	Clipboard func(string) error

	Logger *logger.Logger
}

// NewDeps builds [Deps] from the client services.
func NewDeps(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, development bool, log *logger.Logger) Deps {
	return Deps{
		Ctx:         ctx,
		Session:     services.Session,
		Auth:        services.Auth,
		Content:     services.Content,
		Admin:       services.Admin,
		BuildInfo:   buildInfo,
		Development: development,
		Clipboard:   clipboard.WriteAll,
		Logger:      log,
	}
}

func (d Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

func (d Deps) log() *logger.Logger {
	if d.Logger == nil {
		return logger.Nop()
	}
	return d.Logger
}

func (d Deps) snapshot() service.Snapshot {
	if d.Session == nil {
		return service.Snapshot{}
	}
	return d.Session.Snapshot()
}
