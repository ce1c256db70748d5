// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AdminLevel is the administrative privilege of a user as reported by the
// server. An empty value is treated the same as [AdminLevelNone].
type AdminLevel string

const (
	AdminLevelNone       AdminLevel = "none"
	AdminLevelModerator  AdminLevel = "moderator"
	AdminLevelAdmin      AdminLevel = "admin"
	AdminLevelSuperAdmin AdminLevel = "super_admin"
)

// adminLevels is the allow-list of levels that may enter the admin panel.
var adminLevels = map[AdminLevel]struct{}{
	AdminLevelSuperAdmin: {},
	AdminLevelAdmin:      {},
	AdminLevelModerator:  {},
}

// IsAdmin reports whether the level is in the admin allow-list
// (super_admin, admin, moderator).
func (l AdminLevel) IsAdmin() bool {
	_, ok := adminLevels[l]
	return ok
}

// User is the authenticated principal as known to the client.
//
// The snapshot is replaced wholesale on login, profile refresh and logout;
// it is never patched field by field.
type User struct {
	// ID is the server-side identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the login e-mail address.
	Email string `json:"email"`

	// Bio is an optional free-form profile text.
	Bio string `json:"bio,omitempty"`

	// AdminLevel is empty for regular users.
	AdminLevel AdminLevel `json:"admin_level,omitempty"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at"`

	// AvatarURL is an optional absolute URL of the profile picture.
	AvatarURL string `json:"avatar_url,omitempty"`

	// Stats holds server-computed activity counters.
	Stats UserStats `json:"stats"`

	// TwoFactorEnabled is true when the account has 2FA turned on.
	TwoFactorEnabled bool `json:"two_factor_enabled,omitempty"`

	// EmailVerified is true once the e-mail address was confirmed.
	EmailVerified bool `json:"email_verified,omitempty"`
}

// UserStats are activity counters shown on the profile screen.
type UserStats struct {
	Stories   int `json:"stories"`
	Likes     int `json:"likes"`
	Bookmarks int `json:"bookmarks"`
	Bookings  int `json:"bookings"`
}

// IsAdmin reports whether the user may access the admin panel.
func (u User) IsAdmin() bool {
	return u.AdminLevel.IsAdmin()
}

// SessionInfo is auxiliary, server-supplied metadata about the current
// session. The client treats it as opaque.
type SessionInfo map[string]any

// ActiveSession describes one server-side session of the current user.
type ActiveSession struct {
	ID         string    `json:"id"`
	Device     string    `json:"device"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Current    bool      `json:"current"`
}
