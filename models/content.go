// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Page is the pagination envelope used by list endpoints.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// HasNext reports whether another page follows.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Story is a published travel story.
type Story struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content,omitempty"`
	Author       string    `json:"author"`
	CoverURL     string    `json:"cover_url,omitempty"`
	Likes        int       `json:"likes"`
	Liked        bool      `json:"liked"`
	Bookmarked   bool      `json:"bookmarked"`
	PublishedAt  time.Time `json:"published_at"`
	ReadMinutes  int       `json:"read_minutes,omitempty"`
	ShareURLPath string    `json:"share_url,omitempty"`
}

// ToggleResult is returned by like and bookmark toggles.
type ToggleResult struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}

// GalleryItem is an image of the gallery.
type GalleryItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
	Category string `json:"category,omitempty"`
}

// Tour is a bookable tour.
type Tour struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Description string  `json:"description,omitempty"`
	Days        int     `json:"days"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	SeatsLeft   int     `json:"seats_left"`
}

// Booking is a tour booking request.
type Booking struct {
	TourID    int64     `json:"tour_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Travelers int       `json:"travelers"`
	StartDate time.Time `json:"start_date"`
	Notes     string    `json:"notes,omitempty"`
}

// BookingConfirmation is returned after a booking is accepted.
type BookingConfirmation struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// ContactMessage is a message sent through the contact form. Admins read
// them in the admin panel.
type ContactMessage struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	Read      bool      `json:"read,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// AdminStats is the summary shown at the top of the admin panel.
type AdminStats struct {
	Users          int `json:"users"`
	Stories        int `json:"stories"`
	Bookings       int `json:"bookings"`
	UnreadMessages int `json:"unread_messages"`
}

// PageView is an analytics event sent when a screen is opened.
type PageView struct {
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ListQuery selects a page of a list endpoint. Zero values are omitted from
// the request.
type ListQuery struct {
	Page     int
	PerPage  int
	Search   string
	Category string
}
