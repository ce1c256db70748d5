// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net/url"
	"time"
)

// BaseURL holds a validated absolute http(s) URL.
// It implements the flag.Value interface.
type BaseURL struct {
	u *url.URL
}

// String returns the URL without a trailing slash, or an empty string when
// unset.
func (b *BaseURL) String() string {
	if b == nil || b.u == nil {
		return ""
	}

	s := b.u.String()
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Set parses s and accepts only absolute http or https URLs with a host.
func (b *BaseURL) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("base url must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("base url must include a host")
	}

	b.u = u
	return nil
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-u backend base URL (https://host[:port])
//	-request-timeout request timeout (e.g. "10s")
//	-d local sqlite file path
//	-profile-refresh profile refresh interval (e.g. "5m")
//	-site public site URL used in share links
//	-dev development mode
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("site-client", flag.ContinueOnError)

	var baseURL BaseURL
	var siteURL BaseURL
	var requestTimeout time.Duration
	var dsn string
	var refresh time.Duration
	var development bool
	var jsonConfigPath string

	fs.Var(&baseURL, "u", "Backend base URL")
	fs.Var(&siteURL, "site", "Public site URL for share links")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&dsn, "d", "", "Local sqlite file path")
	fs.DurationVar(&refresh, "profile-refresh", 0, "Profile refresh interval (e.g., 5m)")
	fs.BoolVar(&development, "dev", false, "Development mode")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Development: development,
			SiteURL:     siteURL.String(),
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			BaseURL:        baseURL.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ProfileRefreshInterval: refresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
