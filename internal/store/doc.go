// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's persistent local storage.
//
// [LocalStorage] is a string key/value table kept in a sqlite file next to
// the client. [SessionStore] is the typed view over it that the auth layer
// uses for the cached user and session metadata.
package store
