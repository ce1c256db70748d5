// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session state, the HTTP interceptor and the
// background workers into a single process lifecycle.
package client
