// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow blocks until the user signs in and returns the user name.
	LoginFlow(ctx context.Context) (string, error)

	// MainLoop blocks until the user quits. It reports whether the user
	// asked to log out.
	MainLoop(ctx context.Context, username string) (logout bool, err error)
}
