// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle, and provides the one-shot command line commands that
// work against the same session.
package client
