// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, local history storage, and the
// background prune job into a single process lifecycle.
package client
