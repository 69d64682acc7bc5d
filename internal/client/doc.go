// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime behind the zsync commands.
//
// It wires the local replica, the server adapter and the client services,
// runs one-shot commands and the long-running watch mode.
package client
