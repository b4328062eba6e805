// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the content console process lifecycle.
//
// It restores the saved session, runs the background profile refresh and
// hands the terminal to the UI until the user quits or the process gets a
// stop signal.
package client
