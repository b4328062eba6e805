// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BuildUnknown stands in for build metadata the linker did not set.
const BuildUnknown = "N/A"

// BuildInfo is the version stamp of the console binary, set through
// -ldflags "-X main.buildVersion=..." and friends.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo trims the linker values; an empty one becomes [BuildUnknown].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (b BuildInfo) Version() string { return b.version }
func (b BuildInfo) Date() string    { return b.date }
func (b BuildInfo) Commit() string  { return b.commit }

// Released reports whether the binary carries a version, which local
// `go run` builds do not.
func (b BuildInfo) Released() bool {
	return b.version != BuildUnknown
}

// String renders the stamp as "<version> (<commit>, <date>)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.version, b.commit, b.date)
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return BuildUnknown
	}
	return v
}
