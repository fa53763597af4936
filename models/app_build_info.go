// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// buildValueNA stands in for build metadata the linker did not set.
const buildValueNA = "N/A"

// AppBuildInfo is the version stamp of the chat client and the dev server.
//
// The values come from -ldflags at build time. The client shows them in the
// TUI about window, and the dev server reports the version on /health.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version, empty for a local build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the stamp as "version (commit, date)" for startup logs.
// Unset parts read N/A.
func (a AppBuildInfo) String() string {
	return orNA(a.buildVersion) + " (" + orNA(a.buildCommit) + ", " + orNA(a.buildDate) + ")"
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return buildValueNA
	}
	return v
}
