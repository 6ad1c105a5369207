// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// BuildInfo is the version stamp of a learnly-server binary. The version is
// also what GET /api/version reports when APP_VERSION is unset.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills every empty field with NotAvailable.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines is the startup banner, one field per line.
func (b BuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", b.Version),
		fmt.Sprintf("Build date: %s", b.Date),
		fmt.Sprintf("Build commit: %s", b.Commit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
