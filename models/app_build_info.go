// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the version, date and commit stamped into a binary
// with -ldflags at release time. The client's version command prints it.
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

// BuildVersion returns the stamped semantic version.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the stamped build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the stamped commit hash.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
