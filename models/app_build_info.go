// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version metadata injected with -ldflags at build
// time. Missing values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func (a AppBuildInfo) String() string {
	return "version " + a.Version + ", built " + a.Date + " from " + a.Commit
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// ServiceDescription is the document served on the root path. It lists the
// public endpoints grouped by resource.
type ServiceDescription struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Database  string                       `json:"database"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}
