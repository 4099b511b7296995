// Copyright (C) 2024-2025 the go-exposure authors.
// This file is part of go-exposure
//
// go-exposure is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-exposure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-exposure.  If not, see <https://www.gnu.org/licenses/>.

// Package config carries build version information for the tools.
package config

import "fmt"

// We follow the principles set forth by the Semantic Versioning
// Specification, https://semver.org/

// VersionMajor is the major semantic version number (#.y.z), changed when
// backwards compatibility is broken.
const VersionMajor = 0

// VersionMinor is the minor semantic version number (x.#.z), changed when
// backwards-compatible features are introduced.
const VersionMinor = 1

// BuildNumber is the monotonic build number, set using -ldflags.
var BuildNumber string

// CommitHash is the commit the build is based on, set using -ldflags.
var CommitHash string

// Version holds the full version information.
type Version struct {
	Major       int
	Minor       int
	BuildNumber string
	CommitHash  string
}

func (v Version) String() string {
	build := v.BuildNumber
	if build == "" {
		build = "0"
	}
	return fmt.Sprintf("%d.%d.%s", v.Major, v.Minor, build)
}

var currentVersion = Version{
	Major:       VersionMajor,
	Minor:       VersionMinor,
	BuildNumber: BuildNumber,
	CommitHash:  CommitHash,
}

// GetCurrentVersion retrieves a copy of the current global Version structure.
func GetCurrentVersion() Version {
	return currentVersion
}

// FormatVersionAndLicense prints current version and license information.
func FormatVersionAndLicense() string {
	v := GetCurrentVersion()
	return fmt.Sprintf("%s (commit #%s)\n%s", v.String(), v.CommitHash, GetLicenseInfo())
}

// GetLicenseInfo retrieves the current license information.
func GetLicenseInfo() string {
	return "go-exposure is licensed with AGPLv3.0"
}
