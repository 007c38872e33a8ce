/*

Package pregen contains the release identification printed by --version. The values are
updated by hand as part of cutting a release.

*/
package pregen

const (
	// Version follows semver and matches the release tag
	Version = "v0.3.0"
	// ReleaseDate is the date the release was tagged
	ReleaseDate = "2026-10-16"
)
