// Package model defines the data structures shared by the audit, output and CLI layers.
package model

// VersionInfo contains build-time metadata about the application.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}
