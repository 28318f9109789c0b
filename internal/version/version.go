// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Year strip with season markers, NOAA reference check, YAML config
// 0.2.0 - Parallel year series, result cache, JSON export
// 0.1.0 - Initial release: sunrise engine, day card TUI, headless table
