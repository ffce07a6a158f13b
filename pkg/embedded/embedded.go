// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
)

// Files contains the dashboard frontend embedded in the Go binary:
// - frontend/dist/index.html    - dashboard page, served at /
// - frontend/dist/assets/       - stylesheet and application script, served at /assets/
//
//go:embed frontend/dist
var Files embed.FS
