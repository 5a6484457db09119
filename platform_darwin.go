//go:build darwin

package main

// Register the macOS backend.
import _ "github.com/a11ytools/a11y-cli/internal/platform/darwin"
