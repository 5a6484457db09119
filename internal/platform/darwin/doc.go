//go:build darwin

// Package darwin provides macOS accessibility state support using AppKit
// and the Accessibility APIs. All functionality requires CGo (Objective-C
// frameworks). When CGo is disabled, the package compiles as a no-op stub.
package darwin
