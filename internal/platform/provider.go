package platform

import (
	"fmt"
	"runtime"

	"github.com/a11ytools/a11y-cli/internal/emitter"
)

// Provider bundles the accessibility backends for the current OS.
// Bridge is nil when the OS exposes no assistive-technology service to this
// process; Events is always non-nil (it just never fires without a backend).
type Provider struct {
	Bridge Bridge
	Sender EventSender
	Events *emitter.Emitter
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("a11y-cli is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// RequestPermissionsFunc is set by platform-specific packages via init().
// It triggers OS permission prompts (e.g. accessibility access) at startup.
var RequestPermissionsFunc func()

// RunEventLoopFunc is set by platform-specific packages via init().
// It blocks pumping the native notification loop so state-change observers
// fire; commands that stream events call it on the main goroutine.
var RunEventLoopFunc func()

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
