//go:build darwin && cgo

package darwin

import (
	"github.com/a11ytools/a11y-cli/internal/emitter"
	"github.com/a11ytools/a11y-cli/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		events := emitter.New()
		StartObservers(events)
		return &platform.Provider{
			Bridge: NewBridge(),
			Sender: NewSender(),
			Events: events,
		}, nil
	}
	platform.RequestPermissionsFunc = RequestPermissions
	platform.RunEventLoopFunc = RunEventLoop
}
