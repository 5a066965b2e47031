//go:build linux

package x11

import "github.com/radux/radux-launch/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Locator: Locator{}}, nil
	}
}
