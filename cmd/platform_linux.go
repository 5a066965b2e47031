//go:build linux

package cmd

// Register the X11 pointer backend.
import _ "github.com/radux/radux-launch/internal/platform/x11"
