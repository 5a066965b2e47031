//go:build linux

// Package x11 implements the pointer locator over the X11 wire protocol.
package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Locator queries the X server for the global pointer position. Each query
// opens its own connection; the launcher asks at most once per run.
type Locator struct{}

// PointerPosition returns the pointer coordinates on the root window of the
// default screen. A connection failure (headless session, unset DISPLAY) is
// returned unmodified so the caller sees the real cause; there is no retry.
func (Locator) PointerPosition() (int, int, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	reply, err := xproto.QueryPointer(conn, root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}
