package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

// WindowState bundles the resources one window's UI needs: its
// datasource and a stream controller that invalidates the window when
// background data arrives.
type WindowState struct {
	Datasource *Datasource
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, ds *Datasource, win *app.Window) WindowState {
	return WindowState{
		Datasource: ds,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}
