// stepchart plots category tables as stair-step charts. It takes an
// optional CSV or xlsx path ("-" reads CSV from stdin) and, with
// -watch, redraws as the file changes.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"

	"git.sr.ht/~whereswaldon/stepchart/backend"
)

func main() {
	watch := flag.Bool("watch", false, "reload the table whenever the file changes on disk")
	flag.Parse()
	go func() {
		w := app.NewWindow(
			app.Title("Step Chart"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := loop(w, flag.Arg(0), *watch); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, path string, watch bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expl := explorer.NewExplorer(w)
	var ds *backend.Datasource
	switch path {
	case "":
	case "-":
		ds = backend.NewReaderDatasource(os.Stdin)
	default:
		ds = backend.NewDatasource(path, watch)
	}
	ws := backend.NewWindowState(ctx, ds, w)
	ui := NewUI(w, ws, expl, watch)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
