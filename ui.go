package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/stepchart/backend"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	win   *app.Window
	ws    backend.WindowState
	expl  *explorer.Explorer
	watch bool

	chart   *ChartData
	openBtn widget.Clickable

	th           *material.Theme
	statusStream *stream.Stream[backend.Status]
	status       backend.Status
	loadErr      string

	picked chan pickResult
}

type pickResult struct {
	path string
	err  error
}

func NewUI(win *app.Window, ws backend.WindowState, expl *explorer.Explorer, watch bool) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		win:    win,
		ws:     ws,
		th:     th,
		expl:   expl,
		watch:  watch,
		chart:  NewChart(),
		picked: make(chan pickResult, 1),
	}
	if ws.Datasource != nil {
		ui.statusStream = stream.New(ws.Controller, ws.Datasource.Status)
	}
	return ui
}

func (ui *UI) setDatasource(ds *backend.Datasource) {
	ui.statusStream = stream.New(ui.ws.Controller, ds.Status)
}

// openFile asks the platform file picker for a table. The result lands
// on a channel drained during Update so no UI state mutates off the
// frame loop.
func (ui *UI) openFile() {
	go func() {
		f, err := ui.expl.ChooseFile(".csv", ".xlsx")
		if err != nil {
			ui.picked <- pickResult{err: err}
			ui.win.Invalidate()
			return
		}
		defer f.Close()
		named, ok := f.(interface{ Name() string })
		if !ok {
			ui.picked <- pickResult{err: fmt.Errorf("chosen file has no usable path")}
			ui.win.Invalidate()
			return
		}
		ui.picked <- pickResult{path: named.Name()}
		ui.win.Invalidate()
	}()
}

// Update the state of the UI and generate events. Must be called once
// per frame before laying out.
func (ui *UI) Update(gtx C) {
	select {
	case res := <-ui.picked:
		if res.err != nil {
			ui.loadErr = res.err.Error()
		} else {
			ui.setDatasource(backend.NewDatasource(res.path, ui.watch))
		}
	default:
	}
	if ui.statusStream != nil {
		ui.statusStream.ReadInto(gtx, &ui.status, backend.Status{})
	}
	if ui.status.Err != nil {
		ui.loadErr = ui.status.Err.Error()
	} else if ui.status.Table != nil {
		ui.loadErr = ""
		ui.chart.SetTable(ui.status.Table)
	}
	if ui.openBtn.Clicked(gtx) {
		ui.openFile()
	}
}

func (ui *UI) layoutMainArea(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						gtx.Constraints.Min = image.Point{}
						gtx.Constraints.Max.X = gtx.Dp(24)
						gtx.Constraints.Max.Y = gtx.Dp(24)
						return material.Clickable(gtx, &ui.openBtn, func(gtx C) D {
							return openIcon.Layout(gtx, ui.th.Fg)
						})
					}),
					layout.Rigid(layout.Spacer{Width: 8}.Layout),
					layout.Flexed(1, material.Body2(ui.th, ui.status.Path).Layout),
				)
			})
		}),
		layout.Rigid(func(gtx C) D {
			if len(ui.loadErr) == 0 {
				return D{}
			}
			l := material.Body1(ui.th, ui.loadErr)
			l.Color = color.NRGBA{R: 150, A: 255}
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			return ui.chart.Layout(gtx, ui.th)
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	l := material.Body1(ui.th, "No table loaded.")
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.openBtn, "Open Table").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body2(ui.th, ui.loadErr).Layout(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.chart.HasData() {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
