package status

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"fixmytypo/internal/i18n"
)

var (
	colorBG    = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorText  = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorDim   = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorOn    = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	colorOff   = color.NRGBA{R: 200, G: 55, B: 55, A: 255}
)

// toggleStyle returns the label and background of the ON/OFF button.
func toggleStyle(enabled bool) (string, color.NRGBA) {
	if enabled {
		return i18n.T("window_on"), colorOn
	}
	return i18n.T("window_off"), colorOff
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	s := w.snapshot()
	label, bg := toggleStyle(s.enabled)

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawLabel(gtx, s.hint, unit.Sp(15), colorText, font.Medium)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawButton(gtx, &w.toggleBtn, label, unit.Sp(22), bg)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawLabel(gtx, s.status, unit.Sp(12), colorDim, font.Normal)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawButton(gtx, &w.exitBtn, i18n.T("window_exit"), unit.Sp(13), colorPanel)
			}),
		)
	})
}

func (w *Window) drawLabel(gtx layout.Context, s string, size unit.Sp, col color.NRGBA, weight font.Weight) layout.Dimensions {
	lbl := material.Label(w.theme, size, s)
	lbl.Color = col
	lbl.Font.Weight = weight
	lbl.Alignment = text.Middle
	return lbl.Layout(gtx)
}

func (w *Window) drawButton(gtx layout.Context, btn *widget.Clickable, label string, size unit.Sp, bgColor color.NRGBA) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(10), Bottom: unit.Dp(10),
			Left: unit.Dp(28), Right: unit.Dp(28),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return w.drawLabel(gtx, label, size, colorText, font.Bold)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}
