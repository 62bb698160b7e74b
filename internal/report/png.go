package report

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	pngWidth   = 720
	pngHeight  = 520
	pngMargin  = 40.0
	pngRowH    = 26.0
	pngTextPad = 10.0
)

// PNGSink renders the report as a single image using the built-in
// bitmap font, so no font files are needed.
type PNGSink struct{}

func (PNGSink) Write(r Report, w io.Writer) error {
	dc := gg.NewContext(pngWidth, pngHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(r.Title, pngWidth/2, 40, 0.5, 0.5)
	dc.SetColor(color.Gray{Y: 60})
	dc.DrawStringAnchored(r.Subtitle, pngWidth/2, 66, 0.5, 0.5)

	y := pngTable(dc, r.Profile, 100)
	pngTable(dc, r.Score, y+pngRowH)

	dc.SetColor(color.Gray{Y: 150})
	dc.DrawStringAnchored(r.Footer(), pngMargin, pngHeight-20, 0, 0.5)
	dc.DrawStringAnchored("Page 1 of 1", pngWidth-pngMargin, pngHeight-20, 1, 0.5)

	return dc.EncodePNG(w)
}

// pngTable draws t with its top edge at y and returns the bottom edge.
func pngTable(dc *gg.Context, t Table, y float64) float64 {
	width := float64(pngWidth) - 2*pngMargin
	col := width / 2

	dc.SetColor(color.RGBA{t.Fill.R, t.Fill.G, t.Fill.B, 255})
	dc.DrawRectangle(pngMargin, y, width, pngRowH)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawStringAnchored(t.Head[0], pngMargin+pngTextPad, y+pngRowH/2, 0, 0.5)
	dc.DrawStringAnchored(t.Head[1], pngMargin+col+pngTextPad, y+pngRowH/2, 0, 0.5)
	y += pngRowH

	for i, row := range t.Rows {
		if t.Striped && i%2 == 1 {
			dc.SetColor(color.Gray{Y: 245})
			dc.DrawRectangle(pngMargin, y, width, pngRowH)
			dc.Fill()
		}
		if !t.Striped {
			dc.SetColor(color.Gray{Y: 200})
			dc.SetLineWidth(1)
			dc.DrawRectangle(pngMargin, y, col, pngRowH)
			dc.DrawRectangle(pngMargin+col, y, col, pngRowH)
			dc.Stroke()
		}
		dc.SetColor(color.Gray{Y: 50})
		dc.DrawStringAnchored(row.Label, pngMargin+pngTextPad, y+pngRowH/2, 0, 0.5)
		dc.DrawStringAnchored(row.Value, pngMargin+col+pngTextPad, y+pngRowH/2, 0, 0.5)
		y += pngRowH
	}
	return y
}
