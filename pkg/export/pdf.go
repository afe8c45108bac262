// Package export writes campus scenes to CAD, print and spreadsheet formats.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/ChicagoDave/campusgrid/pkg/scene2d"
)

// ErrEmptyScene is returned when there is nothing to draw.
var ErrEmptyScene = errors.New("scene has no records")

type rgb struct {
	R, G, B int
}

var recordColors = []rgb{
	{R: 76, G: 175, B: 80},
	{R: 33, G: 150, B: 243},
	{R: 255, G: 152, B: 0},
	{R: 156, G: 39, B: 176},
	{R: 0, G: 188, B: 212},
	{R: 244, G: 67, B: 54},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// canvas maps grid units onto the page.
type canvas struct {
	scale, offsetX, offsetY float64
}

func (c canvas) xy(p [2]float64) (float64, float64) {
	return c.offsetX + p[0]*c.scale, c.offsetY + p[1]*c.scale
}

// WritePDF renders the scene on one page: the grid, every outline filled
// with its record color, corridors and doors, scaled to fit.
func WritePDF(path string, sc *scene2d.Scene2D) error {
	if sc == nil || len(sc.Records) == 0 {
		return ErrEmptyScene
	}
	n := float64(sc.Metadata.GridSize)
	if n <= 0 {
		return fmt.Errorf("grid size %d: %w", sc.Metadata.GridSize, ErrEmptyScene)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Campus grid %dx%d: %d buildings, %d doors",
		sc.Metadata.GridSize, sc.Metadata.GridSize, sc.Metadata.BuildingCount, sc.Metadata.DoorCount)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/n, drawHeight/n)
	c := canvas{
		scale:   scale,
		offsetX: marginLeft + (drawWidth-n*scale)/2,
		offsetY: drawAreaTop,
	}

	drawGrid(pdf, c, sc.Metadata.GridSize)
	for i, r := range sc.Records {
		drawRecord(pdf, c, r, recordColors[i%len(recordColors)])
	}
	return pdf.OutputFileAndClose(path)
}

func drawGrid(pdf *fpdf.Fpdf, c canvas, n int) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	for i := 0; i <= n; i++ {
		x0, y0 := c.xy([2]float64{float64(i), 0})
		x1, y1 := c.xy([2]float64{float64(i), float64(n)})
		pdf.Line(x0, y0, x1, y1)
		x0, y0 = c.xy([2]float64{0, float64(i)})
		x1, y1 = c.xy([2]float64{float64(n), float64(i)})
		pdf.Line(x0, y0, x1, y1)
	}
}

func drawRecord(pdf *fpdf.Fpdf, c canvas, r scene2d.Record2D, col rgb) {
	if len(r.Outline) >= 3 {
		pts := make([]fpdf.PointType, 0, len(r.Outline))
		for _, p := range r.Outline {
			x, y := c.xy(p)
			pts = append(pts, fpdf.PointType{X: x, Y: y})
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.4)
		pdf.Polygon(pts, "FD")
	}

	pdf.SetDrawColor(90, 90, 90)
	pdf.SetLineWidth(0.2)
	for _, cor := range r.Corridors {
		drawPolyline(pdf, c, cor.Points)
	}

	for _, d := range r.Doors {
		x, y := c.xy(d.Position)
		if d.Accessible {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(0, 0, 0)
		}
		pdf.SetDrawColor(0, 0, 0)
		pdf.Circle(x, y, 0.8, "FD")
	}

	if len(r.Centers) > 0 {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
		x, y := c.xy(r.Centers[0].Position)
		label := fmt.Sprintf("%d", r.BuildingID)
		w := pdf.GetStringWidth(label)
		pdf.SetXY(x-w/2, y-2)
		pdf.CellFormat(w, 4, label, "", 0, "C", false, 0, "")
	}
}

func drawPolyline(pdf *fpdf.Fpdf, c canvas, pts [][2]float64) {
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := c.xy(pts[i])
		x1, y1 := c.xy(pts[i+1])
		pdf.Line(x0, y0, x1, y1)
	}
}
