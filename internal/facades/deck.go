package facades

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFDeck authors a slide-deck style report as landscape PDF pages,
// one page per slide. The byte layout of the output is the library's
// concern; callers only see the slide-level operations.
type PDFDeck struct {
	pdf    *fpdf.Fpdf
	images int
}

// NewPDFDeck creates an empty deck.
func NewPDFDeck() *PDFDeck {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)
	return &PDFDeck{pdf: pdf}
}

// AddTitleSlide adds the opening slide.
func (d *PDFDeck) AddTitleSlide(title, subtitle string) {
	d.pdf.AddPage()
	d.pdf.SetFont("Helvetica", "B", 32)
	d.pdf.SetY(80)
	d.pdf.CellFormat(0, 16, title, "", 1, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 16)
	d.pdf.CellFormat(0, 10, subtitle, "", 1, "C", false, 0, "")
}

// AddTableSlide adds a slide with a header row and up to the rows that fit.
func (d *PDFDeck) AddTableSlide(title string, columns []string, rows [][]string) {
	d.pdf.AddPage()
	d.slideTitle(title)

	if len(columns) == 0 {
		return
	}

	pageW, pageH := d.pdf.GetPageSize()
	colW := (pageW - 20) / float64(len(columns))

	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetX(10)
	for _, c := range columns {
		d.pdf.CellFormat(colW, 8, c, "1", 0, "L", false, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		if d.pdf.GetY() > pageH-20 {
			break
		}
		d.pdf.SetX(10)
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			d.pdf.CellFormat(colW, 7, cell, "1", 0, "L", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

// AddChartSlide adds a slide with one rendered PNG chart centered on it.
func (d *PDFDeck) AddChartSlide(title string, png []byte) {
	d.pdf.AddPage()
	d.slideTitle(title)

	d.images++
	name := fmt.Sprintf("chart-%d", d.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))

	pageW, _ := d.pdf.GetPageSize()
	imgW := pageW - 80
	d.pdf.ImageOptions(name, 40, 35, imgW, 0, false, opts, 0, "")
}

// AddTextSlide adds a slide with a block of wrapped text.
func (d *PDFDeck) AddTextSlide(title, text string) {
	d.pdf.AddPage()
	d.slideTitle(title)
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.SetXY(15, 35)
	d.pdf.MultiCell(0, 7, text, "", "L", false)
}

// Bytes closes the deck and returns the rendered document.
func (d *PDFDeck) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *PDFDeck) slideTitle(title string) {
	d.pdf.SetFont("Helvetica", "B", 20)
	d.pdf.SetXY(10, 12)
	d.pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
}
