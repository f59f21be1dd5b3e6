package plot

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/hcoords/internal/logging"
)

const tsFormat = "2006-01-02 15:04:05"

func renderPDF(c *Context, w io.Writer, figs ...*Figure) error {
	if len(figs) == 0 {
		return fmt.Errorf("no figures to render")
	}
	logging.Debug("Render PDF with %d figures", len(figs))

	pdf := setupPDF(figs[0].Title, time.Now())
	for _, fig := range figs {
		err := figureToPDF(c, pdf, fig)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func setupPDF(title string, created time.Time) *gofpdf.Fpdf {
	orientation := "L" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	pageSize := "A4"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("hcoords", true)
	pdf.SetTitle(title, true)
	pdf.SetCreationDate(created.UTC())

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v",
			pdf.PageNo(),
			created.Local().Format(tsFormat))
	})

	return pdf
}

// figureToPDF adds a page with the PNG rendering of the figure.
func figureToPDF(c *Context, pdf *gofpdf.Fpdf, fig *Figure) error {
	dst, err := renderImage(c, fig)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = png.Encode(&buf, dst)
	if err != nil {
		return err
	}

	pdf.AddPage()

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	// The image is scaled to the usable page width,
	// or to the usable height if that is the tighter bound.
	wPage, hPage := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	wAvail := wPage - left - right
	hAvail := hPage - top - 40

	ratio := float64(c.Height) / float64(c.Width)
	wImg := wAvail
	hImg := wImg * ratio
	if hImg > hAvail {
		hImg = hAvail
		wImg = hImg / ratio
	}

	x := left + (wAvail-wImg)/2
	y := top
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, wImg, hImg, flow, opts, link, linkStr)

	return pdf.Error()
}
