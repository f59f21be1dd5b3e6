package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/hcoords/pkg/plot"
)

type plotOptions struct {
	outDir string
	format string
	merge  bool
	width  int
	height int
}

func doPlot(s settings, o plotOptions) error {
	r, err := s.scenario().Run()
	if err != nil {
		return err
	}

	err = os.MkdirAll(o.outDir, 0755)
	if err != nil {
		return err
	}

	rc := plot.NewContext(o.width, o.height, plot.DefaultPalette())
	figs := r.Figures()
	pdfs := make([][]byte, len(figs))

	var group errgroup.Group
	for i, fig := range figs {
		i, fig := i, fig
		group.Go(func() error {
			data, err := renderFigure(rc, fig, o.format)
			if err != nil {
				fmt.Printf("%v Failed to render %q: %v\n", crossmark, fig.Name, err)
				return err
			}

			path := filepath.Join(o.outDir, fig.Name+"."+o.format)
			err = ioutil.WriteFile(path, data, 0644)
			if err != nil {
				return err
			}
			fmt.Printf("%v figure %q saved as %q.\n", checkmark, fig.Title, path)

			if o.merge {
				pdfs[i], err = toPDF(rc, fig, o.format, data)
			}
			return err
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	if !o.merge {
		return nil
	}

	path := filepath.Join(o.outDir, "figures.pdf")
	fmt.Printf("%v merge %d figures\n", ellipsis, len(pdfs))
	var buf bytes.Buffer
	err = plot.Merge(&buf, pdfs...)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(path, buf.Bytes(), 0644)
	if err != nil {
		return err
	}
	fmt.Printf("%v all figures saved as %q.\n", checkmark, path)
	return nil
}

func renderFigure(rc *plot.Context, fig *plot.Figure, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = rc.PNG(fig, &buf)
	case "pdf":
		err = rc.PDF(&buf, fig)
	default:
		err = fmt.Errorf("unsupported format %q, choose one of 'png', 'pdf'", format)
	}
	return buf.Bytes(), err
}

// toPDF returns the PDF rendering of a figure,
// reusing data if that is PDF already.
func toPDF(rc *plot.Context, fig *plot.Figure, format string, data []byte) ([]byte, error) {
	if format == "pdf" {
		return data, nil
	}
	return renderFigure(rc, fig, "pdf")
}
