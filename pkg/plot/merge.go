package plot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/hcoords/internal/logging"
)

// Merge concatenates the given PDF documents into a single document
// and writes it to w.
func Merge(w io.Writer, docs ...[]byte) error {
	if len(docs) == 0 {
		return fmt.Errorf("no documents to merge")
	}
	logging.Debug("Merge %d PDF documents", len(docs))

	rsc := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		rsc[i] = bytes.NewReader(d)
	}

	conf := pdfcpu.NewDefaultConfiguration()
	return api.Merge(rsc, w, conf)
}
