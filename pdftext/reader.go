package pdftext

import (
	"bytes"
	"fmt"
	"io"

	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/bzsanti/pagechunk/model"
)

// Reader extracts positioned page text from one PDF document. It is not
// safe for concurrent use; callers that fan out over pages read the pages
// first and share the resulting values.
type Reader struct {
	pdf    *pdflib.Reader
	closer io.Closer
}

// Open reads the PDF at path. The returned Reader holds the file open
// until Close.
func Open(path string) (*Reader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Reader{pdf: r, closer: f}, nil
}

// NewReader reads a PDF from an io.ReaderAt of the given size.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	r, err := pdflib.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("reading pdf: %w", err)
	}
	return &Reader{pdf: r}, nil
}

// FromBytes reads a PDF held in memory.
func FromBytes(data []byte) (*Reader, error) {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page extracts one page's text and runs. n is 1-based.
func (r *Reader) Page(n int) (page model.PageText, err error) {
	total := r.pdf.NumPage()
	if n < 1 || n > total {
		return model.PageText{}, fmt.Errorf("page %d out of range [1, %d]", n, total)
	}

	// The underlying parser panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			page = model.PageText{}
			err = fmt.Errorf("reading page %d: %v", n, rec)
		}
	}()

	p := r.pdf.Page(n)
	if p.V.IsNull() {
		return model.PageText{Number: n}, nil
	}

	content := p.Content()
	frags := make([]fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		frags = append(frags, fragment{
			text: norm.NFC.String(t.S),
			x:    t.X,
			y:    t.Y,
			w:    t.W,
			h:    t.FontSize,
		})
	}

	text, runs := assemblePage(frags)
	return model.PageText{Number: n, Text: text, Runs: runs}, nil
}

// Pages extracts every page in order.
func (r *Reader) Pages() ([]model.PageText, error) {
	total := r.pdf.NumPage()
	pages := make([]model.PageText, 0, total)
	for n := 1; n <= total; n++ {
		page, err := r.Page(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
