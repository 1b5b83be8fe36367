// Package pagechunk provides a fluent API for extracting text from PDF
// files and segmenting it into size-bounded, sentence-aware chunks with
// positional metadata.
//
// Basic usage:
//
//	chunks, err := pagechunk.Open("document.pdf").Chunks()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	chunks, err := pagechunk.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    MaxChunkSize(1024).
//	    Overlap(100).
//	    Chunks()
//
// For advanced use cases, the lower-level pdftext and chunk packages are
// also available.
package pagechunk

import (
	"github.com/bzsanti/pagechunk/model"
	"github.com/bzsanti/pagechunk/pdftext"
)

// Version is the library version reported by the CLI and by callers that
// embed extraction provenance in their own records.
const Version = "0.3.0"

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Chunks().
//
// Example:
//
//	chunks, err := pagechunk.Open("document.pdf").Chunks()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates an Extractor for a PDF held in memory.
//
// Example:
//
//	chunks, err := pagechunk.FromBytes(data).Chunks()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened pdftext.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := pdftext.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	chunks, err := pagechunk.FromReader(r).Chunks()
func FromReader(r *pdftext.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromPages creates an Extractor over already-extracted page text. This
// skips PDF parsing entirely, which is useful for text from other sources
// or in tests.
//
// Example:
//
//	chunks, err := pagechunk.FromPages(pages).Chunks()
func FromPages(pages []model.PageText) *Extractor {
	return &Extractor{
		pages:    pages,
		hasPages: true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pagechunk.Must(pagechunk.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
