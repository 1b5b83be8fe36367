// Package model provides the data types shared across the pagechunk pipeline.
//
// This package defines the inputs the chunking engine consumes and the
// geometric primitives attached to its outputs. All extraction sources
// (the bundled PDF reader, or any external parser) produce these types,
// making them the boundary contract between parsing and chunking.
//
// # Text Runs
//
// A [TextRun] is the minimal unit of extracted text: a contiguous span of a
// page's text with its byte offset range, position on the page, and an
// extraction confidence. A [PageText] bundles one page's full text with its
// ordered runs:
//
//	page := model.PageText{
//	    Number: 1,
//	    Text:   "Hello world.",
//	    Runs: []model.TextRun{
//	        {Start: 0, End: 12, BBox: model.NewBBox(72, 700, 120, 12), Confidence: 1.0},
//	    },
//	}
//
// Runs are read-only inputs: the chunking engine never mutates them, so a
// PageText may be shared across concurrent calls.
//
// # Geometry
//
// [BBox] is the single canonical rectangle representation: chunk positions
// are reported as a bounding box only, never as duplicated flat coordinate
// fields. Boxes live in page coordinate space (origin bottom-left, as in
// PDF) and combine via [BBox.Union].
package model
