// Package pdftext turns PDF pages into positioned page text.
//
// It adapts github.com/ledongthuc/pdf: each page's positioned text
// fragments are grouped into lines by Y coordinate, ordered left to right,
// and assembled into a single string with one TextRun per line. Fragment
// text is normalized to NFC so downstream byte offsets are stable across
// producers.
package pdftext
