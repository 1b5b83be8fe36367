package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bzsanti/pagechunk/chunk"
)

// Format defines the available export formats.
type Format int

const (
	// FormatJSONL exports one JSON object per line.
	FormatJSONL Format = iota
	// FormatJSON exports a single JSON array.
	FormatJSON
	// FormatCSV exports comma-separated values.
	FormatCSV
	// FormatTSV exports tab-separated values.
	FormatTSV
)

// String returns the format's conventional name.
func (f Format) String() string {
	switch f {
	case FormatJSONL:
		return "jsonl"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSONL:
		return ".jsonl"
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	default:
		return ".txt"
	}
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jsonl":
		return FormatJSONL, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", name)
	}
}

// Config holds export options.
type Config struct {
	// Format selects the output encoding.
	Format Format

	// PrettyPrint indents JSON output. Ignored by line formats.
	PrettyPrint bool

	// IncludeHeader writes the header row in CSV and TSV output.
	IncludeHeader bool

	// Delimiter separates CSV fields. Zero means the format default.
	Delimiter rune

	// IncludeMetadata adds confidence and bounding box columns.
	IncludeMetadata bool
}

// DefaultConfig returns the default export options.
func DefaultConfig() Config {
	return Config{
		Format:          FormatJSONL,
		IncludeHeader:   true,
		IncludeMetadata: true,
	}
}

// JSONConfig returns options for a pretty-printed JSON array.
func JSONConfig() Config {
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.PrettyPrint = true
	return cfg
}

// CSVConfig returns options for CSV output.
func CSVConfig() Config {
	cfg := DefaultConfig()
	cfg.Format = FormatCSV
	return cfg
}

// TSVConfig returns options for TSV output.
func TSVConfig() Config {
	cfg := DefaultConfig()
	cfg.Format = FormatTSV
	return cfg
}

// Exporter writes chunk sequences in a configured format.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default options.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom options.
func NewExporterWithConfig(cfg Config) *Exporter {
	return &Exporter{config: cfg}
}

// Export writes the chunks to w in the configured format.
func (e *Exporter) Export(chunks []chunk.Chunk, w io.Writer) error {
	switch e.config.Format {
	case FormatJSONL:
		return e.exportJSONL(chunks, w)
	case FormatJSON:
		return e.exportJSON(chunks, w)
	case FormatCSV, FormatTSV:
		return e.exportCSV(chunks, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the chunks to the named file.
func (e *Exporter) ExportToFile(chunks []chunk.Chunk, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := e.Export(chunks, f); err != nil {
		return err
	}
	return f.Close()
}

// ExportToString renders the chunks to a string.
func (e *Exporter) ExportToString(chunks []chunk.Chunk) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(chunks, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// record is the JSON wire shape of one chunk. Metadata fields are dropped
// entirely rather than zeroed when metadata is excluded.
type record struct {
	Index       int         `json:"index"`
	PageNumber  int         `json:"page_number"`
	Text        string      `json:"text"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
	Confidence  *float64    `json:"confidence,omitempty"`
	BoundingBox interface{} `json:"bounding_box,omitempty"`
}

func (e *Exporter) toRecord(c chunk.Chunk) record {
	r := record{
		Index:      c.Index,
		PageNumber: c.PageNumber,
		Text:       c.Text,
		Start:      c.Start,
		End:        c.End,
	}
	if e.config.IncludeMetadata {
		conf := c.Confidence
		r.Confidence = &conf
		r.BoundingBox = c.BoundingBox
	}
	return r
}

// exportJSONL keeps one object per line regardless of PrettyPrint, since an
// indented record would no longer be valid JSON Lines.
func (e *Exporter) exportJSONL(chunks []chunk.Chunk, w io.Writer) error {
	encoder := json.NewEncoder(w)

	for i, c := range chunks {
		if err := encoder.Encode(e.toRecord(c)); err != nil {
			return fmt.Errorf("encoding chunk %d: %w", i, err)
		}
	}
	return nil
}

func (e *Exporter) exportJSON(chunks []chunk.Chunk, w io.Writer) error {
	records := make([]record, len(chunks))
	for i, c := range chunks {
		records[i] = e.toRecord(c)
	}

	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(records)
}

func (e *Exporter) exportCSV(chunks []chunk.Chunk, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.delimiter()

	if e.config.IncludeHeader {
		if err := csvWriter.Write(e.columns()); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, c := range chunks {
		if err := csvWriter.Write(e.row(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (e *Exporter) delimiter() rune {
	if e.config.Delimiter != 0 {
		return e.config.Delimiter
	}
	if e.config.Format == FormatTSV {
		return '\t'
	}
	return ','
}

func (e *Exporter) columns() []string {
	cols := []string{"index", "page_number", "text", "start", "end"}
	if e.config.IncludeMetadata {
		cols = append(cols, "confidence", "bbox_x", "bbox_y", "bbox_width", "bbox_height")
	}
	return cols
}

func (e *Exporter) row(c chunk.Chunk) []string {
	row := []string{
		strconv.Itoa(c.Index),
		strconv.Itoa(c.PageNumber),
		c.Text,
		strconv.Itoa(c.Start),
		strconv.Itoa(c.End),
	}
	if e.config.IncludeMetadata {
		row = append(row,
			formatFloat(c.Confidence),
			formatFloat(c.BoundingBox.X),
			formatFloat(c.BoundingBox.Y),
			formatFloat(c.BoundingBox.Width),
			formatFloat(c.BoundingBox.Height),
		)
	}
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
