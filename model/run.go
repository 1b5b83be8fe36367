package model

// TextRun is a contiguous span of extracted text on one page. Offsets are
// byte positions into the owning PageText's Text; Start is inclusive and End
// exclusive. Runs are produced by an extraction source and treated as
// immutable by everything downstream.
type TextRun struct {
	// Start is the byte offset where the run begins in the page text.
	Start int `json:"start"`

	// End is the byte offset just past the run's last byte.
	End int `json:"end"`

	// BBox is the run's bounding rectangle in page coordinates.
	BBox BBox `json:"bbox"`

	// Confidence is the extraction confidence in [0, 1]. Native PDF text
	// is 1.0; lower values come from lossy sources.
	Confidence float64 `json:"confidence"`
}

// Len returns the byte length of the run.
func (r TextRun) Len() int {
	return r.End - r.Start
}

// Intersects reports whether the run's offset range overlaps [start, end).
func (r TextRun) Intersects(start, end int) bool {
	return r.Start < end && r.End > start
}

// PageText holds one page's extracted text with its positioned runs.
// Runs are ordered by Start and must fall within the bounds of Text.
type PageText struct {
	// Number is the 1-based page number.
	Number int `json:"number"`

	// Text is the full extracted text of the page.
	Text string `json:"text"`

	// Runs are the positioned spans covering Text. May be empty when the
	// source does not provide position information.
	Runs []TextRun `json:"runs,omitempty"`
}

// IsEmpty reports whether the page has no text content.
func (p PageText) IsEmpty() bool {
	return len(p.Text) == 0
}
