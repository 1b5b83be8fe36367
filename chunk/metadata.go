package chunk

import (
	"fmt"

	"github.com/bzsanti/pagechunk/model"
)

// validateRuns checks every run's offsets against the page text bounds.
// Runs outside the text are a programmer error at the extraction boundary
// and are surfaced before any chunk is emitted.
func validateRuns(page model.PageText) error {
	for i, r := range page.Runs {
		if r.Start < 0 || r.End > len(page.Text) || r.Start > r.End {
			return &InputError{
				Page: page.Number,
				Run:  i,
				Reason: fmt.Sprintf("offsets [%d, %d) outside page text of %d bytes",
					r.Start, r.End, len(page.Text)),
			}
		}
	}
	return nil
}

// aggregateRuns computes a segment's confidence and bounding box from the
// runs whose offset ranges intersect it. Confidence is the minimum across
// intersecting runs; the bounding box is the union of their boxes. A segment
// no run intersects gets confidence 1.0 and a zero box.
func aggregateRuns(runs []model.TextRun, seg segment) (float64, model.BBox) {
	conf := 1.0
	var box model.BBox
	found := false

	for _, r := range runs {
		if !r.Intersects(seg.start, seg.end) {
			continue
		}
		if !found {
			conf = r.Confidence
			box = r.BBox
			found = true
			continue
		}
		if r.Confidence < conf {
			conf = r.Confidence
		}
		box = box.Union(r.BBox)
	}

	return conf, box
}
