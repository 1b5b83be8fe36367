package pdftext

import (
	"math"
	"sort"
	"strings"

	"github.com/bzsanti/pagechunk/model"
)

// fragment is one positioned piece of text from the PDF content stream.
// h is the font size, the best line-height estimate the content stream
// offers.
type fragment struct {
	text       string
	x, y, w, h float64
}

// assemblePage builds a page string from positioned fragments and returns
// it with one TextRun per assembled line. Fragments arrive in content
// stream order, which need not match reading order.
func assemblePage(frags []fragment) (string, []model.TextRun) {
	if len(frags) == 0 {
		return "", nil
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].y != sorted[j].y {
			return sorted[i].y > sorted[j].y
		}
		return sorted[i].x < sorted[j].x
	})

	lines := groupLines(sorted)

	var sb strings.Builder
	var runs []model.TextRun

	for li, line := range lines {
		start := sb.Len()

		for i, f := range line {
			sb.WriteString(f.text)
			if i < len(line)-1 && needsSpace(f, line[i+1]) {
				sb.WriteByte(' ')
			}
		}

		runs = append(runs, model.TextRun{
			Start:      start,
			End:        sb.Len(),
			BBox:       lineBBox(line),
			Confidence: 1.0,
		})

		if li < len(lines)-1 {
			next := lines[li+1]
			if line[0].y-next[0].y > line[0].h*1.5 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteByte('\n')
			}
		}
	}

	return sb.String(), runs
}

// groupLines splits Y-descending fragments into lines. A fragment joins the
// current line when its Y is within half the previous fragment's height.
func groupLines(sorted []fragment) [][]fragment {
	var lines [][]fragment
	current := []fragment{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		prev := current[len(current)-1]
		if math.Abs(sorted[i].y-prev.y) <= lineTolerance(prev.h) {
			current = append(current, sorted[i])
			continue
		}
		lines = append(lines, current)
		current = []fragment{sorted[i]}
	}

	return append(lines, current)
}

func lineTolerance(h float64) float64 {
	if h <= 0 {
		return 2
	}
	return h * 0.5
}

// needsSpace reports whether a space separates two adjacent fragments on
// one line. Small or negative gaps are kerning, not word breaks.
func needsSpace(cur, next fragment) bool {
	if strings.HasSuffix(cur.text, " ") || strings.HasPrefix(next.text, " ") {
		return false
	}

	gap := next.x - (cur.x + cur.w)
	threshold := cur.h * 0.3
	if threshold <= 0 {
		threshold = 1
	}
	return gap > threshold
}

// lineBBox returns the box enclosing every fragment on the line.
func lineBBox(line []fragment) model.BBox {
	box := fragmentBBox(line[0])
	for _, f := range line[1:] {
		box = box.Union(fragmentBBox(f))
	}
	return box
}

func fragmentBBox(f fragment) model.BBox {
	return model.NewBBox(f.x, f.y, f.w, f.h)
}
