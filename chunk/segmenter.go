package chunk

import (
	"strings"
	"unicode"
)

// segment is a half-open byte range of page text emitted as one chunk.
type segment struct {
	start, end int
}

// splitText performs the greedy forward scan over one page's text and
// returns the segments to emit, in order. It never fails: empty or
// whitespace-only text yields no segments. cfg must already be validated.
func splitText(text string, cfg Config) []segment {
	var segs []segment

	pos := 0
	lastEnd := -1
	for pos < len(text) {
		end := pos + cfg.MaxChunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			// Snap backward so the hard cut never exceeds the
			// budget or lands inside a multi-byte code point.
			end = boundaryBefore(text, end)
			if end <= pos {
				// A single rune wider than the budget. Take it
				// whole rather than loop forever.
				end = boundaryAfter(text, pos+1)
			}
		}

		if cfg.PreserveSentenceBoundaries && end < len(text) {
			if b := lastSentenceEndIn(text, pos, end); b > pos {
				end = b
			} else {
				// The sentence under the cursor is longer than
				// the budget. Emit it whole rather than cut it
				// mid-sentence.
				end = nextSentenceEndFrom(text, end)
			}
		}

		// A boundary retreat inside the overlap region can produce a
		// span wholly contained in the previous chunk, and leading
		// whitespace can trim a later window back to the previous
		// chunk's start. Emitted starts and ends must both advance
		// strictly, so spans that extend past everything emitted so
		// far are appended, and a span that begins where its
		// predecessor does replaces that predecessor.
		if seg, ok := trimSegment(text, pos, end); ok && seg.end > lastEnd {
			if n := len(segs); n > 0 && seg.start <= segs[n-1].start {
				segs[n-1] = seg
			} else {
				segs = append(segs, seg)
			}
			lastEnd = seg.end
		}

		if end >= len(text) {
			break
		}

		// Step back by the overlap, clamped to strict forward
		// progress so a short boundary-driven chunk cannot stall the
		// scan.
		next := boundaryAfter(text, end-cfg.Overlap)
		if next <= pos {
			next = end
		}
		pos = next
	}

	return segs
}

// trimSegment shrinks [start, end) to exclude leading and trailing
// whitespace, keeping offsets in sync with the emitted text. Whitespace-only
// segments are discarded.
func trimSegment(text string, start, end int) (segment, bool) {
	s := text[start:end]

	ls := strings.TrimLeftFunc(s, unicode.IsSpace)
	start += len(s) - len(ls)

	rs := strings.TrimRightFunc(ls, unicode.IsSpace)
	if rs == "" {
		return segment{}, false
	}

	return segment{start: start, end: start + len(rs)}, true
}
