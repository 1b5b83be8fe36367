// Package chunk splits extracted page text into bounded, overlapping,
// sentence-respecting chunks for RAG (Retrieval-Augmented Generation)
// workflows.
//
// The [Chunker] consumes [model.PageText] values (full page text plus
// positioned text runs) and produces an ordered, fully materialized sequence
// of [Chunk] values:
//
//	chunker, err := chunk.NewChunker(chunk.DefaultConfig())
//	if err != nil {
//	    // handle invalid configuration
//	}
//	chunks, err := chunker.ProduceDocument(ctx, pages)
//
// # Configuration
//
// [Config] controls chunk size, overlap, and boundary behavior. Accepted
// parameter ranges are policy, not domain law, so they live in an explicit
// [Limits] value rather than hard-coded constants. Configuration is validated
// both when a Chunker is constructed and again on every produce call, so a
// malformed configuration never causes partial work.
//
// # Segmentation
//
// Splitting is a greedy forward scan: each chunk takes up to MaxChunkSize
// bytes, consecutive chunks share an overlapping span of about Overlap bytes,
// and with PreserveSentenceBoundaries set a cut never lands inside a
// sentence. Sentence ends are terminal punctuation (".", "?", "!") followed
// by whitespace or end of text; a list of common abbreviations ("Dr.",
// "e.g.", ...) is excluded. A single sentence longer than MaxChunkSize is
// emitted whole, the one case where a chunk may exceed the bound. All cut
// points are snapped to UTF-8 rune boundaries, so a chunk boundary never
// falls inside a multi-byte code point.
//
// # Metadata
//
// Each chunk carries its page number, page-relative byte offsets, a bounding
// box enclosing every intersecting text run, and an aggregate confidence.
// Confidence aggregation uses the minimum across intersecting runs, not the
// average: one low-confidence run degrades the whole chunk's trust score,
// which is the right default when chunks are filtered by quality downstream.
//
// # Errors
//
// Produce calls fail only two ways: [ErrInvalidConfig] for out-of-range
// configuration and [ErrMalformedInput] for run offsets outside the page
// text. Everything else succeeds, including empty pages (zero chunks). Both
// are detected before any chunk is emitted; partial results are never
// returned. The package holds no shared mutable state and is safe for
// concurrent use.
package chunk
