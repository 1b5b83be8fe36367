package chunk

import (
	"context"

	"github.com/bzsanti/pagechunk/model"
)

// Chunk is one bounded text segment with its source metadata. Chunks are
// produced fresh per call, immutable, and share no state with each other.
type Chunk struct {
	// Index is the 0-based sequential position within one extraction
	// call, contiguous across all pages of the call.
	Index int `json:"index"`

	// PageNumber is the 1-based source page. A chunk never spans pages.
	PageNumber int `json:"page_number"`

	// Text is the chunk content. Non-empty; at most MaxChunkSize bytes
	// except when a single sentence exceeds the bound.
	Text string `json:"text"`

	// Confidence is the minimum confidence among intersecting text runs,
	// in [0, 1]. Zero when metadata is disabled.
	Confidence float64 `json:"confidence"`

	// BoundingBox encloses all intersecting text runs. Zero when metadata
	// is disabled or no run intersects the chunk.
	BoundingBox model.BBox `json:"bounding_box"`

	// Start and End are the chunk's byte offsets in the source page text.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Chunker produces chunks from extracted page text. It holds only validated
// configuration and is safe for concurrent use.
type Chunker struct {
	config Config
	limits Limits
}

// NewChunker creates a Chunker with the default policy limits. The
// configuration is validated up front; the error matches ErrInvalidConfig.
func NewChunker(cfg Config) (*Chunker, error) {
	return NewChunkerWithLimits(cfg, DefaultLimits())
}

// NewChunkerWithLimits creates a Chunker with custom policy limits.
func NewChunkerWithLimits(cfg Config, lim Limits) (*Chunker, error) {
	lim = lim.normalized()
	if err := cfg.Validate(lim); err != nil {
		return nil, err
	}
	return &Chunker{config: cfg, limits: lim}, nil
}

// Config returns the chunker's configuration.
func (c *Chunker) Config() Config {
	return c.config
}

// Produce chunks a single page. Indices start at 0. An empty page yields
// zero chunks and no error.
func (c *Chunker) Produce(page model.PageText) ([]Chunk, error) {
	// Re-validate at call time so the zero Chunker and mutated copies
	// fail the same way as a bad constructor argument.
	if err := c.config.Validate(c.limits); err != nil {
		return nil, err
	}
	if err := validateRuns(page); err != nil {
		return nil, err
	}
	return c.producePage(page, 0), nil
}

// ProduceDocument chunks a sequence of pages in order, numbering chunks
// sequentially across the whole call. The context is checked before any work
// and again between pages; all inputs are validated up front so callers get
// either the complete sequence or a single error, never partial results.
func (c *Chunker) ProduceDocument(ctx context.Context, pages []model.PageText) ([]Chunk, error) {
	if err := c.config.Validate(c.limits); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, page := range pages {
		if err := validateRuns(page); err != nil {
			return nil, err
		}
	}

	var chunks []Chunk
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunks = append(chunks, c.producePage(page, len(chunks))...)
	}
	return chunks, nil
}

// producePage runs segmentation and metadata aggregation for one page.
// Inputs are already validated.
func (c *Chunker) producePage(page model.PageText, startIndex int) []Chunk {
	segs := splitText(page.Text, c.config)
	if len(segs) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, len(segs))
	for i, seg := range segs {
		ch := Chunk{
			Index:      startIndex + i,
			PageNumber: page.Number,
			Text:       page.Text[seg.start:seg.end],
			Start:      seg.start,
			End:        seg.end,
		}
		if c.config.IncludeMetadata {
			ch.Confidence, ch.BoundingBox = aggregateRuns(page.Runs, seg)
		}
		chunks = append(chunks, ch)
	}
	return chunks
}
