package chunk

import "fmt"

// Config holds the chunking parameters for one extraction call.
type Config struct {
	// MaxChunkSize is the chunk size bound in bytes of UTF-8 text.
	// It is a soft bound: a single sentence longer than this is emitted
	// whole when PreserveSentenceBoundaries is set.
	MaxChunkSize int

	// Overlap is the number of bytes consecutive chunks share. Must be
	// less than MaxChunkSize and no more than Limits.MaxOverlapRatio of
	// it.
	Overlap int

	// PreserveSentenceBoundaries prevents cut points inside sentences.
	PreserveSentenceBoundaries bool

	// IncludeMetadata controls whether confidence and bounding box are
	// aggregated from the page's text runs. When false both are left as
	// zero values; index, page number, and offsets are always set.
	IncludeMetadata bool
}

// DefaultConfig returns the default chunking parameters.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:               512,
		Overlap:                    50,
		PreserveSentenceBoundaries: true,
		IncludeMetadata:            true,
	}
}

// Limits bounds the Config values a Chunker accepts. These are deployment
// policy, not domain law, so they are explicit configuration rather than
// hard-coded constants.
type Limits struct {
	// MinChunkSize is the smallest accepted MaxChunkSize.
	MinChunkSize int

	// MaxChunkSize is the largest accepted MaxChunkSize.
	MaxChunkSize int

	// MaxOverlapRatio caps Overlap as a fraction of MaxChunkSize.
	MaxOverlapRatio float64
}

// DefaultLimits returns the default policy bounds.
func DefaultLimits() Limits {
	return Limits{
		MinChunkSize:    50,
		MaxChunkSize:    100000,
		MaxOverlapRatio: 0.5,
	}
}

// normalized replaces non-positive fields with the defaults so a partially
// specified Limits behaves predictably.
func (l Limits) normalized() Limits {
	def := DefaultLimits()
	if l.MinChunkSize <= 0 {
		l.MinChunkSize = def.MinChunkSize
	}
	if l.MaxChunkSize <= 0 {
		l.MaxChunkSize = def.MaxChunkSize
	}
	if l.MaxOverlapRatio <= 0 || l.MaxOverlapRatio > 1 {
		l.MaxOverlapRatio = def.MaxOverlapRatio
	}
	return l
}

// Validate checks the configuration against the given limits. It is pure and
// side-effect-free; a non-nil result matches ErrInvalidConfig.
func (c Config) Validate(lim Limits) error {
	lim = lim.normalized()

	if c.MaxChunkSize <= 0 {
		return &ConfigError{Field: "MaxChunkSize", Reason: "must be positive"}
	}
	if c.MaxChunkSize < lim.MinChunkSize {
		return &ConfigError{
			Field:  "MaxChunkSize",
			Reason: fmt.Sprintf("must be at least %d, got %d", lim.MinChunkSize, c.MaxChunkSize),
		}
	}
	if c.MaxChunkSize > lim.MaxChunkSize {
		return &ConfigError{
			Field:  "MaxChunkSize",
			Reason: fmt.Sprintf("must be at most %d, got %d", lim.MaxChunkSize, c.MaxChunkSize),
		}
	}
	if c.Overlap < 0 {
		return &ConfigError{Field: "Overlap", Reason: "must not be negative"}
	}
	if c.Overlap >= c.MaxChunkSize {
		return &ConfigError{
			Field:  "Overlap",
			Reason: fmt.Sprintf("must be less than MaxChunkSize (%d), got %d", c.MaxChunkSize, c.Overlap),
		}
	}
	if float64(c.Overlap) > float64(c.MaxChunkSize)*lim.MaxOverlapRatio {
		return &ConfigError{
			Field: "Overlap",
			Reason: fmt.Sprintf("must not exceed %.0f%% of MaxChunkSize (%d), got %d",
				lim.MaxOverlapRatio*100, c.MaxChunkSize, c.Overlap),
		}
	}

	return nil
}
