package pagechunk

import "github.com/bzsanti/pagechunk/chunk"

// ExtractOptions holds configuration for one extraction chain.
type ExtractOptions struct {
	// Page selection (1-indexed, nil means all pages)
	pages []int

	// Chunking
	chunkConfig chunk.Config
	chunkLimits chunk.Limits
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:       nil,
		chunkConfig: chunk.DefaultConfig(),
		chunkLimits: chunk.DefaultLimits(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		chunkConfig: o.chunkConfig,
		chunkLimits: o.chunkLimits,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
