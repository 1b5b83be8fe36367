package chunk

// Stats contains aggregate statistics about one chunk sequence.
type Stats struct {
	TotalChunks     int
	TotalCharacters int
	MinChunkSize    int
	MaxChunkSize    int
	AvgChunkSize    int
	MinConfidence   float64
	Pages           int
}

// ComputeStats summarizes a chunk sequence.
func ComputeStats(chunks []Chunk) Stats {
	stats := Stats{
		TotalChunks:   len(chunks),
		MinChunkSize:  -1,
		MinConfidence: 1.0,
	}

	pages := make(map[int]bool)
	for _, c := range chunks {
		size := len(c.Text)
		stats.TotalCharacters += size

		if stats.MinChunkSize < 0 || size < stats.MinChunkSize {
			stats.MinChunkSize = size
		}
		if size > stats.MaxChunkSize {
			stats.MaxChunkSize = size
		}
		if c.Confidence < stats.MinConfidence {
			stats.MinConfidence = c.Confidence
		}
		pages[c.PageNumber] = true
	}

	stats.Pages = len(pages)
	if len(chunks) > 0 {
		stats.AvgChunkSize = stats.TotalCharacters / len(chunks)
	}
	if stats.MinChunkSize < 0 {
		stats.MinChunkSize = 0
		stats.MinConfidence = 0
	}

	return stats
}
