package pagechunk

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bzsanti/pagechunk/chunk"
	"github.com/bzsanti/pagechunk/model"
	"github.com/bzsanti/pagechunk/pdftext"
)

// Extractor provides a fluent interface for extracting and chunking PDF
// text. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename string
	data     []byte
	pages    []model.PageText
	hasPages bool

	// Reader lifecycle
	reader       *pdftext.Reader
	ownsReader   bool
	readerOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. Each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		data:         e.data,
		pages:        e.pages,
		hasPages:     e.hasPages,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}

	switch {
	case e.filename != "":
		r, err := pdftext.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open PDF: %w", err)
		}
		e.reader = r
	case e.data != nil:
		r, err := pdftext.FromBytes(e.data)
		if err != nil {
			return fmt.Errorf("failed to read PDF: %w", err)
		}
		e.reader = r
	default:
		return fmt.Errorf("no input specified")
	}

	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor. It is safe to
// call Close multiple times. Readers passed in via FromReader are left for
// their owner to close.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed). Multiple calls
// are cumulative.
//
// Example:
//
//	chunks, err := pagechunk.Open("doc.pdf").Pages(1, 3, 5).Chunks()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	for _, p := range pages {
		if p < 1 {
			newExt.err = fmt.Errorf("invalid page number %d: pages are 1-indexed", p)
			return newExt
		}
	}
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	chunks, err := pagechunk.Open("doc.pdf").PageRange(5, 10).Chunks()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start < 1 || end < start {
		newExt.err = fmt.Errorf("invalid page range [%d, %d]", start, end)
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// ChunkConfig replaces the chunking configuration wholesale. The
// configuration is validated when a chunking terminal runs.
func (e *Extractor) ChunkConfig(cfg chunk.Config) *Extractor {
	newExt := e.clone()
	newExt.options.chunkConfig = cfg
	return newExt
}

// ChunkLimits replaces the policy bounds applied to the chunking
// configuration.
func (e *Extractor) ChunkLimits(lim chunk.Limits) *Extractor {
	newExt := e.clone()
	newExt.options.chunkLimits = lim
	return newExt
}

// MaxChunkSize sets the chunk size bound in bytes.
//
// Example:
//
//	chunks, err := pagechunk.Open("doc.pdf").MaxChunkSize(1024).Chunks()
func (e *Extractor) MaxChunkSize(n int) *Extractor {
	newExt := e.clone()
	newExt.options.chunkConfig.MaxChunkSize = n
	return newExt
}

// Overlap sets the number of bytes consecutive chunks share.
func (e *Extractor) Overlap(n int) *Extractor {
	newExt := e.clone()
	newExt.options.chunkConfig.Overlap = n
	return newExt
}

// PreserveSentences controls whether chunk cuts respect sentence
// boundaries.
func (e *Extractor) PreserveSentences(on bool) *Extractor {
	newExt := e.clone()
	newExt.options.chunkConfig.PreserveSentenceBoundaries = on
	return newExt
}

// IncludeMetadata controls whether chunks carry confidence and bounding
// box metadata.
func (e *Extractor) IncludeMetadata(on bool) *Extractor {
	newExt := e.clone()
	newExt.options.chunkConfig.IncludeMetadata = on
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Text extracts and returns the text of the configured pages, joined with
// blank lines. This is a terminal operation that closes an owned reader.
//
// Example:
//
//	text, err := pagechunk.Open("doc.pdf").Text()
func (e *Extractor) Text() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	defer e.Close()

	pages, err := e.loadPages()
	if err != nil {
		return "", err
	}

	texts := make([]string, len(pages))
	for i, page := range pages {
		texts[i] = page.Text
	}
	return strings.Join(texts, "\n\n"), nil
}

// TextFromPage extracts the text of a single page (1-indexed). Page
// selection configured with Pages or PageRange does not apply; n addresses
// the document directly. This is a terminal operation.
func (e *Extractor) TextFromPage(n int) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	defer e.Close()

	page, err := e.pageAt(n)
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

// PageCount returns the number of pages in the document. The reader
// remains open so the count can precede other operations on the same
// Extractor.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.hasPages {
		return len(e.pages), nil
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// Runs extracts the configured pages with their positioned text runs.
// This is a terminal operation that closes an owned reader.
func (e *Extractor) Runs() ([]model.PageText, error) {
	if e.err != nil {
		return nil, e.err
	}
	defer e.Close()

	return e.loadPages()
}

// Chunks extracts the configured pages and segments them into chunks,
// numbered sequentially across the whole call. This is a terminal
// operation that closes an owned reader.
//
// Example:
//
//	chunks, err := pagechunk.Open("doc.pdf").MaxChunkSize(1024).Chunks()
func (e *Extractor) Chunks() ([]chunk.Chunk, error) {
	return e.ChunksContext(context.Background())
}

// ChunksContext is Chunks with cancellation. Pages are chunked
// concurrently; the result order and numbering match the page order
// regardless of scheduling.
func (e *Extractor) ChunksContext(ctx context.Context) ([]chunk.Chunk, error) {
	if e.err != nil {
		return nil, e.err
	}
	defer e.Close()

	// Configuration errors surface before any page is read.
	chunker, err := chunk.NewChunkerWithLimits(e.options.chunkConfig, e.options.chunkLimits)
	if err != nil {
		return nil, err
	}

	pages, err := e.loadPages()
	if err != nil {
		return nil, err
	}

	results := make([][]chunk.Chunk, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunks, err := chunker.Produce(page)
			if err != nil {
				return err
			}
			results[i] = chunks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []chunk.Chunk
	for _, pageChunks := range results {
		for _, c := range pageChunks {
			c.Index = len(all)
			all = append(all, c)
		}
	}
	return all, nil
}

// ChunksFromPage chunks a single page (1-indexed), numbering chunks from
// zero. Page selection configured with Pages or PageRange does not apply.
// This is a terminal operation that closes an owned reader.
func (e *Extractor) ChunksFromPage(n int) ([]chunk.Chunk, error) {
	if e.err != nil {
		return nil, e.err
	}
	defer e.Close()

	chunker, err := chunk.NewChunkerWithLimits(e.options.chunkConfig, e.options.chunkLimits)
	if err != nil {
		return nil, err
	}

	page, err := e.pageAt(n)
	if err != nil {
		return nil, err
	}
	return chunker.Produce(page)
}

// ============================================================================
// Internal helpers
// ============================================================================

// loadPages reads all pages from the source and applies the configured
// page selection.
func (e *Extractor) loadPages() ([]model.PageText, error) {
	var all []model.PageText

	if e.hasPages {
		all = e.pages
	} else {
		if err := e.ensureReader(); err != nil {
			return nil, err
		}
		pages, err := e.reader.Pages()
		if err != nil {
			return nil, err
		}
		all = pages
	}

	return selectPages(all, e.options.pages)
}

// pageAt returns the page at document position n (1-indexed).
func (e *Extractor) pageAt(n int) (model.PageText, error) {
	if e.hasPages {
		if n < 1 || n > len(e.pages) {
			return model.PageText{}, fmt.Errorf("page %d out of range [1, %d]", n, len(e.pages))
		}
		return e.pages[n-1], nil
	}

	if err := e.ensureReader(); err != nil {
		return model.PageText{}, err
	}
	return e.reader.Page(n)
}

// selectPages filters pages by 1-indexed document position. Duplicates are
// dropped and order follows the document, not the selection.
func selectPages(all []model.PageText, wanted []int) ([]model.PageText, error) {
	if len(wanted) == 0 {
		return all, nil
	}

	seen := make(map[int]bool, len(wanted))
	positions := make([]int, 0, len(wanted))
	for _, n := range wanted {
		if n < 1 || n > len(all) {
			return nil, fmt.Errorf("page %d out of range [1, %d]", n, len(all))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		positions = append(positions, n)
	}
	sort.Ints(positions)

	selected := make([]model.PageText, 0, len(positions))
	for _, n := range positions {
		selected = append(selected, all[n-1])
	}
	return selected, nil
}
