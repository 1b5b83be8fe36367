package pagechunk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bzsanti/pagechunk/chunk"
	"github.com/bzsanti/pagechunk/model"
)

func testPages() []model.PageText {
	return []model.PageText{
		{
			Number: 1,
			Text:   "First page sentence one. First page sentence two.",
			Runs: []model.TextRun{
				{Start: 0, End: 49, BBox: model.NewBBox(72, 700, 400, 12), Confidence: 1.0},
			},
		},
		{
			Number: 2,
			Text:   "Second page has a single sentence.",
			Runs: []model.TextRun{
				{Start: 0, End: 34, BBox: model.NewBBox(72, 700, 300, 12), Confidence: 0.8},
			},
		},
		{
			Number: 3,
			Text:   "Third page closes the document.",
		},
	}
}

func TestText(t *testing.T) {
	text, err := FromPages(testPages()).Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}

	want := "First page sentence one. First page sentence two." +
		"\n\n" + "Second page has a single sentence." +
		"\n\n" + "Third page closes the document."
	if text != want {
		t.Errorf("Text() = %q, want pages joined by blank lines", text)
	}
}

func TestTextFromPage(t *testing.T) {
	text, err := FromPages(testPages()).TextFromPage(2)
	if err != nil {
		t.Fatalf("TextFromPage() error: %v", err)
	}
	if text != "Second page has a single sentence." {
		t.Errorf("TextFromPage(2) = %q", text)
	}

	for _, n := range []int{0, -1, 4} {
		if _, err := FromPages(testPages()).TextFromPage(n); err == nil {
			t.Errorf("TextFromPage(%d) should fail", n)
		}
	}
}

func TestPageCount(t *testing.T) {
	count, err := FromPages(testPages()).PageCount()
	if err != nil {
		t.Fatalf("PageCount() error: %v", err)
	}
	if count != 3 {
		t.Errorf("PageCount() = %d, want 3", count)
	}
}

func TestChunksSequentialAcrossPages(t *testing.T) {
	chunks, err := FromPages(testPages()).Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks with default config, got %d", len(chunks))
	}

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has Index %d, want contiguous numbering", i, c.Index)
		}
		if c.PageNumber != i+1 {
			t.Errorf("chunk %d has PageNumber %d, want %d", i, c.PageNumber, i+1)
		}
	}

	if chunks[1].Confidence != 0.8 {
		t.Errorf("page 2 chunk Confidence = %v, want 0.8", chunks[1].Confidence)
	}
	if chunks[2].Confidence != 1.0 {
		t.Errorf("runless page chunk Confidence = %v, want 1.0", chunks[2].Confidence)
	}
}

func TestChunksFromPage(t *testing.T) {
	chunks, err := FromPages(testPages()).ChunksFromPage(2)
	if err != nil {
		t.Fatalf("ChunksFromPage() error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Index != 0 {
		t.Errorf("single page chunk Index = %d, want 0", chunks[0].Index)
	}
	if chunks[0].PageNumber != 2 {
		t.Errorf("PageNumber = %d, want 2", chunks[0].PageNumber)
	}

	if _, err := FromPages(testPages()).ChunksFromPage(9); err == nil {
		t.Error("out-of-range page should fail")
	}
}

func TestChunksInvalidConfig(t *testing.T) {
	chunks, err := FromPages(testPages()).
		MaxChunkSize(100).
		Overlap(100).
		Chunks()
	if !errors.Is(err, chunk.ErrInvalidConfig) {
		t.Errorf("error should match chunk.ErrInvalidConfig, got %v", err)
	}
	if chunks != nil {
		t.Error("no chunks should be returned on config error")
	}
}

func TestChunksContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chunks, err := FromPages(testPages()).ChunksContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if chunks != nil {
		t.Error("no chunks should be returned after cancellation")
	}
}

func TestPageSelection(t *testing.T) {
	chunks, err := FromPages(testPages()).Pages(3, 1, 3).Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks for 2 distinct pages, got %d", len(chunks))
	}
	if chunks[0].PageNumber != 1 || chunks[1].PageNumber != 3 {
		t.Errorf("selection should follow document order, got pages %d and %d",
			chunks[0].PageNumber, chunks[1].PageNumber)
	}
	if chunks[0].Index != 0 || chunks[1].Index != 1 {
		t.Errorf("indices should renumber the selection, got %d and %d",
			chunks[0].Index, chunks[1].Index)
	}
}

func TestPageRange(t *testing.T) {
	pages, err := FromPages(testPages()).PageRange(2, 3).Runs()
	if err != nil {
		t.Fatalf("Runs() error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Number != 2 || pages[1].Number != 3 {
		t.Errorf("got pages %d and %d, want 2 and 3", pages[0].Number, pages[1].Number)
	}
}

func TestInvalidPageSelection(t *testing.T) {
	if _, err := FromPages(testPages()).Pages(0).Chunks(); err == nil {
		t.Error("Pages(0) should fail")
	}
	if _, err := FromPages(testPages()).PageRange(3, 2).Chunks(); err == nil {
		t.Error("inverted range should fail")
	}
	if _, err := FromPages(testPages()).Pages(7).Chunks(); err == nil {
		t.Error("selection past the document should fail")
	}
}

func TestConfigurationIsImmutable(t *testing.T) {
	base := FromPages([]model.PageText{{
		Number: 1,
		Text:   strings.Repeat("Words fill this sentence nicely. ", 30),
	}})

	narrow := base.MaxChunkSize(60).Overlap(10)

	narrowChunks, err := narrow.Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	baseChunks, err := base.Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}

	if len(narrowChunks) <= len(baseChunks) {
		t.Errorf("narrow config should produce more chunks: %d vs %d",
			len(narrowChunks), len(baseChunks))
	}
	for i, c := range baseChunks {
		if len(c.Text) > 512 {
			t.Errorf("base chunk %d exceeds the default bound: %d bytes", i, len(c.Text))
		}
	}
}

func TestMetadataToggle(t *testing.T) {
	chunks, err := FromPages(testPages()).IncludeMetadata(false).Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	for i, c := range chunks {
		if c.Confidence != 0 || !c.BoundingBox.IsZero() {
			t.Errorf("chunk %d carries metadata despite the toggle: %+v", i, c)
		}
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must() = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestNoInput(t *testing.T) {
	e := &Extractor{options: defaultOptions()}
	if _, err := e.Text(); err == nil {
		t.Error("extractor without input should fail")
	}
}
