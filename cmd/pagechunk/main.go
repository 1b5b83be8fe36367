package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bzsanti/pagechunk"
	"github.com/bzsanti/pagechunk/chunk"
	"github.com/bzsanti/pagechunk/export"
)

// main is the CLI front end: it extracts a PDF's text, chunks it, and
// writes the chunks in the requested export format.
func main() {
	var (
		filePath    = flag.String("file", "", "Path to the PDF to process")
		pageSpec    = flag.String("pages", "", "Pages to process, e.g. \"1,3-5\" (default all)")
		formatName  = flag.String("format", "jsonl", "Output format: jsonl, json, csv, tsv")
		outputPath  = flag.String("output", "", "Output file (default stdout)")
		maxSize     = flag.Int("max-size", 512, "Maximum chunk size in bytes")
		overlap     = flag.Int("overlap", 50, "Bytes of overlap between chunks")
		noPreserve  = flag.Bool("no-preserve", false, "Cut at exact sizes instead of sentence boundaries")
		noMetadata  = flag.Bool("no-metadata", false, "Skip confidence and bounding box metadata")
		pretty      = flag.Bool("pretty", false, "Pretty print JSON output")
		textOnly    = flag.Bool("text", false, "Print extracted text instead of chunks")
		countOnly   = flag.Bool("count", false, "Print the page count and exit")
		showStats   = flag.Bool("stats", false, "Log chunk statistics after processing")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		jsonLogs    = flag.Bool("json-logs", false, "Emit logs as JSON")
		showVersion = flag.Bool("version", false, "Print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(pagechunk.Version)
		return
	}

	// Set up structured logging
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *jsonLogs {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *filePath == "" {
		logger.Fatal("file path is required")
	}

	extractionID := uuid.New().String()
	log := logger.WithFields(logrus.Fields{
		"extraction_id": extractionID,
		"file":          *filePath,
	})

	ext := pagechunk.Open(*filePath).ChunkConfig(chunk.Config{
		MaxChunkSize:               *maxSize,
		Overlap:                    *overlap,
		PreserveSentenceBoundaries: !*noPreserve,
		IncludeMetadata:            !*noMetadata,
	})

	if *pageSpec != "" {
		pages, err := parsePageSpec(*pageSpec)
		if err != nil {
			log.WithError(err).Fatal("invalid page specification")
		}
		ext = ext.Pages(pages...)
	}

	if *countOnly {
		count, err := ext.PageCount()
		if err != nil {
			log.WithError(err).Fatal("failed to read page count")
		}
		ext.Close()
		fmt.Println(count)
		return
	}

	if *textOnly {
		text, err := ext.Text()
		if err != nil {
			log.WithError(err).Fatal("text extraction failed")
		}
		if err := writeOutput(*outputPath, text); err != nil {
			log.WithError(err).Fatal("failed to write output")
		}
		return
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		log.WithError(err).Fatal("invalid output format")
	}

	start := time.Now()
	chunks, err := ext.Chunks()
	if err != nil {
		log.WithError(err).Fatal("chunking failed")
	}
	log.WithFields(logrus.Fields{
		"chunks":   len(chunks),
		"duration": time.Since(start).String(),
	}).Debug("chunking complete")

	if *showStats {
		stats := chunk.ComputeStats(chunks)
		log.WithFields(logrus.Fields{
			"total_chunks":     stats.TotalChunks,
			"total_characters": stats.TotalCharacters,
			"min_chunk_size":   stats.MinChunkSize,
			"max_chunk_size":   stats.MaxChunkSize,
			"avg_chunk_size":   stats.AvgChunkSize,
			"min_confidence":   stats.MinConfidence,
			"pages":            stats.Pages,
		}).Info("chunk statistics")
	}

	exporter := export.NewExporterWithConfig(export.Config{
		Format:          format,
		PrettyPrint:     *pretty,
		IncludeHeader:   true,
		IncludeMetadata: !*noMetadata,
	})

	if *outputPath != "" {
		if err := exporter.ExportToFile(chunks, *outputPath); err != nil {
			log.WithError(err).Fatal("export failed")
		}
		log.WithField("output", *outputPath).Info("export complete")
		return
	}

	if err := exporter.Export(chunks, os.Stdout); err != nil {
		log.WithError(err).Fatal("export failed")
	}
}

// parsePageSpec parses a page list such as "1,3-5,9" into page numbers.
func parsePageSpec(spec string) ([]int, error) {
	var pages []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if start < 1 || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for n := start; n <= end; n++ {
				pages = append(pages, n)
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, n)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("empty page specification %q", spec)
	}
	return pages, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Println(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
