// Package export serializes chunk sequences for downstream consumers.
//
// Chunks are flat records, so every format shares one column model: the
// chunk's position fields plus, when enabled, its confidence and bounding
// box. JSON and JSON Lines emit the chunk's canonical wire shape; CSV and
// TSV flatten the bounding box into per-coordinate columns.
package export
