// Package sequence provides the Sequence type and loaders for sequence files.
//
// A query can be stored as a bare sequence file (lines of symbols) or as a
// single-record FASTA file. Gzip, zstd and lz4 compressed inputs are detected
// by magic bytes and decompressed transparently.
//
// Loading is strict: unknown symbols, empty inputs and multi-record FASTA
// query files all fail immediately rather than producing a partial sequence.
package sequence
