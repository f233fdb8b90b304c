// Package transcode implements the read-transform-write pipeline: it streams
// rows from an input CSV file to an output CSV file, replacing the values of
// one target column with their digests.
//
// The pipeline is a single linear pass. Rows are processed one at a time in
// both directions, so memory usage is bounded by the largest row, not the
// file. Paths ending in ".gz" are transparently decompressed on read and
// compressed on write; the CSV dialect inside is unchanged.
package transcode
