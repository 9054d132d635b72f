// Package codec provides the batch transcoding service behind the CLI.
// It resolves scheme names to codecs, expands command-line arguments into input items,
// processes them through a bounded worker pool with an LRU result cache,
// collects statistics and writes the results in the configured format.
package codec
