// Package bundle implements the file classification and streaming
// concatenation engine: ignore-pattern matching, text/binary classification,
// and the incremental bundle builder with progress reporting and checksum
// generation.
package bundle

// ReadFunc lazily returns the content of a candidate file.
type ReadFunc func() ([]byte, error)

// CandidateFile is a filesystem entry discovered during a scan, not yet
// decided for inclusion. Paths are forward-slash delimited and relative to
// the scan root.
type CandidateFile struct {
	Path       string   // Relative posix-style path, unique within one scan.
	SizeBytes  int64    // Size reported by the directory source.
	Read       ReadFunc // Lazy content accessor.
	IsText     bool     // Classifier output.
	IsIncluded bool     // Classifier default, mutable via user toggles.
}

// SegmentKind distinguishes the index header from per-file sections.
type SegmentKind int

const (
	SegmentIndex SegmentKind = iota // The index header; exactly one, always first.
	SegmentFile                     // One per included file, in path order.
)

// Segment is one atomic, immutable chunk of bundle output.
type Segment struct {
	Kind SegmentKind
	Path string // File path for SegmentFile, empty for SegmentIndex.
	Text string
}

// ProcessingStats aggregates counters over a bundling pass. They are updated
// incrementally as segments are produced and finalized once the last segment
// has been emitted.
type ProcessingStats struct {
	TotalFiles      int   // Number of file sections in the bundle.
	TotalSizeBytes  int64 // Sum of the input file sizes.
	LineCount       int   // Total lines across all sections.
	EstimatedTokens int   // Crude ceil(chars/4) proxy, not a real tokenizer.
}

// Result is the terminal value of a bundling operation, produced exactly once
// and immutable thereafter.
type Result struct {
	Content     string
	Stats       ProcessingStats
	ChecksumHex string
}
