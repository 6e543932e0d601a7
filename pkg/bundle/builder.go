package bundle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultReadTimeout bounds how long the builder waits for a single file's
// content accessor before substituting a placeholder section.
const DefaultReadTimeout = 10 * time.Second

// Progress receives (bytesProcessedSoFar, totalSizeBytes, currentFile)
// before each file is read, and a final (total, total, "Complete") report
// once the last segment has been emitted.
type Progress func(processed, total int64, current string)

// Builder produces a bundle from an ordered sequence of included files.
// Segments are emitted strictly in input order by a single producer; callers
// wanting deterministic output must pre-sort by path. Both callbacks are
// optional.
type Builder struct {
	ReadTimeout time.Duration    // Per-file accessor timeout; DefaultReadTimeout when zero.
	Clock       func() time.Time // Timestamp source for the index header; time.Now when nil.
	OnSegment   func(Segment)    // Invoked once per segment, in emission order.
	OnProgress  Progress

	logger *zap.Logger
}

// NewBuilder returns a Builder with default timeout and clock. A nil logger
// is replaced with a no-op logger.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		ReadTimeout: DefaultReadTimeout,
		logger:      logger,
	}
}

// Build consumes files in order and returns the terminal Result. Individual
// file-read failures degrade to single-line placeholder sections and never
// abort the pass. An unexpected panic escaping the loop degrades to an
// explanatory placeholder bundle with a sentinel checksum; the caller always
// receives a Result.
func (b *Builder) Build(ctx context.Context, files []CandidateFile) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Bundling failed", zap.Any("panic", r))
			res = b.failedResult(r)
		}
	}()

	var totalSize int64
	for _, f := range files {
		totalSize += f.SizeBytes
	}

	var content strings.Builder
	lineCount := 0

	header := IndexHeader(files, b.now())
	b.emit(Segment{Kind: SegmentIndex, Text: header})
	content.WriteString(header)

	var processed int64
	for _, f := range files {
		b.report(processed, totalSize, f.Path)

		text, err := b.readFile(ctx, f)
		if err != nil {
			b.logger.Warn("Failed to read file, substituting placeholder",
				zap.String("path", f.Path),
				zap.Error(err))
			text = fmt.Sprintf("[Error reading file: %v]", err)
			lineCount++
		} else {
			lineCount += strings.Count(text, "\n") + 1
		}

		section := FileSection(f.Path, text)
		b.emit(Segment{Kind: SegmentFile, Path: f.Path, Text: section})
		content.WriteString(section)
		processed += f.SizeBytes

		b.logger.Debug("Emitted file section",
			zap.String("path", f.Path),
			zap.Int64("sizeBytes", f.SizeBytes))
	}

	b.report(totalSize, totalSize, "Complete")

	full := content.String()
	return Result{
		Content: full,
		Stats: ProcessingStats{
			TotalFiles:      len(files),
			TotalSizeBytes:  totalSize,
			LineCount:       lineCount,
			EstimatedTokens: EstimateTokens(full),
		},
		ChecksumHex: Digest(full),
	}
}

// readFile races the content accessor against the read timeout and the
// caller's context. A read that neither resolves nor fails within the window
// is treated as failed for this file only; the orphaned goroutine's result
// is discarded through the buffered channel.
func (b *Builder) readFile(ctx context.Context, f CandidateFile) (string, error) {
	if f.Read == nil {
		return "", errors.New("no content accessor")
	}

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- readResult{err: fmt.Errorf("read panic: %v", r)}
			}
		}()
		data, err := f.Read()
		ch <- readResult{data: data, err: err}
	}()

	timeout := b.ReadTimeout
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}

	select {
	case r := <-ch:
		if r.err != nil {
			return "", r.err
		}
		return string(r.data), nil
	case <-time.After(timeout):
		return "", fmt.Errorf("timed out after %s", timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// failedResult shapes an operation-level failure as a Result so callers
// never deal with a propagated panic.
func (b *Builder) failedResult(cause any) Result {
	var sb strings.Builder
	sb.WriteString(indexBeginMarker + "\n")
	fmt.Fprintf(&sb, "/* Generated: %s */\n", b.now().UTC().Format(time.RFC3339))
	sb.WriteString("/* Total Files: 0 */\n")
	fmt.Fprintf(&sb, "/* Bundling failed: %v */\n", cause)
	sb.WriteString(indexEndMarker + "\n")
	return Result{
		Content:     sb.String(),
		ChecksumHex: FailedChecksum,
	}
}

func (b *Builder) emit(seg Segment) {
	if b.OnSegment != nil {
		b.OnSegment(seg)
	}
}

func (b *Builder) report(processed, total int64, current string) {
	if b.OnProgress != nil {
		b.OnProgress(processed, total, current)
	}
}

func (b *Builder) now() time.Time {
	if b.Clock != nil {
		return b.Clock()
	}
	return time.Now()
}

// EstimateTokens approximates a token count as ceil(characters/4), counting
// characters in runes. Deliberately crude.
func EstimateTokens(content string) int {
	runes := utf8.RuneCountInString(content)
	return (runes + 3) / 4
}
