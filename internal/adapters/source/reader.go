// Package source reads the contact source file: raw lines, comment removal,
// and grouping into blank-line separated blocks.
package source

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader over the local filesystem.
type Reader struct{}

// Lines reads the file and returns its lines with 1-based numbers.
func (r *Reader) Lines(path string) ([]domain.Line, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceInput, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var lines []domain.Line
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		lines = append(lines, domain.Line{Text: scanner.Text(), Number: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceInput, err.Error()), "path", path)
	}
	return lines, nil
}

// RemoveComments filters out comment lines (leading '#').
func RemoveComments(lines []domain.Line) []domain.Line {
	out := lines[:0:0]
	for _, l := range lines {
		if !strings.HasPrefix(l.Text, "#") {
			out = append(out, l)
		}
	}
	return out
}

// SplitBlocks groups lines into blocks: contiguous runs of non-blank lines
// separated by one or more blank lines.
func SplitBlocks(lines []domain.Line) []domain.Block {
	var blocks []domain.Block
	var block domain.Block
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == "" {
			if len(block) > 0 {
				blocks = append(blocks, block)
				block = nil
			}
			continue
		}
		block = append(block, l)
	}
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks
}

// Blocks reads path and returns its comment-stripped blocks.
func (r *Reader) Blocks(path string) ([]domain.Block, error) {
	lines, err := r.Lines(path)
	if err != nil {
		return nil, err
	}
	return SplitBlocks(RemoveComments(lines)), nil
}
