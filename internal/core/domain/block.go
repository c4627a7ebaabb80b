package domain

import "strings"

// Line is one comment-stripped source line with its 1-based position, kept so
// parse errors can point back into the file.
type Line struct {
	Text   string
	Number int
}

// Block is a contiguous run of non-blank lines. Blocks are the unit fed to
// the model builder.
type Block []Line

// IsControl reports whether the block is a control block ('%'-led first line).
func (b Block) IsControl() bool {
	return len(b) > 0 && strings.HasPrefix(b[0].Text, "%")
}
