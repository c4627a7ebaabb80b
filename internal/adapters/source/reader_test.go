package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/six/internal/adapters/source"
	"go.trai.ch/six/internal/core/domain"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBlocks(t *testing.T) {
	path := writeSource(t, `# leading comment
%country AU cc=61 "Australia"

Ann Example
# interior comment
email ann@example.com


Bob Example
`)
	r := &source.Reader{}
	blocks, err := r.Blocks(path)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.True(t, blocks[0].IsControl())
	assert.False(t, blocks[1].IsControl())

	// Comment lines vanish but line numbers stay true to the file.
	require.Len(t, blocks[1], 2)
	assert.Equal(t, "Ann Example", blocks[1][0].Text)
	assert.Equal(t, 4, blocks[1][0].Number)
	assert.Equal(t, "email ann@example.com", blocks[1][1].Text)
	assert.Equal(t, 6, blocks[1][1].Number)

	require.Len(t, blocks[2], 1)
	assert.Equal(t, 9, blocks[2][0].Number)
}

func TestBlocks_MissingFile(t *testing.T) {
	r := &source.Reader{}
	_, err := r.Blocks(filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, err, domain.ErrSourceInput)
}

func TestSplitBlocks_WhitespaceOnlySeparators(t *testing.T) {
	lines := []domain.Line{
		{Text: "a", Number: 1},
		{Text: "   ", Number: 2},
		{Text: "b", Number: 3},
		{Text: "c", Number: 4},
	}
	blocks := source.SplitBlocks(lines)
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0], 1)
	assert.Len(t, blocks[1], 2)
}

func TestRemoveComments_KeepsIndentedHashes(t *testing.T) {
	lines := []domain.Line{
		{Text: "# gone", Number: 1},
		{Text: " # stays", Number: 2},
	}
	out := source.RemoveComments(lines)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Number)
}
