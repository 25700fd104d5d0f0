package storage

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalArchiveSaveAndOpen(t *testing.T) {
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path, err := archive.Save(ctx, "2025/03/attendance-report-2025-03.xlsx", []byte("workbook"))
	require.NoError(t, err)
	assert.Equal(t, "2025/03/attendance-report-2025-03.xlsx", path)

	exists, err := archive.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	f, err := archive.Open(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook"), content)
}

func TestLocalArchiveMissingFile(t *testing.T) {
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	exists, err := archive.Exists(ctx, "2025/03/missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = archive.Open(ctx, "2025/03/missing.pdf")
	assert.Error(t, err)
}

func TestLocalArchiveRejectsTraversal(t *testing.T) {
	archive, err := NewLocalArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = archive.Save(ctx, "../outside.txt", []byte("nope"))
	assert.Error(t, err)
}
