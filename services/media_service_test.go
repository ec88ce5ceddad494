package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_StoreBytes(t *testing.T) {
	dir := t.TempDir()
	media := NewMediaService(dir)

	ref, err := media.StoreBytes([]byte("image data"), "photo.png")
	require.NoError(t, err)

	// the reference is a bare filename, not a path
	assert.NotContains(t, ref, string(os.PathSeparator))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "image data", string(data))
}

func TestMediaService_UniqueReferences(t *testing.T) {
	media := NewMediaService(t.TempDir())

	first, err := media.StoreBytes([]byte("a"), "same.jpg")
	require.NoError(t, err)
	second, err := media.StoreBytes([]byte("b"), "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMediaService_ExtensionFromLastDot(t *testing.T) {
	media := NewMediaService(t.TempDir())

	ref, err := media.StoreBytes([]byte("x"), "archive.tar.gz")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".gz"))
}

func TestMediaService_NameWithoutDot(t *testing.T) {
	dir := t.TempDir()
	media := NewMediaService(dir)

	// a dotless name contributes itself as the extension
	ref, err := media.StoreBytes([]byte("x"), "README")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".README"))

	_, err = os.Stat(filepath.Join(dir, ref))
	assert.NoError(t, err)
}

func TestMediaService_SanitizesHostileNames(t *testing.T) {
	dir := t.TempDir()
	media := NewMediaService(dir)

	ref, err := media.StoreBytes([]byte("x"), "evil./../../etc/passwd")
	require.NoError(t, err)

	assert.NotContains(t, ref, "/")
	assert.NotContains(t, ref, "..")

	// the file must land inside the upload dir
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.NoError(t, err)
}
