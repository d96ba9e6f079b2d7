package assets

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	s := NewStore(t.TempDir())

	ref, err := s.Save(strings.NewReader("hello world"))
	require.NoError(t, err)
	// hex MD5 of the content
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", ref)

	f, err := s.Open(ref)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(content))
}

func TestSaveIdempotent(t *testing.T) {
	s := NewStore(t.TempDir())

	ref1, err := s.Save(strings.NewReader("same content"))
	require.NoError(t, err)
	ref2, err := s.Save(strings.NewReader("same content"))
	require.NoError(t, err)
	assert.Equal(t, ref1, ref2)

	ref3, err := s.Save(strings.NewReader("other content"))
	require.NoError(t, err)
	assert.NotEqual(t, ref1, ref3)
}

func TestPathSharding(t *testing.T) {
	s := NewStore("/data/assets")

	assert.Equal(t,
		filepath.Join("/data/assets", "ab", "cd", "ef0123"),
		s.Path("abcdef0123"))
	assert.Equal(t, filepath.Join("/data/assets", "xy"), s.Path("xy"))
}

func TestOpenMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Open("5eb63bbbe01eeed093cb22bb8f5acdc3")
	assert.Error(t, err)
}
