package fs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestReadPropertiesFile(t *testing.T) {
	fsys := newMemFixture(t)
	require.NoError(t, afero.WriteFile(fsys.Afero(), "/home/user/pic.png", pngHeader, 0o644))

	props, err := ReadProperties(fsys, "/home/user/pic.png")
	require.NoError(t, err)

	assert.Equal(t, "pic.png", props.Name)
	assert.Equal(t, "/home/user/pic.png", props.Path)
	assert.False(t, props.IsDir)
	assert.Equal(t, int64(len(pngHeader)), props.Size)
	assert.Equal(t, "image/png", props.MIME)
	assert.Equal(t, "File", props.Kind())
}

func TestReadPropertiesText(t *testing.T) {
	fsys := newMemFixture(t)

	props, err := ReadProperties(fsys, "/home/user/notes.txt")
	require.NoError(t, err)
	assert.Contains(t, props.MIME, "text/plain")
}

func TestReadPropertiesDirectory(t *testing.T) {
	fsys := newMemFixture(t)

	props, err := ReadProperties(fsys, "/home/user/docs")
	require.NoError(t, err)
	assert.True(t, props.IsDir)
	assert.Equal(t, "Folder", props.Kind())
	assert.Equal(t, "inode/directory", props.MIME)
}

func TestReadPropertiesMissing(t *testing.T) {
	fsys := newMemFixture(t)

	_, err := ReadProperties(fsys, "/home/user/ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
