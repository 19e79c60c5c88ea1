package assets_test

import (
	"io/fs"
	"testing"

	"github.com/loliomg/hitcat/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	for _, name := range []string{assets.Hammer, assets.Cat} {
		t.Run(name, func(t *testing.T) {
			img, err := assets.Decode(name)
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())
			assert.Equal(t, 64, img.Bounds().Dy())

			_, _, _, a := img.At(0, 0).RGBA()
			assert.Zero(t, a, "corners are transparent")
		})
	}
}

func TestDecodeMissing(t *testing.T) {
	_, err := assets.Decode("dog.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "dog.png")
}
