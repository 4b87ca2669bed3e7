package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmbeddedSheets(t *testing.T) {
	hero, err := DecodeImage("assets/hero.png")
	require.NoError(t, err)
	assert.Equal(t, 192, hero.Bounds().Dx())
	assert.Equal(t, 256, hero.Bounds().Dy())

	props, err := DecodeImage("props.png")
	require.NoError(t, err)
	assert.Equal(t, 64, props.Bounds().Dx())
}

func TestDecodeMissing(t *testing.T) {
	_, err := DecodeImage("missing.png")
	assert.Error(t, err)
}

func TestCleanAssetPath(t *testing.T) {
	assert.Equal(t, "hero.png", cleanAssetPath("assets/hero.png"))
	assert.Equal(t, "hero.png", cleanAssetPath("/home/me/game/assets/hero.png"))
	assert.Equal(t, "", cleanAssetPath(""))
}
