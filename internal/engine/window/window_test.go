package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelRatio(t *testing.T) {
	assert.Equal(t, float32(1), PixelRatio(1280, 1280))
	assert.Equal(t, float32(2), PixelRatio(2560, 1280))
	assert.Equal(t, float32(1), PixelRatio(0, 1280), "minimised window")
	assert.Equal(t, float32(1), PixelRatio(1280, 0))
}
