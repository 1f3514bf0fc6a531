package framebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name               string
		w, h, scale, limit int
		wantW, wantH       int
	}{
		{"identity", 1280, 720, 1, 16384, 1280, 720},
		{"double", 1280, 720, 2, 16384, 2560, 1440},
		{"zero scale treated as one", 800, 600, 0, 0, 800, 600},
		{"no limit", 4000, 3000, 8, 0, 32000, 24000},
		{"clamp wide", 4000, 2000, 4, 8192, 8192, 4096},
		{"clamp tall", 1000, 3000, 4, 6000, 2000, 6000},
		{"empty drawable", 0, 720, 2, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.w, tt.h, tt.scale, tt.limit)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
