package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefinesAfterVersion(t *testing.T) {
	src := "#version 410 core\nvoid main() {}\n"
	got := WithDefines(src, "USE_MAP", "MAX_LIGHTS 4")
	assert.Equal(t, "#version 410 core\n#define USE_MAP\n#define MAX_LIGHTS 4\nvoid main() {}\n", got)
}

func TestWithDefinesNoVersion(t *testing.T) {
	assert.Equal(t, "#define A\nvoid main() {}", WithDefines("void main() {}", "A"))
}

func TestWithDefinesVersionOnly(t *testing.T) {
	assert.Equal(t, "#version 410 core\n#define A\n", WithDefines("#version 410 core", "A"))
}

func TestWithDefinesNone(t *testing.T) {
	src := "#version 410 core\n"
	assert.Equal(t, src, WithDefines(src))
}
