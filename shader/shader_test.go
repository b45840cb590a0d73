package shader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glquad/shader"
)

func TestBuiltinSources(t *testing.T) {
	p := shader.Builtin()

	vertex, err := p.ShaderSource(shader.VertexName)
	require.NoError(t, err)
	assert.Contains(t, vertex, "vertexPosition")
	assert.Contains(t, vertex, "vertexColor")

	fragment, err := p.ShaderSource(shader.FragmentName)
	require.NoError(t, err)
	assert.Contains(t, fragment, "fragColor")
}

func TestBuiltinUnknownName(t *testing.T) {
	_, err := shader.Builtin().ShaderSource("geometry")
	assert.Error(t, err)
}
