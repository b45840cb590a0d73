// Package shader supplies shader source text by logical name. The renderer
// treats the sources as opaque blobs; the built-in provider carries the demo
// quad's fixed pair.
package shader

import "fmt"

// Logical source names the renderer requests.
const (
	VertexName   = "vertex"
	FragmentName = "fragment"
)

// Provider resolves shader source text by logical name.
type Provider interface {
	ShaderSource(name string) (string, error)
}

const vertexShaderSource = `#version 410 core
in vec3 vertexPosition;
in vec3 vertexColor;
out vec3 fragColor;
void main() {
    fragColor = vertexColor;
    gl_Position = vec4(vertexPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 fragColor;
out vec4 outColor;
void main() {
    outColor = vec4(fragColor, 1.0);
}
`

type builtin struct{}

// Builtin returns the provider holding the fixed vertex/fragment pair used
// by the demo quad. The program declares the vertexPosition and vertexColor
// attributes.
func Builtin() Provider {
	return builtin{}
}

func (builtin) ShaderSource(name string) (string, error) {
	switch name {
	case VertexName:
		return vertexShaderSource, nil
	case FragmentName:
		return fragmentShaderSource, nil
	}
	return "", fmt.Errorf("no shader source named %q", name)
}
