package renderer

import "fmt"

// Shader attribute names the mesh streams bind to.
const (
	PositionAttrib = "vertexPosition"
	ColorAttrib    = "vertexColor"
)

const floatsPerVertex = 3

// Mesh holds the CPU-side vertex streams: xyz positions and rgb colors,
// three floats per vertex, equal vertex counts.
type Mesh struct {
	Positions []float32
	Colors    []float32
}

// VertexCount reports the number of vertices in the position stream.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / floatsPerVertex
}

func (m Mesh) validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Positions)%floatsPerVertex != 0 {
		return fmt.Errorf("position stream length %d is not a multiple of %d", len(m.Positions), floatsPerVertex)
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("color stream has %d floats, position stream has %d", len(m.Colors), len(m.Positions))
	}
	return nil
}
