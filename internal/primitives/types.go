package primitives

import (
	"looky-shapes/internal/mapgen"
	"looky-shapes/internal/shapes"
)

// Mesh names understood by Registry.Draw.
const (
	MeshCube        = "cube"
	MeshSphere      = "sphere"
	MeshTetrahedron = "tetrahedron"
	MeshOctahedron  = "octahedron"
	MeshTorus       = "torus"
	MeshSlab        = "slab"
	MeshSpire       = "spire"
	MeshDisk        = "disk"
	MeshPlane       = "plane"
)

// Transform places a mesh: position, Euler rotation in radians, and per-axis scale (0 means 1).
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// ForShape returns the mesh for a collectible shape type. Unknown types draw as a cube.
func ForShape(t shapes.Type) string {
	switch t {
	case shapes.Sphere:
		return MeshSphere
	case shapes.Tetrahedron:
		return MeshTetrahedron
	case shapes.Octahedron:
		return MeshOctahedron
	case shapes.Torus:
		return MeshTorus
	default:
		return MeshCube
	}
}

// ForDecoration returns the mesh and scale for a decoration. Slab and spire meshes are unit sized.
func ForDecoration(d mapgen.Decoration) (string, Transform) {
	t := Transform{Position: d.Position, Rotation: [3]float32{0, d.Yaw, 0}, Scale: d.Size}
	if d.Kind == mapgen.Spire {
		return MeshSpire, t
	}
	return MeshSlab, t
}
