package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for a mesh name. Created lazily on first Draw.
// offset recentres meshes whose raylib origin is not their centre (cones, cylinders).
type cached struct {
	mesh   rl.Mesh
	mtl    rl.Material
	offset [3]float32
}

// Registry maps mesh names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so lit meshes get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings     = 16
	sphereSlices    = 16
	torusSegments   = 16
	torusSides      = 8
	diskSlices      = 32
	tetraSlices     = 3
	octaSlices      = 4
	spireSlices     = 4
	collectibleSide = 2
)

// generate builds the mesh for name, sized like the collectible it stands for:
// cube side 2, sphere radius 1.2, tetrahedron 1.5, octahedron 1.3, torus 1 with a 0.4 tube.
// Slab, spire, disk and plane are unit sized and scaled at draw time.
func generate(name string) (rl.Mesh, [3]float32, bool) {
	switch name {
	case MeshCube:
		return rl.GenMeshCube(collectibleSide, collectibleSide, collectibleSide), [3]float32{}, true
	case MeshSphere:
		return rl.GenMeshSphere(1.2, sphereRings, sphereSlices), [3]float32{}, true
	case MeshTetrahedron:
		// Triangular pyramid with its base at y=0; shift down to centre it.
		return rl.GenMeshCone(1.5, 2, tetraSlices), [3]float32{0, -1, 0}, true
	case MeshOctahedron:
		// Upper half; Draw turns it over for the lower half.
		return rl.GenMeshCone(1.3, 1.3, octaSlices), [3]float32{}, true
	case MeshTorus:
		return rl.GenMeshTorus(0.4, 2, torusSegments, torusSides), [3]float32{}, true
	case MeshSlab:
		return rl.GenMeshCube(1, 1, 1), [3]float32{}, true
	case MeshSpire:
		return rl.GenMeshCone(1, 1, spireSlices), [3]float32{0, -0.5, 0}, true
	case MeshDisk:
		return rl.GenMeshCylinder(1, 1, diskSlices), [3]float32{0, -0.5, 0}, true
	case MeshPlane:
		return rl.GenMeshPlane(1, 1, 1, 1), [3]float32{}, true
	}
	return rl.Mesh{}, [3]float32{}, false
}

func (r *Registry) ensure(name string) (cached, bool) {
	if c, ok := r.cache[name]; ok {
		return c, true
	}
	if !r.loaded {
		r.shader = loadLitShader()
		r.loaded = true
	}
	mesh, offset, ok := generate(name)
	if !ok {
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl, offset: offset}
	r.cache[name] = c
	return c, true
}

// loadLitShader returns a shader that does simple directional light + ambient.
// Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

var (
	ambient    = [4]float32{0.35, 0.36, 0.4, 1.0}
	lightColor = [3]float32{1.0, 0.98, 0.95}
)

const (
	lightIntensity   = float32(0.75)
	specularPower    = float32(32.0)
	specularStrength = float32(0.3)
)

// setUniforms uploads the per-frame lighting values (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := r.viewPos
	lightDir := r.lightDir
	amb := ambient
	col := lightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

// matrix builds offset, then scale, then rotation, then translation.
func matrix(t Transform, offset [3]float32) rl.Matrix {
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixTranslate(offset[0], offset[1], offset[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(sx, sy, sz))
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(t.Rotation[0], t.Rotation[1], t.Rotation[2])))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position[0], t.Position[1], t.Position[2]))
}

// Draw draws one instance of the named mesh with the given tint.
// Must be called between BeginMode3D and EndMode3D, after SetView. Unknown names are skipped.
func (r *Registry) Draw(name string, t Transform, tint rl.Color) {
	c, ok := r.ensure(name)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, matrix(t, c.offset))

	if name == MeshOctahedron {
		// Turn the upper pyramid over for the lower half; rotating keeps the winding.
		flip := rl.MatrixMultiply(rl.MatrixRotateX(rl.Pi), matrix(t, c.offset))
		rl.DrawMesh(c.mesh, c.mtl, flip)
	}
}

// Unload releases every cached mesh and the shared shader. Call before closing the window.
func (r *Registry) Unload() {
	for name, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, name)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}
