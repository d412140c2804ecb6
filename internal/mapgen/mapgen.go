package mapgen

import (
	"github.com/chewxy/math32"

	"looky-shapes/internal/rng"
)

// Kind is the decoration mesh.
type Kind int

const (
	// Slab is a flat box lying on the ground.
	Slab Kind = iota
	// Spire is a four-sided cone.
	Spire
)

func (k Kind) String() string {
	if k == Spire {
		return "spire"
	}
	return "slab"
}

// Decoration is a static, non-collectible prop. Position is the mesh centre.
// For a Slab, Size is (width, height, depth); for a Spire it is (radius, height, radius).
type Decoration struct {
	Kind     Kind
	Position [3]float32
	Size     [3]float32
	Yaw      float32
}

// ScatterOptions controls decoration placement.
// Extent is the half-width of the square decorations are scattered over.
// Decorations never overlap the keep-out circle around KeepOut on XZ.
// Octaves, Frequency, Lacunarity, and Gain shape the noise that scales props,
// so neighbouring props come out at similar sizes.
type ScatterOptions struct {
	Count         int
	Extent        float32
	KeepOut       [2]float32
	KeepOutRadius float32

	Seed       int32
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultScatterOptions returns the layout used by the game for a world of half-size worldSize.
func DefaultScatterOptions(worldSize float32) ScatterOptions {
	return ScatterOptions{
		Count:         30,
		Extent:        worldSize * 0.9,
		KeepOut:       [2]float32{0, -20},
		KeepOutRadius: 10,
		Octaves:       3,
		Frequency:     0.02,
		Lacunarity:    2.0,
		Gain:          0.5,
	}
}

// maxTriesPerProp bounds the search for a spot outside the keep-out circle.
const maxTriesPerProp = 16

// Scatter places opts.Count decorations using src. A prop that cannot find a
// spot outside the keep-out circle is skipped, so fewer may be returned.
func Scatter(opts ScatterOptions, src rng.Source) []Decoration {
	if opts.Count <= 0 || opts.Extent <= 0 {
		return nil
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.02
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}

	out := make([]Decoration, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		x, z, ok := spot(opts, src)
		if !ok {
			continue
		}
		// Noise in [0,1] scales the prop; 0.5 is the average prop.
		n := fractalValueNoise2D(x*opts.Frequency, z*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		scale := 0.5 + n

		d := Decoration{Yaw: rng.Range(src, 0, 2*math32.Pi)}
		if rng.Intn(src, 2) == 0 {
			size := rng.Range(src, 1, 4) * scale
			h := size * 0.3
			d.Kind = Slab
			d.Size = [3]float32{size, h, size}
			d.Position = [3]float32{x, h * 0.5, z}
		} else {
			r := rng.Range(src, 1, 3) * scale
			h := rng.Range(src, 2, 5) * scale
			d.Kind = Spire
			d.Size = [3]float32{r, h, r}
			d.Position = [3]float32{x, h * 0.5, z}
		}
		out = append(out, d)
	}
	return out
}

func spot(opts ScatterOptions, src rng.Source) (x, z float32, ok bool) {
	for try := 0; try < maxTriesPerProp; try++ {
		x = rng.Range(src, -opts.Extent, opts.Extent)
		z = rng.Range(src, -opts.Extent, opts.Extent)
		dx, dz := x-opts.KeepOut[0], z-opts.KeepOut[1]
		if dx*dx+dz*dz >= opts.KeepOutRadius*opts.KeepOutRadius {
			return x, z, true
		}
	}
	return 0, 0, false
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int32, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, seed+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	sx, sy := smoothStep(x-fx), smoothStep(y-fy)

	top := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	bottom := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(top, bottom, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffffff) / 2147483647.0
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3, clamped to [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
