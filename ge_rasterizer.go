// ge_rasterizer.go - GE Software Triangle Rasterizer

/*
 ███▄ ▄███▓▓█████  ██▀███   ██▓▓█████▄  ██▓  ▄▄▄       ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒▀█▀ ██▒▓█   ▀ ▓██ ▒ ██▒▓██▒▒██▀ ██▌▓██▒ ▒████▄     ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▓██    ▓██░▒███   ▓██ ░▄█ ▒▒██▒░██   █▌▒██▒ ▒██  ▀█▄  ▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
▒██    ▒██ ▒▓█  ▄ ▒██▀▀█▄  ░██░░▓█▄   ▌░██░ ░██▄▄▄▄██ ▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
▒██▒   ░██▒░▒████▒░██▓ ▒██▒░██░░▒████▓ ░██░  ▓█   ▓██▒▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░ ▒░   ░  ░░░ ▒░ ░░ ▒▓ ░▒▓░░▓   ▒▒▓  ▒ ░▓    ▒▒   ▓▒█░░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
░  ░      ░ ░ ░  ░  ░▒ ░ ▒░ ▒ ░ ░ ▒  ▒  ▒ ░   ▒   ▒▒ ░░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
░      ░      ░     ░░   ░  ▒ ░ ░ ░  ░  ▒ ░   ░   ▒      ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
       ░      ░  ░   ░      ░     ░     ░         ░  ░         ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MeridianEngine
License: GPLv3 or later
*/

/*
ge_rasterizer.go - GE Software Triangle Rasterizer

Per-pixel fallback for draws the hardware path cannot reproduce. Writes
straight into the shared color/depth buffers with the same visible result
the hardware path would produce: same depth test outcome, same
perspective-correct interpolation, same texture sample.

Coverage uses three inclusive edge functions (w >= 0 on all three edges).
Pixels exactly on an edge shared by two adjacent triangles are therefore
covered by both; the hardware's tie-break rule is unresolved, so this is
kept as-is rather than silently replaced with a top-left rule.
*/

package main

// Rasterizer draws triangles into a DrawSurface under one state
// snapshot.
type Rasterizer struct {
	surface *DrawSurface
	sampler *PixelSampler
	state   *GEState
}

// NewRasterizer builds a rasterizer over the given surface, sampler and
// snapshot.
func NewRasterizer(surface *DrawSurface, sampler *PixelSampler, state *GEState) *Rasterizer {
	return &Rasterizer{surface: surface, sampler: sampler, state: state}
}

// orient2d is the signed edge function: positive when c lies to the
// left of the directed edge a->b.
func orient2d(v0, v1 VertexData, px, py int) int {
	return (v1.ScreenX-v0.ScreenX)*(py-v0.ScreenY) - (v1.ScreenY-v0.ScreenY)*(px-v0.ScreenX)
}

// depthTestPassed evaluates the snapshot's depth compare function for an
// incoming depth z against the buffer value at (x, y). Clear mode always
// passes. An out-of-range compare function value defaults to pass, with
// a log entry; the hardware's behaviour for it is undefined.
func (r *Rasterizer) depthTestPassed(x, y int, z uint16) bool {
	if r.state.ClearMode {
		return true
	}
	ref := r.surface.PixelDepth(x, y)
	switch r.state.DepthFunc {
	case GE_COMP_NEVER:
		return false
	case GE_COMP_ALWAYS:
		return true
	case GE_COMP_EQUAL:
		return z == ref
	case GE_COMP_NOTEQUAL:
		return z != ref
	case GE_COMP_LESS:
		return z < ref
	case GE_COMP_LEQUAL:
		return z <= ref
	case GE_COMP_GREATER:
		return z > ref
	case GE_COMP_GEQUAL:
		return z >= ref
	}
	geLog().Warn("unknown depth compare function", "func", r.state.DepthFunc)
	return true
}

// DrawTriangle rasterizes one triangle, scoped to the intersection of
// its bounding box and the scissor rectangle.
func (r *Rasterizer) DrawTriangle(v0, v1, v2 VertexData) {
	minX := min3(v0.ScreenX, v1.ScreenX, v2.ScreenX)
	minY := min3(v0.ScreenY, v1.ScreenY, v2.ScreenY)
	maxX := max3(v0.ScreenX, v1.ScreenX, v2.ScreenX)
	maxY := max3(v0.ScreenY, v1.ScreenY, v2.ScreenY)

	if minX < r.state.ScissorX1 {
		minX = r.state.ScissorX1
	}
	if maxX > r.state.ScissorX2 {
		maxX = r.state.ScissorX2
	}
	if minY < r.state.ScissorY1 {
		minY = r.state.ScissorY1
	}
	if maxY > r.state.ScissorY2 {
		maxY = r.state.ScissorY2
	}

	// Inverse clip-space w per vertex, the perspective weights.
	iw0 := 1.0 / v0.ClipW
	iw1 := 1.0 / v1.ClipW
	iw2 := 1.0 / v2.ClipW

	textured := r.state.TextureEnable && !r.state.ClearMode
	gouraud := r.state.ShadeModel == GE_SHADE_GOURAUD
	depthStage := r.state.DepthTestApplies()
	depthWrite := r.state.DepthWriteApplies()

	// Flat shading takes the last vertex's color verbatim.
	flatColor := v2.Color

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			w0 := orient2d(v1, v2, px, py)
			w1 := orient2d(v2, v0, px, py)
			w2 := orient2d(v0, v1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			f0 := float32(w0) * iw0
			f1 := float32(w1) * iw1
			f2 := float32(w2) * iw2
			den := f0 + f1 + f2
			if den == 0 {
				continue
			}

			if depthStage {
				z := uint16((float32(v0.ScreenZ)*f0 + float32(v1.ScreenZ)*f1 + float32(v2.ScreenZ)*f2) / den)
				if !r.depthTestPassed(px, py, z) {
					continue
				}
				if depthWrite {
					r.surface.SetPixelDepth(px, py, z)
				}
			}

			var color uint32
			if gouraud {
				cr := uint32((float32(v0.Color&0xFF)*f0 + float32(v1.Color&0xFF)*f1 + float32(v2.Color&0xFF)*f2) / den)
				cg := uint32((float32(v0.Color>>8&0xFF)*f0 + float32(v1.Color>>8&0xFF)*f1 + float32(v2.Color>>8&0xFF)*f2) / den)
				cb := uint32((float32(v0.Color>>16&0xFF)*f0 + float32(v1.Color>>16&0xFF)*f1 + float32(v2.Color>>16&0xFF)*f2) / den)
				ca := uint32((float32(v0.Color>>24&0xFF)*f0 + float32(v1.Color>>24&0xFF)*f1 + float32(v2.Color>>24&0xFF)*f2) / den)
				color = cr | cg<<8 | cb<<16 | ca<<24
			} else {
				color = flatColor
			}

			if textured {
				s := (v0.U*f0 + v1.U*f1 + v2.U*f2) / den
				t := (v0.V*f0 + v1.V*f1 + v2.V*f2) / den
				// Texture color replaces the base color at this layer;
				// combine modes live upstream in the shading state.
				color = r.sampler.SampleNearest(0, s, t)
			}

			r.surface.SetPixelColor(px, py, color)
		}
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
