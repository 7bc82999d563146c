// ge_soft_transform.go - Software Vertex Transform Stage

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
ge_soft_transform.go - Software Vertex Transform Stage

The software flush path hands decoded vertices to a transform/clip stage
before anything reaches the sink. The stage either produces screen-space
vertices to draw, or detects that the batch is really a buffer clear (a
clear-mode rectangle covering the render target) and reports the clear
parameters instead.

The full model-view-projection pipeline with lighting belongs to the
command interpreter; this file carries the stage interface plus the
through-mode implementation, where supplied coordinates are already in
screen space and only texture-coordinate normalization and clear
detection remain.
*/

package main

// Transform stage outcomes.
const (
	TRANSFORM_DRAW_PRIMITIVES = 0
	TRANSFORM_CLEAR           = 1
)

// TransformResult is what the transform stage produced for one flush.
type TransformResult struct {
	Action      int
	Prim        int // primitive kind of the draw output
	DrawBuffer  []VertexData
	NumVerts    int
	DrawIndexed bool

	// Clear parameters, valid when Action is TRANSFORM_CLEAR.
	Color   uint32
	Depth   float32 // normalized 0..1
	Stencil uint8
}

// VertexTransformer turns decoded vertices into screen-space draw input.
type VertexTransformer interface {
	Transform(prim int, verts []VertexData, vertexCount int, inds []uint16, state *GEState) TransformResult
}

// ThroughTransform is the through-mode stage: positions pass through
// unchanged, texture coordinates are texel values and normalize against
// the level-0 dimensions.
type ThroughTransform struct{}

// Transform implements VertexTransformer. vertexCount is the length of
// the accumulated index stream; verts holds the decoded vertices it
// references.
func (ThroughTransform) Transform(prim int, verts []VertexData, vertexCount int, inds []uint16, state *GEState) TransformResult {
	if vertexCount > len(inds) {
		vertexCount = len(inds)
	}

	if state.ClearMode && vertexCount > 0 && len(verts) > 0 {
		// A clear-mode draw carries the clear color and depth in its
		// vertices; the last referenced vertex is authoritative.
		lastIdx := int(inds[vertexCount-1])
		if lastIdx >= len(verts) {
			lastIdx = len(verts) - 1
		}
		last := verts[lastIdx]
		return TransformResult{
			Action:  TRANSFORM_CLEAR,
			Color:   last.Color,
			Depth:   float32(last.ScreenZ) / 65535,
			Stencil: uint8(last.Color >> 24),
		}
	}

	if state.TextureEnable {
		w := float32(state.TexWidth(0))
		h := float32(state.TexHeight(0))
		for i := range verts {
			verts[i].U /= w
			verts[i].V /= h
		}
	}

	if prim == GE_PRIM_RECTANGLES {
		out := expandRectangles(verts, vertexCount, inds)
		return TransformResult{
			Action:     TRANSFORM_DRAW_PRIMITIVES,
			Prim:       GE_PRIM_TRIANGLES,
			DrawBuffer: out,
			NumVerts:   len(out),
		}
	}

	return TransformResult{
		Action:      TRANSFORM_DRAW_PRIMITIVES,
		Prim:        prim,
		DrawBuffer:  verts,
		NumVerts:    vertexCount,
		DrawIndexed: true,
	}
}

// expandRectangles turns each rectangle vertex pair into two screen-space
// triangles. The second vertex of a pair supplies color and depth for
// the whole rectangle; texture coordinates map corner-wise from both.
func expandRectangles(verts []VertexData, vertexCount int, inds []uint16) []VertexData {
	out := make([]VertexData, 0, vertexCount/2*6)
	for i := 0; i+1 < vertexCount; i += 2 {
		i0, i1 := int(inds[i]), int(inds[i+1])
		if i0 >= len(verts) || i1 >= len(verts) {
			continue
		}
		a, b := verts[i0], verts[i1]

		tl, tr, bl := b, b, b
		tl.ScreenX, tl.ScreenY, tl.U, tl.V = a.ScreenX, a.ScreenY, a.U, a.V
		tr.ScreenY, tr.V = a.ScreenY, a.V
		bl.ScreenX, bl.U = a.ScreenX, a.U
		out = append(out, tl, tr, b, tl, b, bl)
	}
	return out
}
