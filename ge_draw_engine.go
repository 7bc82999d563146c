// ge_draw_engine.go - GE Deferred Draw Call Batching and Flush Engine

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
ge_draw_engine.go - GE Deferred Draw Call Batching and Flush Engine

The front end of the emulated GE. The command interpreter calls
SubmitPrim for every primitive in the display list; the engine defers
them into a bounded list so that many small submissions become one big
host draw. Accumulation stops - and a flush runs - when a primitive kind
cannot merge with the batch, a capacity limit is hit, or a submitted
rectangle samples the surface it is rendering to.

A flush decodes all deferred vertex data into the canonical layout
(merging index ranges across calls that share one vertex buffer, so a
shared buffer is decoded exactly once), then either issues a single
bound-buffers-plus-draw against the hardware sink, or runs the software
transform and per-pixel rasterizer when the selected shader cannot do
the vertex transform in hardware. Afterwards all batch state resets;
nothing survives a flush boundary.

Everything runs on the single thread driving the emulated command
stream. SubmitPrim may re-enter Flush synchronously; Flush never calls
back into SubmitPrim.
*/

package main

import "math/bits"

// DeferredDrawCall is one accepted primitive submission awaiting a
// flush. The vertex and index data are references into emulated memory,
// not owned copies.
type DeferredDrawCall struct {
	vertAddr uint32
	indAddr  uint32
	verts    []byte
	inds     []byte
	reader   *VertexReader

	vertType    uint32
	indexType   uint32
	prim        int
	vertexCount int

	indexLowerBound int
	indexUpperBound int
}

// VertexShader is the draw engine's view of a selected vertex shader
// variant.
type VertexShader interface {
	UseHWTransform() bool
}

// ShaderManager selects shader variants for a primitive kind and vertex
// format. Shader compilation and caching belong to the host renderer.
type ShaderManager interface {
	GetShaders(prim int, vertType uint32) VertexShader
}

// GEConfig carries the tunables affecting batching behaviour.
type GEConfig struct {
	// SoftwareSkinning decodes weighted vertices at submit time so the
	// skinning weights are read before later calls reuse the buffer.
	SoftwareSkinning bool

	// DisableSlowFramebufEffects skips the forced flush when a
	// rectangle's texture aliases the render target. Faster, wrong for
	// titles that rely on render-to-texture feedback.
	DisableSlowFramebufEffects bool
}

// GEStats counts work done, for diagnostics and the display overlay.
type GEStats struct {
	NumFlushes            uint64
	NumDrawCalls          uint64
	NumVertsSubmitted     uint64
	NumUncachedVertsDrawn uint64
}

// TexCoordBounds is the accumulated texel-space bounding box of a
// batch's texture coordinates, examined downstream to shrink texture
// uploads. Reset to the empty box at every flush.
type TexCoordBounds struct {
	MinU, MinV int
	MaxU, MaxV int
}

// GEDrawEngine batches primitive submissions and dispatches flushes.
type GEDrawEngine struct {
	mem   *GEMemory
	state *GEState // written by the command interpreter, read-only here
	sink  DrawSink // hardware-transform draw target

	shaders     ShaderManager
	transformer VertexTransformer
	watcher     FramebufferWatcher
	notifier    DrawNotifier
	config      GEConfig

	// Long-lived scratch arenas, reused across flushes.
	drawCalls [GE_MAX_DEFERRED_DRAW_CALLS]DeferredDrawCall
	decoded   []VertexData
	decIndex  []uint16
	indexGen  IndexGenerator

	numDrawCalls           int
	vertexCountInDrawCalls int
	decodeCounter          int
	decodedVerts           int

	prevPrim  int
	lastVType uint32
	reader    *VertexReader
	readers   map[uint32]*VertexReader

	dcid            uint32 // rolling content fingerprint of the batch
	vertexFullAlpha bool
	lastFullAlpha   bool
	texBounds       TexCoordBounds

	stats GEStats
}

// NewGEDrawEngine builds a draw engine over the given memory, register
// snapshot source and hardware sink. The transform stage defaults to
// through mode; SetShaderManager installs real shader selection.
func NewGEDrawEngine(mem *GEMemory, state *GEState, sink DrawSink) *GEDrawEngine {
	e := &GEDrawEngine{
		mem:         mem,
		state:       state,
		sink:        sink,
		transformer: ThroughTransform{},
		decoded:     make([]VertexData, GE_VERTEX_BUFFER_MAX),
		decIndex:    make([]uint16, GE_INDEX_BUFFER_MAX),
		readers:     map[uint32]*VertexReader{},
		prevPrim:    GE_PRIM_INVALID,
		lastVType:   0xFFFFFFFF,
	}
	e.indexGen.Setup(e.decIndex)
	e.resetAfterFlush()
	e.lastFullAlpha = true
	return e
}

// SetShaderManager installs the shader selection collaborator.
func (e *GEDrawEngine) SetShaderManager(s ShaderManager) { e.shaders = s }

// SetTransformer installs the software vertex transform stage.
func (e *GEDrawEngine) SetTransformer(t VertexTransformer) { e.transformer = t }

// SetFramebufferWatcher installs the dirty-buffer listener.
func (e *GEDrawEngine) SetFramebufferWatcher(w FramebufferWatcher) { e.watcher = w }

// SetDrawNotifier installs the flush-completion listener.
func (e *GEDrawEngine) SetDrawNotifier(n DrawNotifier) { e.notifier = n }

// SetConfig replaces the batching tunables.
func (e *GEDrawEngine) SetConfig(c GEConfig) { e.config = c }

// Stats returns a copy of the diagnostic counters.
func (e *GEDrawEngine) Stats() GEStats { return e.stats }

// BatchFingerprint returns the rolling content fingerprint of the
// current batch. Callers use it for change detection; it plays no part
// in correctness.
func (e *GEDrawEngine) BatchFingerprint() uint32 { return e.dcid }

// NumDeferredDrawCalls returns the current batch length.
func (e *GEDrawEngine) NumDeferredDrawCalls() int { return e.numDrawCalls }

// PendingVertexCount returns the total vertices accepted this batch.
func (e *GEDrawEngine) PendingVertexCount() int { return e.vertexCountInDrawCalls }

// DecodedVertexCount returns the decode cursor into the canonical
// vertex buffer.
func (e *GEDrawEngine) DecodedVertexCount() int { return e.decodedVerts }

// TexBounds returns the accumulated texture coordinate bounding box.
func (e *GEDrawEngine) TexBounds() TexCoordBounds { return e.texBounds }

// VertexFullAlpha reports the last flushed batch's full-alpha
// heuristic; downstream uses it to skip blending.
func (e *GEDrawEngine) VertexFullAlpha() bool { return e.lastFullAlpha }

// setupVertexReader selects the decoder for a vertex type, folding the
// UV generation mode into the cache key so distinct modes never share a
// decoder.
func (e *GEDrawEngine) setupVertexReader(vertType uint32) {
	vtypeID := VertexTypeID(vertType, e.state.UVGenMode)
	if vtypeID != e.lastVType {
		r, ok := e.readers[vtypeID]
		if !ok {
			r = NewVertexReader(vtypeID)
			e.readers[vtypeID] = r
		}
		e.reader = r
		e.lastVType = vtypeID
	}
}

// SubmitPrim accepts one primitive submission from the command
// interpreter and returns the number of vertex bytes consumed. It may
// synchronously flush the running batch first.
func (e *GEDrawEngine) SubmitPrim(vertAddr, indAddr uint32, prim, vertexCount int, vertType uint32) int {
	if !PrimCompatible(e.prevPrim, prim) ||
		e.numDrawCalls >= GE_MAX_DEFERRED_DRAW_CALLS ||
		e.vertexCountInDrawCalls+vertexCount > GE_VERTEX_BUFFER_MAX {
		e.Flush()
	}

	if prim == GE_PRIM_KEEP_PREVIOUS {
		if e.prevPrim != GE_PRIM_INVALID {
			prim = e.prevPrim
		} else {
			prim = GE_PRIM_POINTS
		}
	} else {
		e.prevPrim = prim
	}

	e.setupVertexReader(vertType)
	bytesRead := vertexCount * e.reader.VertexSize()

	// Primitives below their minimum vertex count are dropped without
	// joining the batch. Rectangles are exempt from the 3-vertex rule.
	if (vertexCount < 2 && prim > GE_PRIM_POINTS) ||
		(vertexCount < 3 && prim > GE_PRIM_LINE_STRIP && prim != GE_PRIM_RECTANGLES) {
		return bytesRead
	}

	dc := &e.drawCalls[e.numDrawCalls]
	dc.vertAddr = vertAddr
	dc.indAddr = indAddr
	dc.verts = e.mem.GetPointer(vertAddr)
	dc.inds = nil
	dc.reader = e.reader
	dc.vertType = vertType
	dc.indexType = (vertType & GE_VTYPE_IDX_MASK) >> GE_VTYPE_IDX_SHIFT
	dc.prim = prim
	dc.vertexCount = vertexCount

	if indAddr != 0 && dc.indexType != 0 {
		dc.inds = e.mem.GetPointer(indAddr)
	}
	if dc.inds != nil {
		dc.indexLowerBound, dc.indexUpperBound = GetIndexBounds(dc.inds, vertexCount, vertType)
	} else {
		dc.indexType = 0
		dc.indexLowerBound = 0
		dc.indexUpperBound = vertexCount - 1
	}

	// Mix the call's identity into the batch fingerprint. Order
	// sensitive on purpose: the same calls in a different order are a
	// different batch.
	h := e.dcid
	h ^= vertAddr
	h = bits.RotateLeft32(h, 13)
	h ^= indAddr
	h = bits.RotateLeft32(h, 13)
	h ^= vertType
	h = bits.RotateLeft32(h, 13)
	h ^= uint32(vertexCount)
	h = bits.RotateLeft32(h, 13)
	h ^= uint32(prim)
	e.dcid = h

	e.numDrawCalls++
	e.vertexCountInDrawCalls += vertexCount

	// Software skinning reads weights at submit time, before a later
	// call can overwrite the shared buffer.
	if e.config.SoftwareSkinning && e.reader.HasWeights() {
		e.decodeVertsStep()
		e.decodeCounter++
	}

	if prim == GE_PRIM_RECTANGLES && e.state.TextureEnable && e.state.TextureAliasesTarget() {
		// Rendering to a surface while sampling it as a texture is
		// undefined without a flush boundary in between.
		if !e.config.DisableSlowFramebufEffects {
			e.Flush()
		}
	}

	return bytesRead
}

// DecodeVerts decodes every not-yet-decoded deferred call. If no
// consistent primitive kind could be deduced from the accumulated
// stream the batch downgrades to zero-length points; a frame must
// always complete.
func (e *GEDrawEngine) DecodeVerts() {
	for ; e.decodeCounter < e.numDrawCalls; e.decodeCounter++ {
		e.decodeVertsStep()
	}
	if e.indexGen.Prim() < 0 {
		geLog().Error("failed to deduce batch primitive, forcing empty points", "drawCalls", e.numDrawCalls)
		e.indexGen.AddPrim(GE_PRIM_POINTS, 0)
	}
}

// decodeVertsStep decodes the deferred call at the decode cursor. For
// indexed calls it greedily merges the index ranges of consecutive
// calls sharing the same vertex buffer, decodes the merged vertex range
// once, and skips the cursor past the merged run.
func (e *GEDrawEngine) decodeVertsStep() {
	i := e.decodeCounter
	dc := &e.drawCalls[i]

	e.indexGen.SetIndex(e.decodedVerts)
	lowerBound, upperBound := dc.indexLowerBound, dc.indexUpperBound

	if dc.indexType == 0 {
		dc.reader.DecodeRange(e.decoded[e.decodedVerts:], dc.verts, lowerBound, upperBound)
		e.growTexBounds(e.decodedVerts, upperBound-lowerBound+1)
		e.decodedVerts += upperBound - lowerBound + 1
		e.indexGen.AddPrim(dc.prim, dc.vertexCount)
		return
	}

	// Games commonly issue long runs of indexed calls with differing
	// index pointers over one base vertex pointer. Widen the decode
	// range over the whole run so the shared vertices decode once and
	// the index stream renumbers across call boundaries.
	lastMatch := i
	for j := i + 1; j < e.numDrawCalls; j++ {
		if e.drawCalls[j].vertAddr != dc.vertAddr {
			break
		}
		if e.drawCalls[j].indexLowerBound < lowerBound {
			lowerBound = e.drawCalls[j].indexLowerBound
		}
		if e.drawCalls[j].indexUpperBound > upperBound {
			upperBound = e.drawCalls[j].indexUpperBound
		}
		lastMatch = j
	}

	for j := i; j <= lastMatch; j++ {
		c := &e.drawCalls[j]
		e.indexGen.TranslatePrim(c.prim, c.vertexCount, indexGetter(c), lowerBound)
	}

	vertexCount := upperBound - lowerBound + 1

	// Some titles send bogus index data large enough to overrun the
	// decoded-vertex arena. Dropping the range loses that geometry but
	// keeps the machine running.
	if e.decodedVerts+vertexCount > GE_VERTEX_BUFFER_MAX {
		geLog().Warn("dropping merged vertex range, decode arena full",
			"range", vertexCount, "decoded", e.decodedVerts)
		return
	}

	dc.reader.DecodeRange(e.decoded[e.decodedVerts:], dc.verts, lowerBound, upperBound)
	e.growTexBounds(e.decodedVerts, vertexCount)
	e.decodedVerts += vertexCount
	e.indexGen.Advance(vertexCount)
	e.decodeCounter = lastMatch
}

// indexGetter returns an accessor over a call's raw index buffer in its
// native width.
func indexGetter(dc *DeferredDrawCall) func(int) int {
	if dc.indexType == GE_VTYPE_IDX_16BIT>>GE_VTYPE_IDX_SHIFT {
		return func(k int) int {
			off := k * 2
			if off+2 > len(dc.inds) {
				return 0
			}
			return int(dc.inds[off]) | int(dc.inds[off+1])<<8
		}
	}
	return func(k int) int {
		if k >= len(dc.inds) {
			return 0
		}
		return int(dc.inds[k])
	}
}

// growTexBounds folds count decoded vertices starting at first into the
// batch's texel-space bounding box.
func (e *GEDrawEngine) growTexBounds(first, count int) {
	for i := first; i < first+count && i < len(e.decoded); i++ {
		u, v := int(e.decoded[i].U), int(e.decoded[i].V)
		if u < e.texBounds.MinU {
			e.texBounds.MinU = u
		}
		if u > e.texBounds.MaxU {
			e.texBounds.MaxU = u
		}
		if v < e.texBounds.MinV {
			e.texBounds.MinV = v
		}
		if v > e.texBounds.MaxV {
			e.texBounds.MaxV = v
		}
	}
}

// useHWTransform asks the shader collaborator whether the selected
// vertex shader transforms in hardware. Without a shader manager the
// engine falls back to a fixed rule: through-mode and clear-mode draws
// take the software path.
func (e *GEDrawEngine) useHWTransform(prim int) bool {
	if e.shaders != nil {
		return e.shaders.GetShaders(prim, e.lastVType).UseHWTransform()
	}
	return e.lastVType&GE_VTYPE_THROUGH == 0 && !e.state.ClearMode
}

// updateFullAlpha folds this batch's alpha sources into the running
// full-alpha heuristic: a per-vertex color channel, the material alpha,
// and when lighting runs, the ambient alpha.
func (e *GEDrawEngine) updateFullAlpha(state *GEState) {
	hasColor := e.lastVType&GE_VTYPE_COL_MASK != GE_VTYPE_COL_NONE
	if state.ThroughMode {
		e.vertexFullAlpha = e.vertexFullAlpha &&
			(hasColor || state.MaterialAmbientAlpha == 255)
	} else {
		e.vertexFullAlpha = e.vertexFullAlpha &&
			((hasColor && state.MaterialUpdate&1 != 0) || state.MaterialAmbientAlpha == 255) &&
			(!state.LightingEnable || state.AmbientAlpha == 255)
	}
}

// Flush decodes the accumulated batch and issues it as one draw or
// clear. A flush with nothing pending is a no-op; once started it
// always runs to completion and resets all batch state.
func (e *GEDrawEngine) Flush() {
	if e.numDrawCalls == 0 {
		return
	}
	e.stats.NumFlushes++

	// One consistent register view for the whole flush.
	snapshot := *e.state

	prim := e.prevPrim

	if e.useHWTransform(prim) {
		e.DecodeVerts()
		e.stats.NumUncachedVertsDrawn += uint64(e.indexGen.VertexCount())

		useElements := !e.indexGen.SeenOnlyPurePrims()
		vertexCount := e.indexGen.VertexCount()
		if !useElements && e.indexGen.PureCount() != 0 {
			vertexCount = e.indexGen.PureCount()
		}
		prim = e.indexGen.Prim()
		e.updateFullAlpha(&snapshot)

		geLog().Debug("flush hw", "prim", prim, "verts", vertexCount, "indexed", useElements)

		e.sink.BindVertexBuffer(e.decoded[:e.decodedVerts])
		if useElements {
			e.sink.BindIndexBuffer(e.indexGen.Indices())
			e.sink.DrawIndexed(prim, vertexCount)
		} else {
			e.sink.Draw(prim, vertexCount)
		}
	} else {
		e.DecodeVerts()
		e.updateFullAlpha(&snapshot)
		e.stats.NumUncachedVertsDrawn += uint64(e.indexGen.VertexCount())

		prim = e.indexGen.Prim()
		// The accumulator already expanded strips into lists; label the
		// stream accordingly for the software path.
		if prim == GE_PRIM_TRIANGLE_STRIP {
			prim = GE_PRIM_TRIANGLES
		}

		geLog().Debug("flush sw", "prim", prim, "verts", e.indexGen.VertexCount())

		result := e.transformer.Transform(prim, e.decoded[:e.decodedVerts],
			e.indexGen.VertexCount(), e.indexGen.Indices(), &snapshot)

		swSink := NewSoftwareSink(e.mem, &snapshot)
		switch result.Action {
		case TRANSFORM_DRAW_PRIMITIVES:
			swSink.BindVertexBuffer(result.DrawBuffer)
			if result.DrawIndexed {
				swSink.BindIndexBuffer(e.indexGen.Indices())
				swSink.DrawIndexed(result.Prim, result.NumVerts)
			} else {
				swSink.Draw(result.Prim, result.NumVerts)
			}
		case TRANSFORM_CLEAR:
			mask := snapshot.ClearAttachMask()
			rect := ClearRect{X: 0, Y: 0, Width: snapshot.RTWidth, Height: snapshot.RTHeight}
			swSink.ClearAttachments(mask, result.Color, result.Depth, result.Stencil, rect)
			if e.watcher != nil {
				if mask&(GE_ATTACH_COLOR|GE_ATTACH_ALPHA) != 0 {
					e.watcher.SetColorUpdated()
				}
				if mask&GE_ATTACH_DEPTH != 0 {
					e.watcher.SetDepthUpdated()
				}
			}
		}
	}

	e.stats.NumDrawCalls += uint64(e.numDrawCalls)
	e.stats.NumVertsSubmitted += uint64(e.vertexCountInDrawCalls)
	e.lastFullAlpha = e.vertexFullAlpha

	e.resetAfterFlush()

	if e.watcher != nil {
		e.watcher.SetColorUpdated()
	}
	if e.notifier != nil {
		e.notifier.GPUNotifyDraw()
	}
}

// resetAfterFlush restores all batch state to its initial values. No
// batch state survives a flush boundary.
func (e *GEDrawEngine) resetAfterFlush() {
	e.indexGen.Reset()
	e.decodedVerts = 0
	e.numDrawCalls = 0
	e.vertexCountInDrawCalls = 0
	e.decodeCounter = 0
	e.dcid = 0
	e.prevPrim = GE_PRIM_INVALID
	e.vertexFullAlpha = true
	e.texBounds = TexCoordBounds{MinU: 512, MinV: 512, MaxU: 0, MaxV: 0}
}
