// ge_draw_engine_test.go - Draw call batching and flush tests

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

package main

import "testing"

// Hardware-transform vertex format used by the batching tests: 32-bit
// color plus float position, 16 bytes.
const testVType = GE_VTYPE_COL_8888 | GE_VTYPE_POS_FLOAT

type engineFixture struct {
	mem    *GEMemory
	state  GEState
	sink   *RecordingSink
	engine *GEDrawEngine
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		mem:  NewGEMemory(),
		sink: &RecordingSink{},
	}
	f.state = GEState{
		ShadeModel:     GE_SHADE_GOURAUD,
		FrameBufAddr:   GE_VRAM_BASE,
		FrameBufStride: GE_DEFAULT_RT_WIDTH,
		DepthBufAddr:   GE_VRAM_BASE + 512*1024,
		DepthBufStride: GE_DEFAULT_RT_WIDTH,
		RTWidth:        GE_DEFAULT_RT_WIDTH,
		RTHeight:       GE_DEFAULT_RT_HEIGHT,
		ScissorX2:      GE_DEFAULT_RT_WIDTH - 1,
		ScissorY2:      GE_DEFAULT_RT_HEIGHT - 1,
	}
	f.engine = NewGEDrawEngine(f.mem, &f.state, f.sink)
	return f
}

type countingWatcher struct {
	color, depth int
}

func (w *countingWatcher) SetColorUpdated() { w.color++ }
func (w *countingWatcher) SetDepthUpdated() { w.depth++ }

type countingNotifier struct {
	draws int
}

func (n *countingNotifier) GPUNotifyDraw() { n.draws++ }

func TestGE_DrawEngine_DefersSubmissions(t *testing.T) {
	f := newEngineFixture()
	n := f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	if n != 3*16 {
		t.Errorf("bytes read: got %d, want 48", n)
	}
	if f.engine.NumDeferredDrawCalls() != 1 {
		t.Errorf("deferred calls: got %d, want 1", f.engine.NumDeferredDrawCalls())
	}
	if f.engine.PendingVertexCount() != 3 {
		t.Errorf("pending vertices: got %d, want 3", f.engine.PendingVertexCount())
	}
	if len(f.sink.Calls) != 0 {
		t.Error("submission must not reach the sink before a flush")
	}
}

func TestGE_DrawEngine_EmptyFlushIsNoOp(t *testing.T) {
	f := newEngineFixture()
	f.engine.Flush()
	f.engine.Flush()
	if f.engine.Stats().NumFlushes != 0 {
		t.Error("a flush with nothing pending must not count")
	}
	if len(f.sink.Calls) != 0 {
		t.Error("a flush with nothing pending must not touch the sink")
	}
}

func TestGE_DrawEngine_FlushIsIdempotent(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()
	f.engine.Flush()

	if got := f.engine.Stats().NumFlushes; got != 1 {
		t.Errorf("flush count: got %d, want 1", got)
	}
	if len(f.sink.Calls) != 1 {
		t.Fatalf("sink calls: got %d, want 1", len(f.sink.Calls))
	}
	if f.sink.Calls[0].Op != "draw" || f.sink.Calls[0].Prim != GE_PRIM_TRIANGLES || f.sink.Calls[0].Count != 3 {
		t.Errorf("recorded draw: %+v", f.sink.Calls[0])
	}
}

func TestGE_DrawEngine_FlushResetsBatchState(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	if f.engine.BatchFingerprint() == 0 {
		t.Error("a pending batch must have a nonzero fingerprint")
	}
	f.engine.Flush()

	if f.engine.NumDeferredDrawCalls() != 0 ||
		f.engine.PendingVertexCount() != 0 ||
		f.engine.DecodedVertexCount() != 0 {
		t.Error("flush must reset all batch counters")
	}
	if f.engine.BatchFingerprint() != 0 {
		t.Error("flush must reset the fingerprint")
	}
	tb := f.engine.TexBounds()
	if tb.MinU != 512 || tb.MaxU != 0 {
		t.Errorf("flush must reset tex bounds to the empty box, got %+v", tb)
	}
}

func TestGE_DrawEngine_CapacityFlush_CallCount(t *testing.T) {
	f := newEngineFixture()
	for i := 0; i < GE_MAX_DEFERRED_DRAW_CALLS; i++ {
		f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	}
	if f.engine.NumDeferredDrawCalls() != GE_MAX_DEFERRED_DRAW_CALLS {
		t.Fatalf("deferred calls: got %d, want full", f.engine.NumDeferredDrawCalls())
	}
	if f.engine.Stats().NumFlushes != 0 {
		t.Fatal("filling the list exactly must not flush yet")
	}

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	if f.engine.Stats().NumFlushes != 1 {
		t.Error("exceeding the call capacity must flush")
	}
	if f.engine.NumDeferredDrawCalls() != 1 {
		t.Errorf("the overflowing call starts a new batch, got %d deferred", f.engine.NumDeferredDrawCalls())
	}
}

func TestGE_DrawEngine_CapacityFlush_VertexLimit(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 39999, testVType)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 30000, testVType)

	if f.engine.Stats().NumFlushes != 1 {
		t.Error("exceeding the vertex capacity must flush")
	}
	if f.engine.PendingVertexCount() != 30000 {
		t.Errorf("pending after overflow: got %d, want 30000", f.engine.PendingVertexCount())
	}
}

func TestGE_DrawEngine_PrimIncompatibilityFlushes(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_LINES, 2, testVType)

	if f.engine.Stats().NumFlushes != 1 {
		t.Fatal("an incompatible primitive kind must flush the batch")
	}
	if f.sink.Calls[0].Prim != GE_PRIM_TRIANGLES {
		t.Errorf("flushed prim: got %d, want triangles", f.sink.Calls[0].Prim)
	}
	if f.engine.NumDeferredDrawCalls() != 1 {
		t.Error("the line call starts the next batch")
	}
}

func TestGE_DrawEngine_StripsMergeWithTriangles(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLE_STRIP, 4, testVType)

	if f.engine.Stats().NumFlushes != 0 {
		t.Error("strips and triangle lists share a list kind and must merge")
	}
	f.engine.Flush()
	// Strip expansion forces indexed drawing: 3 + 2*3 indices.
	call := f.sink.Calls[0]
	if call.Op != "drawIndexed" || call.Count != 9 {
		t.Errorf("merged draw: %+v", call)
	}
}

func TestGE_DrawEngine_KeepPreviousMerges(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_KEEP_PREVIOUS, 3, testVType)

	if f.engine.Stats().NumFlushes != 0 {
		t.Fatal("keep-previous must merge with the running batch")
	}
	f.engine.Flush()
	if call := f.sink.Calls[0]; call.Prim != GE_PRIM_TRIANGLES || call.Count != 6 {
		t.Errorf("flushed draw: %+v", call)
	}
}

func TestGE_DrawEngine_KeepPreviousWithoutHistory(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_KEEP_PREVIOUS, 3, testVType)
	f.engine.Flush()
	if call := f.sink.Calls[0]; call.Prim != GE_PRIM_POINTS {
		t.Errorf("keep-previous with no history degrades to points, got %+v", call)
	}
}

func TestGE_DrawEngine_MinVertexCountRejected(t *testing.T) {
	f := newEngineFixture()

	if n := f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 2, testVType); n != 2*16 {
		t.Errorf("rejected call still consumes its bytes, got %d", n)
	}
	if f.engine.NumDeferredDrawCalls() != 0 {
		t.Error("a 2-vertex triangle call must not join the batch")
	}

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_LINES, 1, testVType)
	if f.engine.NumDeferredDrawCalls() != 0 {
		t.Error("a 1-vertex line call must not join the batch")
	}

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_RECTANGLES, 2, testVType)
	if f.engine.NumDeferredDrawCalls() != 1 {
		t.Error("rectangles are exempt from the 3-vertex rule")
	}
}

func TestGE_DrawEngine_IndexedMergeDecodesSharedBufferOnce(t *testing.T) {
	f := newEngineFixture()

	indsA := GE_RAM_BASE + uint32(0x1000)
	indsB := GE_RAM_BASE + uint32(0x2000)
	copy(f.mem.GetPointer(indsA), []byte{0, 1, 2})
	copy(f.mem.GetPointer(indsB), []byte{1, 2, 3})

	vtype := uint32(testVType | GE_VTYPE_IDX_8BIT)
	f.engine.SubmitPrim(GE_RAM_BASE, indsA, GE_PRIM_TRIANGLES, 3, vtype)
	f.engine.SubmitPrim(GE_RAM_BASE, indsB, GE_PRIM_TRIANGLES, 3, vtype)
	f.engine.Flush()

	if len(f.sink.Verts) != 4 {
		t.Errorf("shared vertex buffer must decode once: got %d decoded, want 4", len(f.sink.Verts))
	}
	want := []uint16{0, 1, 2, 1, 2, 3}
	if len(f.sink.Inds) != len(want) {
		t.Fatalf("index stream length: got %d, want %d", len(f.sink.Inds), len(want))
	}
	for i := range want {
		if f.sink.Inds[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, f.sink.Inds[i], want[i])
		}
	}
	if call := f.sink.Calls[0]; call.Op != "drawIndexed" || call.Count != 6 {
		t.Errorf("merged indexed draw: %+v", call)
	}
}

func TestGE_DrawEngine_RectTextureAliasForcesFlush(t *testing.T) {
	f := newEngineFixture()
	f.state.TextureEnable = true
	f.state.TexFormat = GE_TFMT_8888
	f.state.TexAddr[0] = GE_VRAM_BASE // overlaps the render target
	f.state.TexSize[0] = 6 | 6<<8

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_RECTANGLES, 2, testVType)
	if f.engine.Stats().NumFlushes != 1 {
		t.Error("a rectangle sampling its own target must flush")
	}
	if f.engine.NumDeferredDrawCalls() != 0 {
		t.Error("the forced flush drains the batch including the rectangle")
	}
}

func TestGE_DrawEngine_RectAliasFlushDisabled(t *testing.T) {
	f := newEngineFixture()
	f.state.TextureEnable = true
	f.state.TexFormat = GE_TFMT_8888
	f.state.TexAddr[0] = GE_VRAM_BASE
	f.state.TexSize[0] = 6 | 6<<8
	f.engine.SetConfig(GEConfig{DisableSlowFramebufEffects: true})

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_RECTANGLES, 2, testVType)
	if f.engine.Stats().NumFlushes != 0 {
		t.Error("the aliasing flush is skipped when slow effects are disabled")
	}
}

func TestGE_DrawEngine_FingerprintIsOrderSensitive(t *testing.T) {
	a := newEngineFixture()
	b := newEngineFixture()

	a.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	a.engine.SubmitPrim(GE_RAM_BASE+0x100, 0, GE_PRIM_TRIANGLES, 3, testVType)
	b.engine.SubmitPrim(GE_RAM_BASE+0x100, 0, GE_PRIM_TRIANGLES, 3, testVType)
	b.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)

	if a.engine.BatchFingerprint() == b.engine.BatchFingerprint() {
		t.Error("the same calls in a different order must fingerprint differently")
	}

	c := newEngineFixture()
	c.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	c.engine.SubmitPrim(GE_RAM_BASE+0x100, 0, GE_PRIM_TRIANGLES, 3, testVType)
	if a.engine.BatchFingerprint() != c.engine.BatchFingerprint() {
		t.Error("identical submission sequences must fingerprint identically")
	}
}

func TestGE_DrawEngine_SoftwareSkinningDecodesEagerly(t *testing.T) {
	f := newEngineFixture()
	f.engine.SetConfig(GEConfig{SoftwareSkinning: true})

	weighted := uint32(1<<GE_VTYPE_WEIGHT_SHIFT | GE_VTYPE_POS_FLOAT)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, weighted)
	if f.engine.DecodedVertexCount() != 3 {
		t.Errorf("weighted vertices decode at submit time, got %d decoded", f.engine.DecodedVertexCount())
	}
}

func TestGE_DrawEngine_FlushNotifiesCollaborators(t *testing.T) {
	f := newEngineFixture()
	watcher := &countingWatcher{}
	notifier := &countingNotifier{}
	f.engine.SetFramebufferWatcher(watcher)
	f.engine.SetDrawNotifier(notifier)

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()

	if watcher.color == 0 {
		t.Error("a flush must mark the color buffer dirty")
	}
	if notifier.draws != 1 {
		t.Errorf("draw notifications: got %d, want 1", notifier.draws)
	}
}

func TestGE_DrawEngine_FullAlphaHeuristic(t *testing.T) {
	// Vertex color present but the material update bit is off and the
	// material alpha is not opaque: full alpha cannot be assumed.
	f := newEngineFixture()
	f.state.MaterialAmbientAlpha = 0x80
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()
	if f.engine.VertexFullAlpha() {
		t.Error("opaque vertices cannot be assumed without the material update bit")
	}

	f.state.MaterialUpdate = 1
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()
	if !f.engine.VertexFullAlpha() {
		t.Error("vertex color with the material update bit keeps full alpha")
	}

	f.state.LightingEnable = true
	f.state.AmbientAlpha = 0x40
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()
	if f.engine.VertexFullAlpha() {
		t.Error("translucent ambient light defeats the full alpha assumption")
	}
}

func TestGE_DrawEngine_SoftwareClearWritesFramebuffer(t *testing.T) {
	f := newEngineFixture()
	f.state.ThroughMode = true
	f.state.ClearMode = true
	f.state.ClearBits = GE_CLEAR_COLOR | GE_CLEAR_ALPHA | GE_CLEAR_DEPTH

	vbuf := f.mem.GetPointer(GE_RAM_BASE)
	off := putDemoVertex(vbuf, 0, 0, 0, 0xFF336699, 0, 0, 0xFFFF)
	putDemoVertex(vbuf, off, 0, 0, 0xFF336699, GE_DEFAULT_RT_WIDTH, GE_DEFAULT_RT_HEIGHT, 0xFFFF)

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_RECTANGLES, 2, demoVType)
	f.engine.Flush()

	surface := NewDrawSurface(f.mem, &f.state)
	if got := surface.PixelColor(100, 100); got != 0xFF336699 {
		t.Errorf("cleared pixel: got %#x, want the clear color", got)
	}
	if got := surface.PixelDepth(100, 100); got != 0xFFFF {
		t.Errorf("cleared depth: got %#x, want full depth", got)
	}
	if len(f.sink.Calls) != 0 {
		t.Error("a software clear must not reach the hardware sink")
	}
}

func TestGE_DrawEngine_SoftwareDrawRasterizes(t *testing.T) {
	f := newEngineFixture()
	f.state.ThroughMode = true

	vbuf := f.mem.GetPointer(GE_RAM_BASE)
	off := putDemoVertex(vbuf, 0, 0, 0, 0xFF0000FF, 10, 10, 0x8000)
	off = putDemoVertex(vbuf, off, 0, 0, 0xFF0000FF, 60, 10, 0x8000)
	putDemoVertex(vbuf, off, 0, 0, 0xFF0000FF, 10, 60, 0x8000)

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, demoVType)
	f.engine.Flush()

	surface := NewDrawSurface(f.mem, &f.state)
	if got := surface.PixelColor(15, 15); got != 0xFF0000FF {
		t.Errorf("rasterized pixel: got %#x", got)
	}
	if got := surface.PixelColor(200, 200); got != 0 {
		t.Errorf("pixel outside the triangle must be untouched, got %#x", got)
	}
}

func TestGE_DrawEngine_SoftwareRectangleFills(t *testing.T) {
	f := newEngineFixture()
	f.state.ThroughMode = true

	vbuf := f.mem.GetPointer(GE_RAM_BASE)
	off := putDemoVertex(vbuf, 0, 0, 0, 0x11111111, 20, 20, 0x8000)
	putDemoVertex(vbuf, off, 0, 0, 0xFF123456, 60, 50, 0x8000)

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_RECTANGLES, 2, demoVType)
	f.engine.Flush()

	surface := NewDrawSurface(f.mem, &f.state)
	if got := surface.PixelColor(30, 30); got != 0xFF123456 {
		t.Errorf("rectangle interior takes the second vertex's color, got %#x", got)
	}
	if got := surface.PixelColor(70, 30); got != 0 {
		t.Errorf("pixel outside the rectangle must be untouched, got %#x", got)
	}
}

func TestGE_DrawEngine_OversizedIndexRangeDropped(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)

	// A 16-bit index of 0xFFFF widens the merged decode range to the
	// whole index space, which no longer fits the decode arena behind
	// the three vertices already decoded.
	indAddr := GE_RAM_BASE + uint32(0x8000)
	copy(f.mem.GetPointer(indAddr), []byte{0, 0, 1, 0, 0xFF, 0xFF})
	f.engine.SubmitPrim(GE_RAM_BASE, indAddr, GE_PRIM_TRIANGLES, 3, uint32(testVType|GE_VTYPE_IDX_16BIT))
	f.engine.Flush()

	if len(f.sink.Verts) != 3 {
		t.Errorf("only the first call's vertices decode: got %d, want 3", len(f.sink.Verts))
	}
	// The index stream keeps the dropped call's translated entries; its
	// geometry is lost but the flush completes.
	call := f.sink.Calls[0]
	if call.Op != "drawIndexed" || call.Count != 6 {
		t.Errorf("flushed draw: %+v", call)
	}
	if len(f.sink.Inds) != 6 || f.sink.Inds[3] != 3 || f.sink.Inds[4] != 4 {
		t.Errorf("dropped range leaves its indices in the stream, got %v", f.sink.Inds)
	}

	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.Flush()
	if got := f.engine.Stats().NumFlushes; got != 2 {
		t.Errorf("engine must keep running after the drop, got %d flushes", got)
	}
}

func TestGE_DrawEngine_DecodeWithoutPrimsForcesPoints(t *testing.T) {
	f := newEngineFixture()
	if f.engine.indexGen.Prim() != GE_PRIM_INVALID {
		t.Fatal("a fresh batch has no deduced primitive kind")
	}
	f.engine.DecodeVerts()
	if got := f.engine.indexGen.Prim(); got != GE_PRIM_POINTS {
		t.Errorf("an undeducible batch degrades to points, got prim %d", got)
	}
	if got := f.engine.indexGen.VertexCount(); got != 0 {
		t.Errorf("the forced points primitive is empty, got %d indices", got)
	}
}

func TestGE_DrawEngine_StatsAccumulate(t *testing.T) {
	f := newEngineFixture()
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 3, testVType)
	f.engine.SubmitPrim(GE_RAM_BASE, 0, GE_PRIM_TRIANGLES, 6, testVType)
	f.engine.Flush()

	s := f.engine.Stats()
	if s.NumFlushes != 1 || s.NumDrawCalls != 2 || s.NumVertsSubmitted != 9 {
		t.Errorf("stats: %+v", s)
	}
	if s.NumUncachedVertsDrawn != 9 {
		t.Errorf("uncached verts: got %d, want 9", s.NumUncachedVertsDrawn)
	}
}
