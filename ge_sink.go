// ge_sink.go - Host Draw Sink Interface and Software Sink

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
ge_sink.go - Host Draw Sink Interface and Software Sink

A flush ends in one bound-buffers-plus-draw (or clear-attachments)
sequence against a DrawSink. The Vulkan backend records the sequence
into a command buffer; the software sink rasterizes it immediately into
the shared framebuffer; the recording sink captures it for tests and the
headless build.
*/

package main

// ClearRect is the target rectangle of a clear-attachments operation.
type ClearRect struct {
	X, Y          int
	Width, Height int
}

// DrawSink receives the draw or clear a flush produces.
type DrawSink interface {
	BindVertexBuffer(verts []VertexData)
	BindIndexBuffer(inds []uint16)
	Draw(prim, vertexCount int)
	DrawIndexed(prim, indexCount int)
	ClearAttachments(mask uint8, color uint32, depth float32, stencil uint8, rect ClearRect)
}

// FramebufferWatcher is notified when a flush dirties the color or depth
// buffer, so downstream caching (texture-from-framebuffer, display) can
// invalidate.
type FramebufferWatcher interface {
	SetColorUpdated()
	SetDepthUpdated()
}

// DrawNotifier is told when a flush completes. The emulator core uses
// this for timing and frame pacing.
type DrawNotifier interface {
	GPUNotifyDraw()
}

// SoftwareSink rasterizes draws per-pixel into the shared buffers. It is
// rebuilt at every software flush around that flush's state snapshot.
type SoftwareSink struct {
	rasterizer *Rasterizer
	surface    *DrawSurface
	verts      []VertexData
	inds       []uint16
}

// NewSoftwareSink builds a software sink over one snapshot.
func NewSoftwareSink(mem *GEMemory, state *GEState) *SoftwareSink {
	surface := NewDrawSurface(mem, state)
	sampler := NewPixelSampler(mem, state)
	return &SoftwareSink{
		rasterizer: NewRasterizer(surface, sampler, state),
		surface:    surface,
	}
}

// BindVertexBuffer supplies the screen-space vertices of the next draw.
func (s *SoftwareSink) BindVertexBuffer(verts []VertexData) { s.verts = verts }

// BindIndexBuffer supplies the index stream of the next indexed draw.
func (s *SoftwareSink) BindIndexBuffer(inds []uint16) { s.inds = inds }

// Draw rasterizes vertexCount sequential vertices as a triangle list.
// The flush path has already normalized strips and fans to lists; point
// and line primitives have no software fallback and are dropped with a
// log entry.
func (s *SoftwareSink) Draw(prim, vertexCount int) {
	if prim != GE_PRIM_TRIANGLES {
		geLog().Warn("software sink: unsupported primitive", "prim", prim)
		return
	}
	if vertexCount > len(s.verts) {
		vertexCount = len(s.verts)
	}
	for i := 0; i+2 < vertexCount; i += 3 {
		s.rasterizer.DrawTriangle(s.verts[i], s.verts[i+1], s.verts[i+2])
	}
}

// DrawIndexed rasterizes indexCount indices as a triangle list.
func (s *SoftwareSink) DrawIndexed(prim, indexCount int) {
	if prim != GE_PRIM_TRIANGLES {
		geLog().Warn("software sink: unsupported indexed primitive", "prim", prim)
		return
	}
	if indexCount > len(s.inds) {
		indexCount = len(s.inds)
	}
	for i := 0; i+2 < indexCount; i += 3 {
		i0, i1, i2 := int(s.inds[i]), int(s.inds[i+1]), int(s.inds[i+2])
		if i0 >= len(s.verts) || i1 >= len(s.verts) || i2 >= len(s.verts) {
			geLog().Warn("software sink: index out of range", "index", i)
			continue
		}
		s.rasterizer.DrawTriangle(s.verts[i0], s.verts[i1], s.verts[i2])
	}
}

// ClearAttachments fills the masked attachments over rect. The color and
// alpha planes clear independently, matching the hardware's clear-mode
// mask bits.
func (s *SoftwareSink) ClearAttachments(mask uint8, color uint32, depth float32, stencil uint8, rect ClearRect) {
	depthVal := clampDepth(depth * 65535)
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			switch {
			case mask&GE_ATTACH_COLOR != 0 && mask&GE_ATTACH_ALPHA != 0:
				s.surface.SetPixelColor(x, y, color)
			case mask&GE_ATTACH_COLOR != 0:
				old := s.surface.PixelColor(x, y)
				s.surface.SetPixelColor(x, y, color&0x00FFFFFF|old&0xFF000000)
			case mask&GE_ATTACH_ALPHA != 0:
				old := s.surface.PixelColor(x, y)
				s.surface.SetPixelColor(x, y, old&0x00FFFFFF|color&0xFF000000)
			}
			if mask&GE_ATTACH_DEPTH != 0 {
				s.surface.SetPixelDepth(x, y, depthVal)
			}
		}
	}
}

// RecordedCall is one sink invocation captured by RecordingSink.
type RecordedCall struct {
	Op    string // "draw", "drawIndexed", "clear"
	Prim  int
	Count int
	Mask  uint8
	Color uint32
	Depth float32
	Rect  ClearRect
}

// RecordingSink captures the draw sequence instead of executing it. The
// headless build and the test suite inspect the recording.
type RecordingSink struct {
	Verts []VertexData
	Inds  []uint16
	Calls []RecordedCall
}

func (r *RecordingSink) BindVertexBuffer(verts []VertexData) { r.Verts = verts }
func (r *RecordingSink) BindIndexBuffer(inds []uint16)       { r.Inds = inds }

func (r *RecordingSink) Draw(prim, vertexCount int) {
	r.Calls = append(r.Calls, RecordedCall{Op: "draw", Prim: prim, Count: vertexCount})
}

func (r *RecordingSink) DrawIndexed(prim, indexCount int) {
	r.Calls = append(r.Calls, RecordedCall{Op: "drawIndexed", Prim: prim, Count: indexCount})
}

func (r *RecordingSink) ClearAttachments(mask uint8, color uint32, depth float32, stencil uint8, rect ClearRect) {
	r.Calls = append(r.Calls, RecordedCall{Op: "clear", Mask: mask, Color: color, Depth: depth, Rect: rect})
}
