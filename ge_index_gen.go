// ge_index_gen.go - GE Index Stream Accumulator

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
ge_index_gen.go - GE Index Stream Accumulator

Collects the primitives of one accumulation cycle into a single index
stream over the shared decoded-vertex numbering. Strips and fans are
expanded into explicit lists here, so any mix of compatible primitive
kinds ends up drawable with one indexed draw. The accumulator also
remembers which kinds it has seen: a batch built purely from one list
kind can skip indexed drawing entirely and use the raw vertex order.
*/

package main

// indexedKind maps each primitive kind to the list kind it expands into.
// Two submissions are batch-compatible when they map to the same list
// kind.
var indexedKind = [7]int{
	GE_PRIM_POINTS,    // points
	GE_PRIM_LINES,     // lines
	GE_PRIM_LINES,     // line strip
	GE_PRIM_TRIANGLES, // triangles
	GE_PRIM_TRIANGLES, // triangle strip
	GE_PRIM_TRIANGLES, // triangle fan
	GE_PRIM_RECTANGLES,
}

// PrimCompatible reports whether a new primitive kind can be merged into
// a batch whose previous kind is prevPrim.
func PrimCompatible(prevPrim, newPrim int) bool {
	if prevPrim == GE_PRIM_INVALID || newPrim == GE_PRIM_KEEP_PREVIOUS {
		return true
	}
	return indexedKind[prevPrim] == indexedKind[newPrim]
}

// IndexGenerator accumulates translated indices for one batch. The
// backing buffer is a long-lived arena owned by the draw engine.
type IndexGenerator struct {
	buf   []uint16
	count int // indices emitted
	index int // base vertex for the next primitive
	prim  int // deduced list kind, GE_PRIM_INVALID until first primitive

	seenPrims  uint8
	translated bool // an indexed stream was folded in
	pureCount  int
}

// Setup points the generator at its output arena.
func (g *IndexGenerator) Setup(buf []uint16) {
	g.buf = buf
	g.Reset()
}

// Reset clears all accumulated state for the next batch.
func (g *IndexGenerator) Reset() {
	g.count = 0
	g.index = 0
	g.prim = GE_PRIM_INVALID
	g.seenPrims = 0
	g.translated = false
	g.pureCount = 0
}

// SetIndex positions the base vertex for subsequently added primitives.
func (g *IndexGenerator) SetIndex(index int) { g.index = index }

// Prim returns the deduced list kind of the accumulated stream.
func (g *IndexGenerator) Prim() int { return g.prim }

// VertexCount returns the number of indices emitted so far.
func (g *IndexGenerator) VertexCount() int { return g.count }

// MaxIndex returns the number of decoded vertices the index stream can
// reference: an indexed draw covers decoded vertices [0, MaxIndex).
func (g *IndexGenerator) MaxIndex() int { return g.index }

// PureCount returns the vertex count usable for a non-indexed draw, or
// zero when the stream required index expansion.
func (g *IndexGenerator) PureCount() int { return g.pureCount }

// SeenOnlyPurePrims reports whether every accumulated primitive was a
// plain list of a single kind, added without index translation. Such a
// stream can be drawn non-indexed.
func (g *IndexGenerator) SeenOnlyPurePrims() bool {
	if g.translated {
		return false
	}
	return g.seenPrims == 1<<GE_PRIM_POINTS ||
		g.seenPrims == 1<<GE_PRIM_LINES ||
		g.seenPrims == 1<<GE_PRIM_TRIANGLES ||
		g.seenPrims == 1<<GE_PRIM_RECTANGLES
}

// Advance moves the base vertex past vertexCount decoded vertices that
// were consumed by translated primitives.
func (g *IndexGenerator) Advance(vertexCount int) {
	g.index += vertexCount
}

// AddPrim registers one non-indexed primitive of vertexCount sequential
// vertices starting at the current base.
func (g *IndexGenerator) AddPrim(prim, vertexCount int) {
	switch prim {
	case GE_PRIM_POINTS:
		g.addPoints(vertexCount)
	case GE_PRIM_LINES:
		g.addList(GE_PRIM_LINES, vertexCount)
	case GE_PRIM_LINE_STRIP:
		g.addLineStrip(vertexCount)
	case GE_PRIM_TRIANGLES:
		g.addList(GE_PRIM_TRIANGLES, vertexCount)
	case GE_PRIM_TRIANGLE_STRIP:
		g.addStrip(vertexCount)
	case GE_PRIM_TRIANGLE_FAN:
		g.addFan(vertexCount)
	case GE_PRIM_RECTANGLES:
		g.addList(GE_PRIM_RECTANGLES, vertexCount)
	}
	g.index += vertexCount
}

func (g *IndexGenerator) emit(idx int) {
	if g.count < len(g.buf) {
		g.buf[g.count] = uint16(idx)
		g.count++
	}
}

func (g *IndexGenerator) addPoints(count int) {
	for i := 0; i < count; i++ {
		g.emit(g.index + i)
	}
	g.prim = GE_PRIM_POINTS
	g.seenPrims |= 1 << GE_PRIM_POINTS
	g.pureCount += count
}

func (g *IndexGenerator) addList(prim, count int) {
	for i := 0; i < count; i++ {
		g.emit(g.index + i)
	}
	g.prim = prim
	g.seenPrims |= 1 << prim
	g.pureCount += count
}

func (g *IndexGenerator) addLineStrip(count int) {
	for i := 0; i < count-1; i++ {
		g.emit(g.index + i)
		g.emit(g.index + i + 1)
	}
	g.prim = GE_PRIM_LINES
	g.seenPrims |= 1 << GE_PRIM_LINE_STRIP
	g.pureCount = 0
}

func (g *IndexGenerator) addStrip(count int) {
	// Alternate the winding so every expanded triangle keeps the strip's
	// facing.
	for i := 0; i < count-2; i++ {
		g.emit(g.index + i)
		g.emit(g.index + i + (i & 1) + 1)
		g.emit(g.index + i + (((i + 1) & 1) + 1))
	}
	g.prim = GE_PRIM_TRIANGLES
	g.seenPrims |= 1 << GE_PRIM_TRIANGLE_STRIP
	g.pureCount = 0
}

func (g *IndexGenerator) addFan(count int) {
	for i := 0; i < count-2; i++ {
		g.emit(g.index)
		g.emit(g.index + i + 1)
		g.emit(g.index + i + 2)
	}
	g.prim = GE_PRIM_TRIANGLES
	g.seenPrims |= 1 << GE_PRIM_TRIANGLE_FAN
	g.pureCount = 0
}

// TranslatePrim registers one indexed primitive, renumbering its raw
// indices into the shared decoded-vertex space. get returns the raw
// index at position i; offset is subtracted from every raw index (the
// merged range's lower bound).
func (g *IndexGenerator) TranslatePrim(prim, count int, get func(int) int, offset int) {
	conv := func(i int) int { return g.index + get(i) - offset }
	switch prim {
	case GE_PRIM_POINTS, GE_PRIM_LINES, GE_PRIM_TRIANGLES, GE_PRIM_RECTANGLES:
		for i := 0; i < count; i++ {
			g.emit(conv(i))
		}
		g.prim = indexedKind[prim]
	case GE_PRIM_LINE_STRIP:
		for i := 0; i < count-1; i++ {
			g.emit(conv(i))
			g.emit(conv(i + 1))
		}
		g.prim = GE_PRIM_LINES
	case GE_PRIM_TRIANGLE_STRIP:
		for i := 0; i < count-2; i++ {
			if i&1 == 0 {
				g.emit(conv(i))
				g.emit(conv(i + 1))
				g.emit(conv(i + 2))
			} else {
				g.emit(conv(i))
				g.emit(conv(i + 2))
				g.emit(conv(i + 1))
			}
		}
		g.prim = GE_PRIM_TRIANGLES
	case GE_PRIM_TRIANGLE_FAN:
		for i := 0; i < count-2; i++ {
			g.emit(conv(0))
			g.emit(conv(i + 1))
			g.emit(conv(i + 2))
		}
		g.prim = GE_PRIM_TRIANGLES
	}
	if prim >= 0 && prim < len(indexedKind) {
		g.seenPrims |= 1 << prim
	}
	g.translated = true
	g.pureCount = 0
}

// Indices returns the emitted index stream.
func (g *IndexGenerator) Indices() []uint16 {
	return g.buf[:g.count]
}
