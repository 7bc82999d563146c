// ge_vertex.go - GE Vertex Formats and the Reference Vertex Reader

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
ge_vertex.go - GE Vertex Formats and the Reference Vertex Reader

VertexData is the canonical decoded vertex layout everything downstream
of the decoder works with: draw-space position with fixed-point depth,
homogeneous clip position, texture coordinates and a packed RGBA color.

VertexReader decodes a raw vertex range described by a vertex type word
into that layout. Real titles hit the JIT-compiled decoder owned by the
command interpreter; this reference reader covers the raw fixed formats
and exists so the draw engine is testable standalone. Readers are cached
per vertex type ID - the ID folds the UV generation mode into the top
byte so distinct UV modes never share a cached reader.
*/

package main

import (
	"encoding/binary"
	"math"
)

// VertexData is one decoded vertex in the canonical layout.
type VertexData struct {
	// Draw-space position: integer screen coordinates plus 16-bit
	// fixed-point depth.
	ScreenX, ScreenY int
	ScreenZ          uint16

	// Homogeneous clip-space position. ClipW carries the perspective
	// division weight used by the rasterizer.
	ClipX, ClipY, ClipZ, ClipW float32

	// Texture coordinates.
	U, V float32

	// Packed RGBA color, red in the low byte.
	Color uint32
}

// VertexTypeID folds the UV generation mode into the unused top byte of
// the vertex type word. Decoders are cached under this ID, not the raw
// vertex type.
func VertexTypeID(vertType uint32, uvGenMode int) uint32 {
	return (vertType & 0xFFFFFF) | uint32(uvGenMode)<<24
}

// VertexReader decodes raw vertices of one fixed format.
type VertexReader struct {
	vtype   uint32
	through bool

	stride  int
	tcOff   int
	colOff  int
	posOff  int
	hasTC   bool
	hasCol  bool
	tcFmt   uint32
	colFmt  uint32
	posFmt  uint32
	weights int // bytes of skinning weights preceding the attributes
}

// NewVertexReader builds a reader for the given vertex type ID.
func NewVertexReader(vtypeID uint32) *VertexReader {
	r := &VertexReader{
		vtype:   vtypeID,
		through: vtypeID&GE_VTYPE_THROUGH != 0,
		tcFmt:   vtypeID & GE_VTYPE_TC_MASK,
		colFmt:  vtypeID & GE_VTYPE_COL_MASK,
		posFmt:  vtypeID & GE_VTYPE_POS_MASK,
	}

	// Attribute order in memory: weights, texture coords, color,
	// normal, position. The reference reader skips weights and normals.
	off := 0
	if w := (vtypeID & GE_VTYPE_WEIGHT_MASK) >> GE_VTYPE_WEIGHT_SHIFT; w != 0 {
		count := int((vtypeID&GE_VTYPE_WEIGHTCOUNT_MASK)>>GE_VTYPE_WEIGHTCOUNT_SHIFT) + 1
		r.weights = count * int(w) // format 1/2/3 -> 1/2/4 bytes each
		if w == 3 {
			r.weights = count * 4
		}
		off += r.weights
	}
	switch r.tcFmt {
	case GE_VTYPE_TC_8BIT:
		r.hasTC, r.tcOff = true, off
		off += 2
	case GE_VTYPE_TC_16BIT:
		r.hasTC, r.tcOff = true, off
		off += 4
	case GE_VTYPE_TC_FLOAT:
		r.hasTC, r.tcOff = true, off
		off += 8
	}
	switch r.colFmt {
	case GE_VTYPE_COL_565, GE_VTYPE_COL_5551, GE_VTYPE_COL_4444:
		r.hasCol, r.colOff = true, off
		off += 2
	case GE_VTYPE_COL_8888:
		r.hasCol, r.colOff = true, off
		off += 4
	}
	switch (vtypeID & GE_VTYPE_NRM_MASK) >> GE_VTYPE_NRM_SHIFT {
	case 1:
		off += 3
	case 2:
		off += 6
	case 3:
		off += 12
	}
	r.posOff = off
	switch r.posFmt {
	case GE_VTYPE_POS_8BIT:
		off += 3
	case GE_VTYPE_POS_16BIT:
		off += 6
	default: // float, also the hardware's fallback for format 0
		off += 12
	}
	r.stride = off
	return r
}

// VertexSize returns the per-vertex byte stride of the raw format.
func (r *VertexReader) VertexSize() int {
	return r.stride
}

// HasColor reports whether the format carries a per-vertex color.
func (r *VertexReader) HasColor() bool {
	return r.hasCol
}

// HasWeights reports whether the format carries skinning weights.
func (r *VertexReader) HasWeights() bool {
	return r.weights != 0
}

// DecodeRange decodes raw vertices [lowerBound, upperBound] from src
// into dst. dst must have at least upperBound-lowerBound+1 slots; the
// reader never writes beyond it.
func (r *VertexReader) DecodeRange(dst []VertexData, src []byte, lowerBound, upperBound int) {
	n := upperBound - lowerBound + 1
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		base := (lowerBound + i) * r.stride
		if base+r.stride > len(src) {
			geLog().Warn("vertex decode out of range", "index", lowerBound+i, "stride", r.stride, "src", len(src))
			return
		}
		dst[i] = r.decodeOne(src[base : base+r.stride])
	}
}

func (r *VertexReader) decodeOne(v []byte) VertexData {
	var out VertexData
	out.ClipW = 1
	out.Color = 0xFFFFFFFF

	if r.hasTC {
		switch r.tcFmt {
		case GE_VTYPE_TC_8BIT:
			out.U = float32(v[r.tcOff])
			out.V = float32(v[r.tcOff+1])
			if !r.through {
				out.U /= 128
				out.V /= 128
			}
		case GE_VTYPE_TC_16BIT:
			out.U = float32(binary.LittleEndian.Uint16(v[r.tcOff:]))
			out.V = float32(binary.LittleEndian.Uint16(v[r.tcOff+2:]))
			if !r.through {
				out.U /= 32768
				out.V /= 32768
			}
		case GE_VTYPE_TC_FLOAT:
			out.U = math.Float32frombits(binary.LittleEndian.Uint32(v[r.tcOff:]))
			out.V = math.Float32frombits(binary.LittleEndian.Uint32(v[r.tcOff+4:]))
		}
	}

	if r.hasCol {
		switch r.colFmt {
		case GE_VTYPE_COL_565:
			out.Color = unpack565(binary.LittleEndian.Uint16(v[r.colOff:]))
		case GE_VTYPE_COL_5551:
			out.Color = unpack5551(binary.LittleEndian.Uint16(v[r.colOff:]))
		case GE_VTYPE_COL_4444:
			out.Color = unpack4444(binary.LittleEndian.Uint16(v[r.colOff:]))
		case GE_VTYPE_COL_8888:
			out.Color = binary.LittleEndian.Uint32(v[r.colOff:])
		}
	}

	switch r.posFmt {
	case GE_VTYPE_POS_8BIT:
		out.ClipX = float32(int8(v[r.posOff]))
		out.ClipY = float32(int8(v[r.posOff+1]))
		out.ClipZ = float32(int8(v[r.posOff+2]))
	case GE_VTYPE_POS_16BIT:
		x := int16(binary.LittleEndian.Uint16(v[r.posOff:]))
		y := int16(binary.LittleEndian.Uint16(v[r.posOff+2:]))
		z := binary.LittleEndian.Uint16(v[r.posOff+4:])
		out.ClipX = float32(x)
		out.ClipY = float32(y)
		out.ClipZ = float32(z)
		if r.through {
			out.ScreenX = int(x)
			out.ScreenY = int(y)
			out.ScreenZ = z
		}
	default:
		out.ClipX = math.Float32frombits(binary.LittleEndian.Uint32(v[r.posOff:]))
		out.ClipY = math.Float32frombits(binary.LittleEndian.Uint32(v[r.posOff+4:]))
		out.ClipZ = math.Float32frombits(binary.LittleEndian.Uint32(v[r.posOff+8:]))
		if r.through {
			out.ScreenX = int(out.ClipX)
			out.ScreenY = int(out.ClipY)
			out.ScreenZ = clampDepth(out.ClipZ)
		}
	}
	return out
}

// clampDepth converts a float depth to the 16-bit fixed depth range.
func clampDepth(z float32) uint16 {
	if z <= 0 {
		return 0
	}
	if z >= 65535 {
		return 65535
	}
	return uint16(z)
}

// GetIndexBounds scans an index buffer and returns the inclusive range
// of vertex indices it references. The index width comes from the vertex
// type word.
func GetIndexBounds(inds []byte, count int, vertType uint32) (lowerBound, upperBound int) {
	lowerBound = int(^uint(0) >> 1)
	upperBound = 0
	switch vertType & GE_VTYPE_IDX_MASK {
	case GE_VTYPE_IDX_8BIT:
		if count > len(inds) {
			count = len(inds)
		}
		for i := 0; i < count; i++ {
			idx := int(inds[i])
			if idx < lowerBound {
				lowerBound = idx
			}
			if idx > upperBound {
				upperBound = idx
			}
		}
	case GE_VTYPE_IDX_16BIT:
		if count*2 > len(inds) {
			count = len(inds) / 2
		}
		for i := 0; i < count; i++ {
			idx := int(binary.LittleEndian.Uint16(inds[i*2:]))
			if idx < lowerBound {
				lowerBound = idx
			}
			if idx > upperBound {
				upperBound = idx
			}
		}
	}
	if lowerBound > upperBound {
		lowerBound = 0
	}
	return lowerBound, upperBound
}
