// ge_constants.go - Meridian GE Command and Format Definitions

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
ge_constants.go - Meridian GE Command and Format Definitions

This file contains the primitive kinds, vertex type bitfield layout,
depth compare functions, texture pixel formats and capacity constants for
the Meridian GE (graphics engine) emulation. The GE is a fixed-function
chip programmed through an immediate command stream: the command
interpreter submits primitives (vertex pointer, index pointer, vertex
format, count) and the draw engine batches them until a flush is forced.

Bit layouts follow the hardware's vertex type word: attribute presence
and width in the low bits, index width in bits 11-12, through-mode flag
in bit 23.
*/

package main

// Primitive kinds as encoded in the PRIM command.
const (
	GE_PRIM_POINTS         = 0
	GE_PRIM_LINES          = 1
	GE_PRIM_LINE_STRIP     = 2
	GE_PRIM_TRIANGLES      = 3
	GE_PRIM_TRIANGLE_STRIP = 4
	GE_PRIM_TRIANGLE_FAN   = 5
	GE_PRIM_RECTANGLES     = 6
	GE_PRIM_KEEP_PREVIOUS  = 7 // repeat the previous primitive kind
	GE_PRIM_INVALID        = -1
)

// Vertex type word bit fields.
const (
	GE_VTYPE_TC_SHIFT = 0
	GE_VTYPE_TC_MASK  = 0x3 << GE_VTYPE_TC_SHIFT
	GE_VTYPE_TC_NONE  = 0 << GE_VTYPE_TC_SHIFT
	GE_VTYPE_TC_8BIT  = 1 << GE_VTYPE_TC_SHIFT
	GE_VTYPE_TC_16BIT = 2 << GE_VTYPE_TC_SHIFT
	GE_VTYPE_TC_FLOAT = 3 << GE_VTYPE_TC_SHIFT

	GE_VTYPE_COL_SHIFT = 2
	GE_VTYPE_COL_MASK  = 0x7 << GE_VTYPE_COL_SHIFT
	GE_VTYPE_COL_NONE  = 0 << GE_VTYPE_COL_SHIFT
	GE_VTYPE_COL_565   = 4 << GE_VTYPE_COL_SHIFT
	GE_VTYPE_COL_5551  = 5 << GE_VTYPE_COL_SHIFT
	GE_VTYPE_COL_4444  = 6 << GE_VTYPE_COL_SHIFT
	GE_VTYPE_COL_8888  = 7 << GE_VTYPE_COL_SHIFT

	GE_VTYPE_NRM_SHIFT = 5
	GE_VTYPE_NRM_MASK  = 0x3 << GE_VTYPE_NRM_SHIFT

	GE_VTYPE_POS_SHIFT = 7
	GE_VTYPE_POS_MASK  = 0x3 << GE_VTYPE_POS_SHIFT
	GE_VTYPE_POS_8BIT  = 1 << GE_VTYPE_POS_SHIFT
	GE_VTYPE_POS_16BIT = 2 << GE_VTYPE_POS_SHIFT
	GE_VTYPE_POS_FLOAT = 3 << GE_VTYPE_POS_SHIFT

	GE_VTYPE_WEIGHT_SHIFT = 9
	GE_VTYPE_WEIGHT_MASK  = 0x3 << GE_VTYPE_WEIGHT_SHIFT

	GE_VTYPE_IDX_SHIFT = 11
	GE_VTYPE_IDX_MASK  = 0x3 << GE_VTYPE_IDX_SHIFT
	GE_VTYPE_IDX_NONE  = 0 << GE_VTYPE_IDX_SHIFT
	GE_VTYPE_IDX_8BIT  = 1 << GE_VTYPE_IDX_SHIFT
	GE_VTYPE_IDX_16BIT = 2 << GE_VTYPE_IDX_SHIFT

	GE_VTYPE_WEIGHTCOUNT_SHIFT = 14
	GE_VTYPE_WEIGHTCOUNT_MASK  = 0x7 << GE_VTYPE_WEIGHTCOUNT_SHIFT

	GE_VTYPE_THROUGH = 1 << 23 // coordinates are already in screen space
)

// UV generation modes. Distinct modes must not share a cached vertex
// decoder even for identical raw vertex formats, so the mode is folded
// into the top byte of the decoder cache key.
const (
	GE_UVGEN_COORDS = 0
	GE_UVGEN_MATRIX = 1
	GE_UVGEN_ENVMAP = 2
)

// Depth/alpha compare functions.
const (
	GE_COMP_NEVER    = 0
	GE_COMP_ALWAYS   = 1
	GE_COMP_EQUAL    = 2
	GE_COMP_NOTEQUAL = 3
	GE_COMP_LESS     = 4
	GE_COMP_LEQUAL   = 5
	GE_COMP_GREATER  = 6
	GE_COMP_GEQUAL   = 7
)

// Shading models.
const (
	GE_SHADE_FLAT    = 0
	GE_SHADE_GOURAUD = 1
)

// Texture pixel formats (raw, uncompressed storage).
const (
	GE_TFMT_5650 = 0 // 16-bit 5-6-5, opaque
	GE_TFMT_5551 = 1 // 16-bit 5-5-5 + 1-bit alpha
	GE_TFMT_4444 = 2 // 16-bit 4 bits per channel
	GE_TFMT_8888 = 3 // 32-bit direct
)

// Clear mode mask bits (which attachments a clear-mode draw updates).
const (
	GE_CLEAR_COLOR = 1 << 8
	GE_CLEAR_ALPHA = 1 << 9
	GE_CLEAR_DEPTH = 1 << 10
)

// Attachment mask bits passed to DrawSink.ClearAttachments.
const (
	GE_ATTACH_COLOR = 1 << 0
	GE_ATTACH_ALPHA = 1 << 1
	GE_ATTACH_DEPTH = 1 << 2
)

// Batching capacity. The deferred draw call list and the decoded
// vertex/index scratch buffers are long-lived arenas reused across
// flushes; these constants bound one accumulation cycle.
const (
	GE_MAX_DEFERRED_DRAW_CALLS = 128
	GE_VERTEX_BUFFER_MAX       = 65536
	GE_INDEX_BUFFER_MAX        = GE_VERTEX_BUFFER_MAX * 4
)

// Emulated memory map.
const (
	GE_RAM_BASE  = 0x08000000
	GE_RAM_SIZE  = 32 * 1024 * 1024
	GE_VRAM_BASE = 0x04000000
	GE_VRAM_SIZE = 2 * 1024 * 1024
	GE_ADDR_MASK = 0x3FFFFFFF // physical address bits used for aliasing checks
)

// Texture mip level count.
const GE_TEX_LEVELS = 8

// Default render target dimensions.
const (
	GE_DEFAULT_RT_WIDTH  = 480
	GE_DEFAULT_RT_HEIGHT = 272
)
