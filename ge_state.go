// ge_state.go - GE State Snapshot

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
ge_state.go - GE State Snapshot

The GE keeps a persistent register file owned by the command interpreter.
The draw engine and rasterizer never read that store directly: a GEState
snapshot is captured once per flush and passed explicitly into every
component call, so a flush sees one consistent view of the registers even
while the emulated CPU keeps writing them.

Accessor methods decode the packed register words the same way the
hardware does (scissor halves, texture size exponents, clear mask bits).
*/

package main

// GEState is a read-only snapshot of the GE register state relevant to
// batching and rasterization.
type GEState struct {
	// Scissor rectangle, inclusive bounds in screen coordinates.
	ScissorX1, ScissorY1 int
	ScissorX2, ScissorY2 int

	// Depth testing.
	DepthTestEnable  bool
	DepthWriteEnable bool
	DepthFunc        int // GE_COMP_*

	// Shading and texturing.
	ShadeModel    int // GE_SHADE_FLAT or GE_SHADE_GOURAUD
	TextureEnable bool
	TexFormat     int // GE_TFMT_*
	TexAddr       [GE_TEX_LEVELS]uint32
	TexSize       [GE_TEX_LEVELS]uint32 // low nibble: log2 width, bits 8-11: log2 height

	// Draw modes.
	ThroughMode bool
	ClearMode   bool
	ClearBits   uint32 // GE_CLEAR_* bits, only meaningful in clear mode

	// Material/lighting alpha inputs to the full-alpha heuristic.
	MaterialAmbientAlpha uint8
	AmbientAlpha         uint8
	MaterialUpdate       uint32
	LightingEnable       bool

	// UV generation mode, folded into the vertex decoder cache key.
	UVGenMode int

	// Render target and depth buffer location in emulated memory.
	FrameBufAddr   uint32
	FrameBufStride int // pixels per row, color buffer is 32-bit RGBA
	DepthBufAddr   uint32
	DepthBufStride int // pixels per row, depth buffer is 16-bit

	// Render target dimensions for clear rects.
	RTWidth, RTHeight int
}

// TexWidth returns the width in texels of the given mip level.
func (s *GEState) TexWidth(level int) int {
	return 1 << (s.TexSize[level] & 0xF)
}

// TexHeight returns the height in texels of the given mip level.
func (s *GEState) TexHeight(level int) int {
	return 1 << ((s.TexSize[level] >> 8) & 0xF)
}

// TexBytesPerTexel returns the storage size of one texel for the
// snapshot's texture format.
func (s *GEState) TexBytesPerTexel() int {
	if s.TexFormat == GE_TFMT_8888 {
		return 4
	}
	return 2
}

// DepthTestApplies reports whether the rasterizer must run the depth
// stage for this state: either ordinary depth testing (not in through
// mode), or unconditionally in clear mode.
func (s *GEState) DepthTestApplies() bool {
	return (s.DepthTestEnable && !s.ThroughMode) || s.ClearMode
}

// DepthWriteApplies reports whether a passing pixel writes depth.
func (s *GEState) DepthWriteApplies() bool {
	return s.DepthWriteEnable || (s.ClearMode && s.ClearBits&GE_CLEAR_DEPTH != 0)
}

// ClearAttachMask translates the clear-mode mask bits into the
// attachment mask used by DrawSink.ClearAttachments.
func (s *GEState) ClearAttachMask() uint8 {
	var mask uint8
	if s.ClearBits&GE_CLEAR_COLOR != 0 {
		mask |= GE_ATTACH_COLOR
	}
	if s.ClearBits&GE_CLEAR_ALPHA != 0 {
		mask |= GE_ATTACH_ALPHA
	}
	if s.ClearBits&GE_CLEAR_DEPTH != 0 {
		mask |= GE_ATTACH_DEPTH
	}
	return mask
}

// TextureAliasesTarget reports whether the level-0 texture source
// overlaps the current render target. Rendering to a surface while
// sampling it as a texture is undefined without a flush boundary, so the
// batcher forces one when this holds. The comparison is an overlap
// predicate over physical address ranges rather than a raw pointer
// equality check.
func (s *GEState) TextureAliasesTarget() bool {
	texStart := s.TexAddr[0] & GE_ADDR_MASK
	texLen := uint32(s.TexWidth(0)*s.TexHeight(0)) * uint32(s.TexBytesPerTexel())
	fbStart := s.FrameBufAddr & GE_ADDR_MASK
	fbLen := uint32(s.FrameBufStride*s.RTHeight) * 4
	if texLen == 0 || fbLen == 0 {
		return texStart == fbStart
	}
	return texStart < fbStart+fbLen && fbStart < texStart+texLen
}
