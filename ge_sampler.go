// ge_sampler.go - GE Texture Pixel Format Sampler

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
ge_sampler.go - GE Texture Pixel Format Sampler

Nearest-neighbour texel fetch for the software rasterizer. One texel is
unpacked from the packed storage format into normalized RGBA8888 using
the hardware's bit replication rules (a 4-bit channel x becomes x<<4|x,
a 5-bit channel x<<3|x>>2, a 6-bit channel x<<2|x>>4).

The format switch is closed: a raw format value outside the four raw
encodings is an unsupported-input condition and yields transparent black
with a log entry, never an uninitialized value.
*/

package main

import "encoding/binary"

// PixelSampler fetches texels from emulated memory for one state
// snapshot.
type PixelSampler struct {
	mem   *GEMemory
	state *GEState
}

// NewPixelSampler builds a sampler over the given memory and snapshot.
func NewPixelSampler(mem *GEMemory, state *GEState) *PixelSampler {
	return &PixelSampler{mem: mem, state: state}
}

// SampleNearest returns the RGBA8888 color of the texel nearest to
// (s, t) in the given mip level. Texel coordinates outside the level's
// dimensions clamp to the edge.
func (p *PixelSampler) SampleNearest(level int, s, t float32) uint32 {
	width := p.state.TexWidth(level)
	height := p.state.TexHeight(level)

	u := int(s * float32(width))
	v := int(t * float32(height))
	if u < 0 {
		u = 0
	} else if u >= width {
		u = width - 1
	}
	if v < 0 {
		v = 0
	} else if v >= height {
		v = height - 1
	}

	src := p.mem.GetPointer(p.state.TexAddr[level])
	if src == nil {
		geLog().Warn("texture fetch from unmapped address", "addr", p.state.TexAddr[level], "level", level)
		return 0
	}

	switch p.state.TexFormat {
	case GE_TFMT_4444:
		off := 2*v*width + 2*u
		if off+2 > len(src) {
			return 0
		}
		return unpack4444(binary.LittleEndian.Uint16(src[off:]))
	case GE_TFMT_5551:
		off := 2*v*width + 2*u
		if off+2 > len(src) {
			return 0
		}
		return unpack5551(binary.LittleEndian.Uint16(src[off:]))
	case GE_TFMT_5650:
		off := 2*v*width + 2*u
		if off+2 > len(src) {
			return 0
		}
		return unpack565(binary.LittleEndian.Uint16(src[off:]))
	case GE_TFMT_8888:
		off := 4*v*width + 4*u
		if off+4 > len(src) {
			return 0
		}
		return binary.LittleEndian.Uint32(src[off:])
	}

	geLog().Warn("unsupported texture format", "format", p.state.TexFormat)
	return 0
}

// unpack4444 expands a 4-4-4-4 texel to RGBA8888.
func unpack4444(texel uint16) uint32 {
	r := expand4(uint8(texel & 0xF))
	g := expand4(uint8((texel >> 4) & 0xF))
	b := expand4(uint8((texel >> 8) & 0xF))
	a := expand4(uint8(texel >> 12))
	return packRGBA(r, g, b, a)
}

// unpack5551 expands a 5-5-5-1 texel to RGBA8888. The alpha bit expands
// to fully opaque or fully transparent.
func unpack5551(texel uint16) uint32 {
	r := expand5(uint8(texel & 0x1F))
	g := expand5(uint8((texel >> 5) & 0x1F))
	b := expand5(uint8((texel >> 10) & 0x1F))
	a := uint8(0)
	if texel&0x8000 != 0 {
		a = 0xFF
	}
	return packRGBA(r, g, b, a)
}

// unpack565 expands a 5-6-5 texel to RGBA8888 with forced opaque alpha.
func unpack565(texel uint16) uint32 {
	r := expand5(uint8(texel & 0x1F))
	g := expand6(uint8((texel >> 5) & 0x3F))
	b := expand5(uint8(texel >> 11))
	return packRGBA(r, g, b, 0xFF)
}

func expand4(x uint8) uint8 { return x<<4 | x }
func expand5(x uint8) uint8 { return x<<3 | x>>2 }
func expand6(x uint8) uint8 { return x<<2 | x>>4 }

// packRGBA packs four channels with red in the low byte.
func packRGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}
