// ge_memory.go - Emulated Memory Access for the GE

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
ge_memory.go - Emulated Memory Access for the GE

The GE reads vertex data, index data and textures straight out of the
emulated machine's RAM and VRAM, and the framebuffer/depthbuffer live in
VRAM shared with the emulated CPU. Address resolution is bounds-checked:
a bad address yields a nil slice rather than a panic, and the caller is
expected to recover (the machine must keep running on malformed data).
*/

package main

// GEMemory exposes the emulated address space to the GE. RAM and VRAM
// are the only regions the GE can address.
type GEMemory struct {
	RAM  []byte // mapped at GE_RAM_BASE
	VRAM []byte // mapped at GE_VRAM_BASE
}

// NewGEMemory allocates a fresh address space with the standard region
// sizes.
func NewGEMemory() *GEMemory {
	return &GEMemory{
		RAM:  make([]byte, GE_RAM_SIZE),
		VRAM: make([]byte, GE_VRAM_SIZE),
	}
}

// GetPointer resolves an emulated address to the backing slice from that
// offset to the end of its region. Returns nil for unmapped addresses.
func (m *GEMemory) GetPointer(addr uint32) []byte {
	addr &= GE_ADDR_MASK
	switch {
	case addr >= GE_RAM_BASE && addr < GE_RAM_BASE+uint32(len(m.RAM)):
		return m.RAM[addr-GE_RAM_BASE:]
	case addr >= GE_VRAM_BASE && addr < GE_VRAM_BASE+uint32(len(m.VRAM)):
		return m.VRAM[addr-GE_VRAM_BASE:]
	}
	return nil
}

// IsValidRange reports whether [addr, addr+size) resolves entirely
// inside one mapped region.
func (m *GEMemory) IsValidRange(addr, size uint32) bool {
	p := m.GetPointer(addr)
	return p != nil && uint32(len(p)) >= size
}

// DrawSurface wraps the color and depth buffers of the current render
// target with bounds-checked pixel accessors. It is rebuilt from the
// state snapshot at each software flush, so a mid-frame change of
// framebuffer address takes effect at the next flush boundary.
type DrawSurface struct {
	color    []byte
	depth    []byte
	fbStride int // pixels per row
	dbStride int // pixels per row
}

// NewDrawSurface resolves the snapshot's framebuffer and depthbuffer
// addresses against emulated memory.
func NewDrawSurface(mem *GEMemory, state *GEState) *DrawSurface {
	return &DrawSurface{
		color:    mem.GetPointer(state.FrameBufAddr),
		depth:    mem.GetPointer(state.DepthBufAddr),
		fbStride: state.FrameBufStride,
		dbStride: state.DepthBufStride,
	}
}

// PixelColor reads the 32-bit RGBA value at (x, y).
func (d *DrawSurface) PixelColor(x, y int) uint32 {
	off := 4*x + 4*y*d.fbStride
	if off < 0 || off+4 > len(d.color) {
		return 0
	}
	return uint32(d.color[off]) | uint32(d.color[off+1])<<8 |
		uint32(d.color[off+2])<<16 | uint32(d.color[off+3])<<24
}

// SetPixelColor writes the 32-bit RGBA value at (x, y).
func (d *DrawSurface) SetPixelColor(x, y int, value uint32) {
	off := 4*x + 4*y*d.fbStride
	if off < 0 || off+4 > len(d.color) {
		return
	}
	d.color[off] = byte(value)
	d.color[off+1] = byte(value >> 8)
	d.color[off+2] = byte(value >> 16)
	d.color[off+3] = byte(value >> 24)
}

// PixelDepth reads the 16-bit depth value at (x, y).
func (d *DrawSurface) PixelDepth(x, y int) uint16 {
	off := 2*x + 2*y*d.dbStride
	if off < 0 || off+2 > len(d.depth) {
		return 0
	}
	return uint16(d.depth[off]) | uint16(d.depth[off+1])<<8
}

// SetPixelDepth writes the 16-bit depth value at (x, y).
func (d *DrawSurface) SetPixelDepth(x, y int, value uint16) {
	off := 2*x + 2*y*d.dbStride
	if off < 0 || off+2 > len(d.depth) {
		return
	}
	d.depth[off] = byte(value)
	d.depth[off+1] = byte(value >> 8)
}
