// main.go - Main entry point for the Meridian Engine

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
main.go - GE Demo Driver

Stands in for the full console until the CPU cores land: builds the
emulated memory map, drives the GE draw engine through a small
through-mode scene every frame (clear, a shaded triangle, a textured
quad) and presents the VRAM render target through the video backend.
*/

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
)

func boilerPlate() {
	fmt.Println("\nMeridian Engine - a modern reimagining of the sixth-generation handheld consoles.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/MeridianEngine")
	fmt.Println("License: GPLv3 or later")
}

// Demo scene layout in emulated memory.
const (
	demoFrameBufAddr = GE_VRAM_BASE
	demoDepthBufAddr = GE_VRAM_BASE + 512*1024
	demoTextureAddr  = GE_RAM_BASE
	demoVertexAddr   = GE_RAM_BASE + 0x10000
	demoTexSize      = 64 // 64x64 texels
)

// Through-mode vertex format used by the demo: 16-bit texture coords,
// 32-bit color, 16-bit position.
const demoVType = GE_VTYPE_THROUGH | GE_VTYPE_TC_16BIT | GE_VTYPE_COL_8888 | GE_VTYPE_POS_16BIT

// putDemoVertex writes one raw vertex at off and returns the offset
// past it.
func putDemoVertex(buf []byte, off int, u, v uint16, color uint32, x, y, z uint16) int {
	binary.LittleEndian.PutUint16(buf[off:], u)
	binary.LittleEndian.PutUint16(buf[off+2:], v)
	binary.LittleEndian.PutUint32(buf[off+4:], color)
	binary.LittleEndian.PutUint16(buf[off+8:], x)
	binary.LittleEndian.PutUint16(buf[off+10:], y)
	binary.LittleEndian.PutUint16(buf[off+12:], z)
	return off + 14
}

// writeCheckerTexture fills a 4444 checkerboard into emulated RAM.
func writeCheckerTexture(mem *GEMemory) {
	tex := mem.GetPointer(demoTextureAddr)
	for y := 0; y < demoTexSize; y++ {
		for x := 0; x < demoTexSize; x++ {
			texel := uint16(0xFF00) // opaque blue
			if (x/8+y/8)%2 == 0 {
				texel = 0xFFFF // opaque white
			}
			binary.LittleEndian.PutUint16(tex[(y*demoTexSize+x)*2:], texel)
		}
	}
}

// demoState returns the base register snapshot shared by every draw.
func demoState() GEState {
	s := GEState{
		ThroughMode:    true,
		ShadeModel:     GE_SHADE_GOURAUD,
		FrameBufAddr:   demoFrameBufAddr,
		FrameBufStride: GE_DEFAULT_RT_WIDTH,
		DepthBufAddr:   demoDepthBufAddr,
		DepthBufStride: GE_DEFAULT_RT_WIDTH,
		RTWidth:        GE_DEFAULT_RT_WIDTH,
		RTHeight:       GE_DEFAULT_RT_HEIGHT,
		ScissorX2:      GE_DEFAULT_RT_WIDTH - 1,
		ScissorY2:      GE_DEFAULT_RT_HEIGHT - 1,
		TexFormat:      GE_TFMT_4444,
	}
	s.TexAddr[0] = demoTextureAddr
	s.TexSize[0] = 6 | 6<<8 // 64x64
	return s
}

// renderDemoFrame drives one frame's worth of submissions through the
// engine. The register snapshot is updated between flushes the way the
// command interpreter would.
func renderDemoFrame(engine *GEDrawEngine, state *GEState, mem *GEMemory, frame int) {
	vbuf := mem.GetPointer(demoVertexAddr)

	// Full-target clear to dark grey.
	*state = demoState()
	state.ClearMode = true
	state.ClearBits = GE_CLEAR_COLOR | GE_CLEAR_ALPHA | GE_CLEAR_DEPTH
	off := putDemoVertex(vbuf, 0, 0, 0, 0xFF202020, 0, 0, 0xFFFF)
	putDemoVertex(vbuf, off, 0, 0, 0xFF202020, GE_DEFAULT_RT_WIDTH, GE_DEFAULT_RT_HEIGHT, 0xFFFF)
	engine.SubmitPrim(demoVertexAddr, 0, GE_PRIM_RECTANGLES, 2, demoVType)
	engine.Flush()

	// Shaded triangle, swaying with the frame counter. Wound clockwise
	// in screen space, the orientation the rasterizer treats as front.
	*state = demoState()
	sway := uint16(120 + 40*math.Sin(float64(frame)/30))
	off = putDemoVertex(vbuf, 0, 0, 0, 0x000000FF, sway, 30, 0x8000)
	off = putDemoVertex(vbuf, off, 0, 0, 0x00FF0000, 220, 200, 0x8000)
	putDemoVertex(vbuf, off, 0, 0, 0x0000FF00, 60, 200, 0x8000)
	engine.SubmitPrim(demoVertexAddr, 0, GE_PRIM_TRIANGLES, 3, demoVType)
	engine.Flush()

	// Textured quad as an indexed triangle pair.
	*state = demoState()
	state.TextureEnable = true
	off = putDemoVertex(vbuf, 0, 0, 0, 0xFFFFFFFF, 260, 40, 0x8000)
	off = putDemoVertex(vbuf, off, demoTexSize, 0, 0xFFFFFFFF, 420, 40, 0x8000)
	off = putDemoVertex(vbuf, off, demoTexSize, demoTexSize, 0xFFFFFFFF, 420, 200, 0x8000)
	iaddr := demoVertexAddr + uint32(putDemoVertex(vbuf, off, 0, demoTexSize, 0xFFFFFFFF, 260, 200, 0x8000))
	ibuf := mem.GetPointer(iaddr)
	copy(ibuf, []byte{0, 1, 2, 0, 2, 3})
	engine.SubmitPrim(demoVertexAddr, iaddr, GE_PRIM_TRIANGLES, 6, demoVType|GE_VTYPE_IDX_8BIT)
	engine.Flush()
}

// presentFrame copies the VRAM render target into an RGBA buffer for
// the display backend.
func presentFrame(mem *GEMemory, out []byte) {
	fb := mem.GetPointer(demoFrameBufAddr)
	copy(out, fb[:GE_DEFAULT_RT_WIDTH*GE_DEFAULT_RT_HEIGHT*4])
}

func main() {
	boilerPlate()

	var (
		frames  int
		scale   int
		verbose bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&frames, "frames", 0, "Render N frames then exit (0 = run until closed)")
	flagSet.IntVar(&scale, "scale", 2, "Integer window scale factor")
	flagSet.BoolVar(&verbose, "verbose", false, "Log GE activity to stderr")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./meridian_engine [-frames N] [-scale N] [-verbose]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		SetGELogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mem := NewGEMemory()
	writeCheckerTexture(mem)

	state := demoState()
	engine := NewGEDrawEngine(mem, &state, &RecordingSink{})

	video, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	if err := video.SetDisplayConfig(DisplayConfig{
		Width:       GE_DEFAULT_RT_WIDTH,
		Height:      GE_DEFAULT_RT_HEIGHT,
		Scale:       scale,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
	}); err != nil {
		fmt.Printf("Failed to configure video: %v\n", err)
		os.Exit(1)
	}
	if overlay, ok := video.(StatsOverlayCapable); ok {
		overlay.SetStatsProvider(engine.Stats)
	}
	if err := video.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}

	frameRGBA := make([]byte, GE_DEFAULT_RT_WIDTH*GE_DEFAULT_RT_HEIGHT*4)
	for frame := 0; frames == 0 || frame < frames; frame++ {
		if !video.IsStarted() {
			break
		}
		renderDemoFrame(engine, &state, mem, frame)
		presentFrame(mem, frameRGBA)
		if err := video.UpdateFrame(frameRGBA); err != nil {
			fmt.Printf("Frame update failed: %v\n", err)
			break
		}
		if err := video.WaitForVSync(); err != nil {
			break
		}
	}

	stats := engine.Stats()
	fmt.Printf("GE: %d flushes, %d draw calls, %d vertices\n",
		stats.NumFlushes, stats.NumDrawCalls, stats.NumVertsSubmitted)
	_ = video.Close()
}
