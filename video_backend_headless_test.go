//go:build headless

// video_backend_headless_test.go - Headless video backend tests

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

func TestVideo_HeadlessLifecycle(t *testing.T) {
	out, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		t.Fatalf("NewVideoOutput: %v", err)
	}
	if out.IsStarted() {
		t.Error("backend must not start on creation")
	}
	if err := out.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !out.IsStarted() {
		t.Error("backend must report started after Start")
	}
	if err := out.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if out.IsStarted() {
		t.Error("backend must report stopped after Stop")
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestVideo_HeadlessFrameCount(t *testing.T) {
	out, _ := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	buf := make([]byte, GE_DEFAULT_RT_WIDTH*GE_DEFAULT_RT_HEIGHT*4)
	for i := 0; i < 3; i++ {
		if err := out.UpdateFrame(buf); err != nil {
			t.Fatalf("UpdateFrame: %v", err)
		}
		if err := out.WaitForVSync(); err != nil {
			t.Fatalf("WaitForVSync: %v", err)
		}
	}
	if got := out.GetFrameCount(); got != 3 {
		t.Errorf("frame count: got %d, want 3", got)
	}
}

func TestVideo_HeadlessDisplayConfig(t *testing.T) {
	out, _ := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	cfg := DisplayConfig{
		Width:       GE_DEFAULT_RT_WIDTH,
		Height:      GE_DEFAULT_RT_HEIGHT,
		Scale:       2,
		RefreshRate: 60,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
		Fullscreen:  true,
	}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig: %v", err)
	}
	if got := out.GetDisplayConfig(); got != cfg {
		t.Errorf("config round trip: got %+v", got)
	}
	if out.GetRefreshRate() != 60 {
		t.Errorf("refresh rate: got %d, want 60", out.GetRefreshRate())
	}
}

func TestVideo_UnknownBackendRejected(t *testing.T) {
	if _, err := NewVideoOutput(99); err == nil {
		t.Fatal("an unknown backend type must be rejected")
	}
	if _, err := NewVideoOutput(VIDEO_BACKEND_OPENGL); err == nil {
		t.Fatal("the OpenGL backend is not implemented and must error")
	}
}

func TestVideo_ClampScale(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {8, 8}, {9, 8}, {-3, 1},
	}
	for _, c := range cases {
		if got := ClampScale(c.in); got != c.want {
			t.Errorf("ClampScale(%d): got %d, want %d", c.in, got, c.want)
		}
	}
}
