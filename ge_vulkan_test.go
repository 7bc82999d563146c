//go:build !headless

// ge_vulkan_test.go - GE register to Vulkan enum mapping tests

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

import (
	"testing"

	vk "github.com/goki/vulkan"
)

func TestGE_PrimToVulkanTopology(t *testing.T) {
	cases := []struct {
		prim int
		want vk.PrimitiveTopology
	}{
		{GE_PRIM_POINTS, vk.PrimitiveTopologyPointList},
		{GE_PRIM_LINES, vk.PrimitiveTopologyLineList},
		{GE_PRIM_LINE_STRIP, vk.PrimitiveTopologyLineStrip},
		{GE_PRIM_TRIANGLES, vk.PrimitiveTopologyTriangleList},
		{GE_PRIM_TRIANGLE_STRIP, vk.PrimitiveTopologyTriangleStrip},
		{GE_PRIM_TRIANGLE_FAN, vk.PrimitiveTopologyTriangleFan},
		// Rectangles expand to two triangles before pipeline selection.
		{GE_PRIM_RECTANGLES, vk.PrimitiveTopologyTriangleList},
	}
	for _, c := range cases {
		if got := PrimToVulkan(c.prim); got != c.want {
			t.Errorf("prim %d: got %v, want %v", c.prim, got, c.want)
		}
	}
	if got := PrimToVulkan(GE_PRIM_INVALID); got != vk.PrimitiveTopologyTriangleList {
		t.Errorf("out-of-range prim must fall back to triangle list, got %v", got)
	}
}

func TestGE_DepthFuncToVulkanCompareOp(t *testing.T) {
	cases := []struct {
		f    int
		want vk.CompareOp
	}{
		{GE_COMP_NEVER, vk.CompareOpNever},
		{GE_COMP_ALWAYS, vk.CompareOpAlways},
		{GE_COMP_EQUAL, vk.CompareOpEqual},
		{GE_COMP_NOTEQUAL, vk.CompareOpNotEqual},
		{GE_COMP_LESS, vk.CompareOpLess},
		{GE_COMP_LEQUAL, vk.CompareOpLessOrEqual},
		{GE_COMP_GREATER, vk.CompareOpGreater},
		{GE_COMP_GEQUAL, vk.CompareOpGreaterOrEqual},
	}
	for _, c := range cases {
		if got := DepthFuncToVulkan(c.f); got != c.want {
			t.Errorf("depth func %d: got %v, want %v", c.f, got, c.want)
		}
	}
	if got := DepthFuncToVulkan(99); got != vk.CompareOpAlways {
		t.Errorf("out-of-range func must fall back to always, got %v", got)
	}
}
