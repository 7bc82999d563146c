//go:build !headless

// ge_vulkan.go - Vulkan Draw Sink for the GE

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
ge_vulkan.go - Vulkan Draw Sink for the GE

Records the draw engine's hardware-transform output into a Vulkan
command buffer owned by the host renderer. The sink does not create
devices, pipelines or memory: the renderer hands it a command buffer in
the recording state plus the frame's vertex and index buffers, and
retrieves the staged vertex data for upload before submission. Pipeline
state (depth compare, topology) is the renderer's job; the mapping
tables here translate GE register values into Vulkan enums for it.
*/

package main

import (
	vk "github.com/goki/vulkan"
)

// primToVulkan maps GE primitive kinds to Vulkan topologies. Rectangles
// have no Vulkan topology; the renderer expands them to two triangles
// before pipeline selection.
var primToVulkan = [7]vk.PrimitiveTopology{
	vk.PrimitiveTopologyPointList,
	vk.PrimitiveTopologyLineList,
	vk.PrimitiveTopologyLineStrip,
	vk.PrimitiveTopologyTriangleList,
	vk.PrimitiveTopologyTriangleStrip,
	vk.PrimitiveTopologyTriangleFan,
	vk.PrimitiveTopologyTriangleList,
}

// PrimToVulkan returns the Vulkan topology for a GE primitive kind.
func PrimToVulkan(prim int) vk.PrimitiveTopology {
	if prim < 0 || prim >= len(primToVulkan) {
		return vk.PrimitiveTopologyTriangleList
	}
	return primToVulkan[prim]
}

// depthFuncToVulkan maps GE compare functions to Vulkan compare ops,
// indexed by GE_COMP_*.
var depthFuncToVulkan = [8]vk.CompareOp{
	vk.CompareOpNever,
	vk.CompareOpAlways,
	vk.CompareOpEqual,
	vk.CompareOpNotEqual,
	vk.CompareOpLess,
	vk.CompareOpLessOrEqual,
	vk.CompareOpGreater,
	vk.CompareOpGreaterOrEqual,
}

// DepthFuncToVulkan returns the Vulkan compare op for a GE depth
// compare function.
func DepthFuncToVulkan(depthFunc int) vk.CompareOp {
	if depthFunc < 0 || depthFunc >= len(depthFuncToVulkan) {
		return vk.CompareOpAlways
	}
	return depthFuncToVulkan[depthFunc]
}

// VulkanSink records GE draws into a host-owned command buffer.
type VulkanSink struct {
	cmd       vk.CommandBuffer
	vertexBuf vk.Buffer
	indexBuf  vk.Buffer

	stagedVerts []VertexData
	stagedInds  []uint16
}

// NewVulkanSink wraps a command buffer in the recording state together
// with the frame's vertex and index buffers.
func NewVulkanSink(cmd vk.CommandBuffer, vertexBuf, indexBuf vk.Buffer) *VulkanSink {
	return &VulkanSink{cmd: cmd, vertexBuf: vertexBuf, indexBuf: indexBuf}
}

// StagedVertexData returns the vertex data the renderer must upload to
// the bound vertex buffer before submitting the command buffer.
func (s *VulkanSink) StagedVertexData() []VertexData { return s.stagedVerts }

// StagedIndexData returns the index data pending upload to the bound
// index buffer.
func (s *VulkanSink) StagedIndexData() []uint16 { return s.stagedInds }

// BindVertexBuffer stages the decoded vertices and records the vertex
// buffer binding.
func (s *VulkanSink) BindVertexBuffer(verts []VertexData) {
	s.stagedVerts = append(s.stagedVerts[:0], verts...)
	vk.CmdBindVertexBuffers(s.cmd, 0, 1, []vk.Buffer{s.vertexBuf}, []vk.DeviceSize{0})
}

// BindIndexBuffer stages the index stream and records the index buffer
// binding.
func (s *VulkanSink) BindIndexBuffer(inds []uint16) {
	s.stagedInds = append(s.stagedInds[:0], inds...)
	vk.CmdBindIndexBuffer(s.cmd, s.indexBuf, 0, vk.IndexTypeUint16)
}

// Draw records a non-indexed draw over the staged vertices.
func (s *VulkanSink) Draw(prim, vertexCount int) {
	vk.CmdDraw(s.cmd, uint32(vertexCount), 1, 0, 0)
}

// DrawIndexed records an indexed draw over the staged index stream.
func (s *VulkanSink) DrawIndexed(prim, indexCount int) {
	vk.CmdDrawIndexed(s.cmd, uint32(indexCount), 1, 0, 0, 0)
}

// ClearAttachments records an in-renderpass clear of the masked
// attachments. The color-only and alpha-only cases still clear the
// whole color attachment; the renderer masks channels through the
// pipeline's color write mask when the GE clears them separately.
func (s *VulkanSink) ClearAttachments(mask uint8, color uint32, depth float32, stencil uint8, rect ClearRect) {
	attachments := make([]vk.ClearAttachment, 0, 2)

	if mask&(GE_ATTACH_COLOR|GE_ATTACH_ALPHA) != 0 {
		var cv vk.ClearValue
		cv.SetColor([]float32{
			float32(color&0xFF) / 255,
			float32((color>>8)&0xFF) / 255,
			float32((color>>16)&0xFF) / 255,
			float32((color>>24)&0xFF) / 255,
		})
		attachments = append(attachments, vk.ClearAttachment{
			AspectMask:      vk.ImageAspectFlags(vk.ImageAspectColorBit),
			ColorAttachment: 0,
			ClearValue:      cv,
		})
	}
	if mask&GE_ATTACH_DEPTH != 0 {
		var cv vk.ClearValue
		cv.SetDepthStencil(depth, uint32(stencil))
		attachments = append(attachments, vk.ClearAttachment{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit),
			ClearValue: cv,
		})
	}
	if len(attachments) == 0 {
		return
	}

	clearRect := vk.ClearRect{
		Rect: vk.Rect2D{
			Offset: vk.Offset2D{X: int32(rect.X), Y: int32(rect.Y)},
			Extent: vk.Extent2D{Width: uint32(rect.Width), Height: uint32(rect.Height)},
		},
		BaseArrayLayer: 0,
		LayerCount:     1,
	}
	vk.CmdClearAttachments(s.cmd, uint32(len(attachments)), attachments, 1, []vk.ClearRect{clearRect})
}
