package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/gfx"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E6E6E6"})
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
)

type summary struct {
	source      string
	shapes      int
	data        gfx.MeshData
	mesh        *gfx.Mesh
	shaderWords int
	preview     string
}

func (s summary) rows() [][2]string {
	source := s.source
	if source == "" {
		source = "demo scene"
	}
	rows := [][2]string{
		{"source", source},
		{"shapes", fmt.Sprint(s.shapes)},
		{"vertices", fmt.Sprintf("%d (%d bytes)", len(s.data.Vertices), len(s.data.Vertices)*gfx.VertexStride)},
		{"indices", fmt.Sprintf("%d (%d bytes)", len(s.data.Indices), len(s.data.Indices)*4)},
		{"triangles", fmt.Sprint(s.data.Triangles())},
	}
	if b, ok := s.data.Bounds(); ok {
		rows = append(rows, [2]string{"bounds", fmt.Sprintf("(%g, %g) %gx%g", b.X, b.Y, b.W, b.H)})
	}
	rows = append(rows,
		[2]string{"mesh id", fmt.Sprint(s.mesh.ID())},
		[2]string{"vertex buffer", s.mesh.VertexBuffer().String()},
		[2]string{"index buffer", s.mesh.IndexBuffer().String()},
	)
	if s.shaderWords > 0 {
		rows = append(rows, [2]string{"shader", fmt.Sprintf("%d SPIR-V words", s.shaderWords)})
	}
	if s.preview != "" {
		rows = append(rows, [2]string{"preview", s.preview})
	}
	return rows
}

func (s summary) render() string {
	lines := []string{titleStyle.Render("gfxmesh")}
	for _, r := range s.rows() {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
