package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"meshview/internal/scene"
)

// sceneStats is the one line summary next to the file name
func sceneStats(v *scene.View) string {
	mesh := v.Mesh()
	return fmt.Sprintf("%d vertices · %d triangles · %s", len(mesh.Vertices), len(mesh.Triangles), v.Mode())
}

// buildSceneInfo renders the details page for the info pager
func buildSceneInfo(h *scene.Handle) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var b strings.Builder
	field := func(name string, value any) {
		b.WriteString(fmt.Sprintf("  %s %v\n", keyStyle.Render(fmt.Sprintf("%-12s", name+":")), value))
	}

	v := h.View
	mesh := v.Mesh()
	bounds := mesh.Bounds()
	size := r3.Sub(bounds.Max, bounds.Min)
	cam := v.Camera()

	title := mesh.Name
	if title == "" {
		title = filepath.Base(h.SourcePath)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Source"))
	b.WriteString("\n")
	field("Path", h.SourcePath)
	field("Scene ID", h.ID)
	field("Loaded", h.CreatedAt.Format(time.DateTime))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Geometry"))
	b.WriteString("\n")
	field("Vertices", len(mesh.Vertices))
	field("Triangles", len(mesh.Triangles))
	field("Edges", v.EdgeCount())
	field("Size", fmt.Sprintf("%.3f x %.3f x %.3f", size.X, size.Y, size.Z))
	field("Min", fmt.Sprintf("(%.3f, %.3f, %.3f)", bounds.Min.X, bounds.Min.Y, bounds.Min.Z))
	field("Max", fmt.Sprintf("(%.3f, %.3f, %.3f)", bounds.Max.X, bounds.Max.Y, bounds.Max.Z))
	b.WriteString("\n")

	if len(mesh.Objects) > 0 {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Objects (%d)", len(mesh.Objects))))
		b.WriteString("\n")
		for _, o := range mesh.Objects {
			b.WriteString(fmt.Sprintf("  %s  %d triangles\n", o.Name, o.Count))
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Camera"))
	b.WriteString("\n")
	field("Mode", v.Mode())
	field("Yaw", fmt.Sprintf("%.1f°", cam.Yaw*180/math.Pi))
	field("Pitch", fmt.Sprintf("%.1f°", cam.Pitch*180/math.Pi))
	field("Distance", fmt.Sprintf("%.3f", cam.Distance))

	return b.String()
}
