package images_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"artgallery/internal/images"
)

var palette = images.Palette{Border: "240", Text: "252", Faint: "243"}

func TestRenderFramesToLayout(t *testing.T) {
	img := images.Image{Name: "ada", Width: 640, Height: 480, Found: true}
	out := images.Render(img, images.Layout{Width: 20, Height: 6}, palette)

	if w := lipgloss.Width(out); w != 20 {
		t.Fatalf("expected width 20, got %d\n%s", w, out)
	}
	if h := lipgloss.Height(out); h != 6 {
		t.Fatalf("expected height 6, got %d\n%s", h, out)
	}
	if !strings.Contains(out, "ada") || !strings.Contains(out, "640×480") {
		t.Fatalf("expected name and dimensions, got\n%s", out)
	}
}

func TestRenderMarksRotationAndPlaceholder(t *testing.T) {
	out := images.Render(images.Image{Name: "wide", Width: 2, Height: 1}, images.Layout{Width: 20, Height: 6, Rotated: true}, palette)
	if !strings.Contains(out, "↺") {
		t.Fatalf("expected rotation marker, got\n%s", out)
	}

	out = images.Render(images.Image{Name: "gone"}, images.Fit(20, 5), palette)
	if !strings.Contains(out, "no image") {
		t.Fatalf("expected placeholder text, got\n%s", out)
	}
}

func TestRenderTinyLayouts(t *testing.T) {
	if out := images.Render(images.Image{Name: "ada"}, images.Layout{}, palette); out != "" {
		t.Fatalf("expected empty output for empty layout, got %q", out)
	}
	out := images.Render(images.Image{Name: "a-very-long-identifier"}, images.Layout{Width: 6, Height: 1}, palette)
	if w := lipgloss.Width(out); w > 6 {
		t.Fatalf("expected truncated output, got width %d: %q", w, out)
	}
}
