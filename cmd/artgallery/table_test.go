package main

import (
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable("Works", []column{
		{header: "Title"},
		{header: "Works", align: text.AlignRight},
	}, [][]string{{"Notes", "2"}, {"Diagram"}})

	requireContains(t, out, "Title")
	requireContains(t, out, "Works")
	requireNotContains(t, out, "TITLE")
	requireContains(t, out, "Diagram")
}

func TestRenderTableWithoutColumns(t *testing.T) {
	if out := renderTable("", nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
