package store

import (
	"testing"

	"artgallery/internal/catalog"
)

func TestApplyEmptyTextReturnsAllInOrder(t *testing.T) {
	in := []catalog.Artist{{Name: "b"}, {Name: "a"}}
	out := Apply(in, "")
	if len(out) != 2 || out[0].Name != "b" || out[1].Name != "a" {
		t.Fatalf("unexpected result: %#v", out)
	}
	out[0].Name = "changed"
	if in[0].Name != "b" {
		t.Fatal("Apply must not alias the input slice")
	}
}

func TestApplyUnicodeFolding(t *testing.T) {
	in := []catalog.Artist{{Name: "Айвазовский"}, {Name: "Kandinsky"}}
	out := Apply(in, "АЙВ")
	if len(out) != 1 || out[0].Name != "Айвазовский" {
		t.Fatalf("unexpected result: %#v", out)
	}
}
