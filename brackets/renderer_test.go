package brackets

import (
	"image/png"
	"os"
	"testing"
)

func TestRenderBracket(t *testing.T) {
	pairings := []Pairing{
		{TeamA: "Team A", TeamB: "Team B"},
		{TeamA: "Team C", TeamB: "Team D"},
		{TeamA: "Team E", TeamB: "Team F"},
		{TeamA: "Team G", TeamB: "Team H"},
		{TeamA: "Team I", TeamB: "Team J"},
		{TeamA: "Team K", TeamB: "Team L"},
		{TeamA: "Team M", TeamB: "Team N"},
		{TeamA: "Team O", TeamB: "Team P"},
	}

	path, err := RenderBracket(pairings, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("rendered file is missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("rendered file is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		t.Errorf("rendered image has empty bounds: %v", bounds)
	}
}

func TestRenderBracketEmpty(t *testing.T) {
	if _, err := RenderBracket(nil, 1); err == nil {
		t.Error("expected an error for an empty pairing list")
	}
}
