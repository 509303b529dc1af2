package pdftext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/njupg/pdftext/internal/encoding"
)

func TestPageResources(t *testing.T) {
	pages := Pages(singlePageDoc)
	if len(pages) != 1 {
		t.Fatalf("discovered %d pages, want 1", len(pages))
	}

	res, err := pages[0].Resources(singlePageDoc)
	if err != nil {
		t.Fatal("Resources:", err)
	}

	if want := "BT /C2_1 12 Tf 1 0 0 1 5 10 Tm <00420041> Tj ET"; res.Content != want {
		t.Errorf("Content = %q, want %q", res.Content, want)
	}

	wantFonts := map[string]encoding.CharacterMap{
		"C2_1": {"0041": "A", "0042": "B"},
	}
	if diff := cmp.Diff(res.Fonts, wantFonts); diff != "" {
		t.Error("fonts did not match expectation:", diff)
	}

	if res.CropW != 612 || res.CropH != 792 {
		t.Errorf("crop box = (%v, %v), want (612, 792)", res.CropW, res.CropH)
	}
}

func TestPageResourcesDefersBrokenFont(t *testing.T) {
	// A second font with no ToUnicode anywhere: resolution records the
	// failure instead of raising, because the font may never be used.
	doc := strings.Replace(singlePageDoc, " /C2_1 2\n", " /C2_1 2\n /TT1 99\n", 1)

	pages := Pages(doc)
	if len(pages) != 1 {
		t.Fatalf("discovered %d pages, want 1", len(pages))
	}

	res, err := pages[0].Resources(doc)
	if err != nil {
		t.Fatal("an unused broken font must not fail resolution:", err)
	}

	if res.fontErr["TT1"] == nil {
		t.Error("broken font's resolution error was not recorded")
	}
	if _, ok := res.Fonts["C2_1"]; !ok {
		t.Error("healthy font missing from the resource set")
	}

	// The content stream never selects TT1, so extraction still succeeds.
	got, err := pages[0].Text(doc)
	if err != nil {
		t.Fatal("Text:", err)
	}
	if got != "AB" {
		t.Errorf("Text = %q, want %q", got, "AB")
	}
}

func TestPageResourcesMissingContentsMarker(t *testing.T) {
	// A span with no "Contents " marker cannot be produced by page
	// discovery, but resolution still guards against it.
	p := Page{Span: "obj 1 0\n Type: /Page\n /Font\n /C2_1 2\n>>\n"}

	_, err := p.Resources(p.Span)

	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("Resources returned %v, want a SyntaxError", err)
	}
	if se.Marker != "Contents" {
		t.Errorf("SyntaxError.Marker = %q, want %q", se.Marker, "Contents")
	}
}
