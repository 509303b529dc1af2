package pdftext

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// A one-page document in the decompressed dump format: a page object, its
// quoted content stream, the font declaration and the font's cmap.
const singlePageDoc = `obj 1 0
 Type: /Page
 /CropBox [0 0 612 792]
 Contents 4 0 R
 /Font
 /C2_1 2
>>
obj 4 0
 Length: 58
'BT /C2_1 12 Tf 1 0 0 1 5 10 Tm <00420041> Tj ET'
obj 2 0
 Type: /Font
 /ToUnicode 3
obj 3 0
 Filter: /FlateDecode
begincmap
<0041> <0041>
<0042> <0042>
endcmap
`

const secondPage = `obj 5 0
 Type: /Page
 /CropBox [0 0 612 792]
 Contents 8 0 R
 /Font
 /C2_2 6
>>
obj 8 0
 Length: 44
'BT /C2_2 9 Tf 1 0 0 1 7 20 Tm <0043> Tj ET'
obj 6 0
 Type: /Font
 /ToUnicode 7
obj 7 0
begincmap
<0043> <0043>
endcmap
`

func TestParseSinglePage(t *testing.T) {
	got, err := Parse(singlePageDoc)
	if err != nil {
		t.Fatal("Parse:", err)
	}

	// Tag <00420041> decodes chunk 0042 then 0041, each prepended: "AB".
	if got != "AB" {
		t.Errorf("Parse = %q, want %q", got, "AB")
	}
}

func TestParseNoPages(t *testing.T) {
	got, err := Parse("obj 1 0\n nothing page-shaped in here\n")
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if got != "" {
		t.Errorf("Parse = %q, want empty output", got)
	}
}

func TestParseConcatenatesInDocumentOrder(t *testing.T) {
	doc := singlePageDoc + secondPage

	pages := Pages(doc)
	if len(pages) != 2 {
		t.Fatalf("discovered %d pages, want 2", len(pages))
	}

	got, err := Parse(doc)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	if got != "ABC" {
		t.Errorf("Parse = %q, want %q", got, "ABC")
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(singlePageDoc)
	if err != nil {
		t.Fatal("Parse:", err)
	}
	second, err := Parse(singlePageDoc)
	if err != nil {
		t.Fatal("Parse:", err)
	}

	if first != second {
		t.Errorf("re-parse differed: %q then %q", first, second)
	}
}

func TestParseMissingContentLiteral(t *testing.T) {
	doc := strings.Replace(singlePageDoc, "'BT", "BT", 1)
	doc = strings.Replace(doc, "Tj ET'", "Tj ET", 1)

	_, err := Parse(doc)

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Parse returned %v, want a SyntaxError", err)
	}
	if se.Marker != "content literal" {
		t.Errorf("SyntaxError.Marker = %q, want %q", se.Marker, "content literal")
	}
	if !strings.Contains(err.Error(), "page 0") {
		t.Errorf("error %q does not name the failing page", err)
	}
}

func TestParseMissingCropBox(t *testing.T) {
	doc := strings.Replace(singlePageDoc, " /CropBox [0 0 612 792]\n", "", 1)

	_, err := Parse(doc)

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Parse returned %v, want a SyntaxError", err)
	}
	if se.Marker != "/CropBox" {
		t.Errorf("SyntaxError.Marker = %q, want %q", se.Marker, "/CropBox")
	}
}

func TestParseUsedFontWithoutToUnicode(t *testing.T) {
	// Object 2 loses its ToUnicode entry while the content stream still
	// selects C2_1, so resolution must fail when the font is used.
	doc := strings.Replace(singlePageDoc, " /ToUnicode 3\n", "", 1)

	_, err := Parse(doc)

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Parse returned %v, want a SyntaxError", err)
	}
	if se.Marker != "/ToUnicode" {
		t.Errorf("SyntaxError.Marker = %q, want %q", se.Marker, "/ToUnicode")
	}
}

func TestParseMalformedOperands(t *testing.T) {
	doc := strings.Replace(singlePageDoc, "1 0 0 1 5 10 Tm", "1 0 0 1 x y Tm", 1)

	_, err := Parse(doc)

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Parse returned %v, want a FormatError", err)
	}
}

func TestParseContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseContext(ctx, singlePageDoc)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseContext with cancelled context returned %v", err)
	}
}
