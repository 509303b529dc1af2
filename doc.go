// Package pdftext extracts reading-order text from a decompressed,
// text-encoded page-description document.
//
// The input is the raw text of a page-description file whose streams have
// already been decoded to text: objects appear as "obj <N> 0" headers with
// ASCII dictionary keys (/Type, /Contents, /Font, /ToUnicode, /CropBox),
// character maps as begincmap...endcmap blocks and content streams as quoted
// literals. The caller reads the file and hands the whole text to Parse;
// everything else happens in memory.
//
// Per page, the pipeline resolves the page's content stream and its font
// character maps, interprets the positioning and show-text operator subset
// (Tm, Td, TD, T*, Tj, TJ) while tracking the text matrix, decodes glyph
// codes through the active font's map, and orders the decoded fragments by
// their page position. Unmapped glyph codes and show tags with no active
// font are dropped rather than failing: partial output is preferred over no
// output. Missing structural markers surface as *SyntaxError, malformed
// numeric operands as *FormatError.
package pdftext
