package pdftext

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/njupg/pdftext/internal/scan"
)

// Pages returns every page object discovered in the document, in document
// order.
func Pages(doc string) []Page {
	spans := scan.PageObjects(doc)
	pages := make([]Page, len(spans))
	for i, s := range spans {
		pages[i] = Page{Index: i, Span: s}
	}
	return pages
}

// Parse extracts the text of every page in the document and returns the
// concatenation in document order. A document with no discoverable pages
// yields the empty string. The first unrecovered per-page failure aborts the
// whole document.
func Parse(doc string) (string, error) {
	return ParseContext(context.Background(), doc)
}

// ParseContext is Parse with cancellation. Pages share no mutable state, so
// they are processed concurrently; per-page output is reassembled in document
// order before concatenation.
func ParseContext(ctx context.Context, doc string) (string, error) {
	pages := Pages(doc)
	if len(pages) == 0 {
		return "", nil
	}

	out := make([]string, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range pages {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := p.Text(doc)
			if err != nil {
				return fmt.Errorf("page %d: %w", p.Index, err)
			}
			out[p.Index] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(out, ""), nil
}
