// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers tables from PDF pages by clustering positioned
// text fragments into rows and columns.
package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/tablegrab/internal/pagespec"
	"github.com/pdiddy/tablegrab/internal/table"
	"github.com/pdiddy/tablegrab/pkg/types"
)

// ErrNoTables reports that the requested pages produced no tabular content.
var ErrNoTables = errors.New("no tables found in the specified pages")

// Fragment is one positioned piece of text on a page.
type Fragment struct {
	Text string
	X    float64
	Y    float64
	W    float64
}

// Document is a page-addressable source of text fragments. The production
// implementation wraps a PDF reader; tests supply synthetic fragments.
type Document interface {
	PageCount() int
	PageFragments(page int) ([]Fragment, error)
	Close() error
}

// Opener opens a Document from a file path.
type Opener func(path string) (Document, error)

// Extractor turns PDF pages into tables. The document opener is injected so
// the clustering logic is testable without PDF fixtures.
type Extractor struct {
	open Opener
	cfg  types.ExtractConfig
}

const (
	defaultRowTolerance = 2.0
	defaultMinGapWidth  = 10.0
	defaultMinColumns   = 2
)

// New returns an Extractor reading real PDF files.
func New(cfg types.ExtractConfig) *Extractor {
	return NewWithOpener(cfg, openPDF)
}

// NewWithOpener returns an Extractor using a custom document opener.
func NewWithOpener(cfg types.ExtractConfig, open Opener) *Extractor {
	if cfg.RowTolerance <= 0 {
		cfg.RowTolerance = defaultRowTolerance
	}
	if cfg.MinGapWidth <= 0 {
		cfg.MinGapWidth = defaultMinGapWidth
	}
	if cfg.MinColumns <= 0 {
		cfg.MinColumns = defaultMinColumns
	}
	return &Extractor{open: open, cfg: cfg}
}

// Tables extracts one table per requested page that carries tabular content.
// Pages without a row of at least MinColumns populated cells contribute
// nothing. An overall empty result is ErrNoTables.
func (e *Extractor) Tables(path string, pages pagespec.PageSet, w io.Writer) ([]*table.Table, error) {
	doc, err := e.open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	resolved := pages.Resolve(doc.PageCount())
	fmt.Fprintf(w, "Extracting tables from pages: %s\n", pagespec.PageSet{Pages: resolved})

	var tables []*table.Table
	for _, pageNum := range resolved {
		fragments, err := doc.PageFragments(pageNum)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}

		t := e.pageTable(fragments, pageNum)
		if t != nil {
			tables = append(tables, t)
		}
	}

	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return tables, nil
}

// pageTable clusters a page's fragments into a table, or nil when the page
// has no tabular content.
func (e *Extractor) pageTable(fragments []Fragment, pageNum int) *table.Table {
	rows := clusterRows(fragments, e.cfg.RowTolerance)
	if len(rows) == 0 {
		return nil
	}

	boundaries := columnBoundaries(fragments, e.cfg.MinGapWidth)
	if len(boundaries) < e.cfg.MinColumns {
		return nil
	}

	t := &table.Table{Page: pageNum}
	tabular := false
	for _, row := range rows {
		cells := rowCells(row, boundaries)
		if populated(cells) >= e.cfg.MinColumns {
			tabular = true
		}
		t.Rows = append(t.Rows, cells)
	}
	if !tabular {
		return nil
	}
	return t
}

func populated(cells []table.Cell) int {
	n := 0
	for _, c := range cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// pdfDocument adapts a ledongthuc/pdf reader to the Document interface.
type pdfDocument struct {
	file   io.Closer
	reader *pdf.Reader
}

func openPDF(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfDocument{file: f, reader: r}, nil
}

func (d *pdfDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) PageFragments(page int) ([]Fragment, error) {
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	texts := p.Content().Text
	fragments := make([]Fragment, 0, len(texts))
	for _, t := range texts {
		fragments = append(fragments, Fragment{Text: t.S, X: t.X, Y: t.Y, W: t.W})
	}
	return fragments, nil
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}
