//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package markdown provides a markdown document reader. Thematic breaks
// (---, ***) delimit pages, so exported documents that encode page breaks
// as horizontal rules keep their pagination through the pipeline.
package markdown

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
	idocument "trpc.group/trpc-go/trpc-docpipe-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

var (
	// supportedExtensions defines the file extensions supported by this reader.
	supportedExtensions = []string{".md", ".markdown"}
)

// init registers the markdown reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads markdown documents and splits them into pages at thematic
// breaks.
type Reader struct {
	md           goldmark.Markdown
	transformers []transform.Transformer
}

// New creates a new markdown reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{
		md:           goldmark.New(),
		transformers: config.Transformers,
	}
}

// ReadFromReader reads markdown content from an io.Reader and returns one document per page.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown content: %w", err)
	}
	return r.buildPages(content, name)
}

// ReadFromFile reads markdown content from a file path and returns one document per page.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open markdown file: %w", err)
	}
	defer file.Close()

	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(fileName, file)
}

// ReadFromURL reads markdown content from a URL and returns one document per page.
func (r *Reader) ReadFromURL(url string) ([]*document.Document, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download markdown: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}
	return r.ReadFromReader(url, resp.Body)
}

// buildPages splits the source at top-level thematic breaks and wraps each
// slice in a document.
func (r *Reader) buildPages(source []byte, name string) ([]*document.Document, error) {
	pages := r.splitPages(source)
	docs := make([]*document.Document, 0, len(pages))
	for i, page := range pages {
		doc := idocument.CreatePage(page, name, i+1, len(pages))
		doc.Metadata[document.MetaSource] = r.Name()
		docs = append(docs, doc)
	}
	return reader.ApplyTransformers(docs, r.transformers)
}

// splitPages returns the raw source slices between top-level thematic
// breaks, trimmed of surrounding blank lines. Source without breaks yields
// a single page.
func (r *Reader) splitPages(source []byte) []string {
	root := r.md.Parser().Parse(text.NewReader(source))

	var pages []string
	pageStart := 0
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if _, ok := node.(*ast.ThematicBreak); !ok {
			continue
		}

		// The page ends where the block before the break ends; the next
		// page starts where the block after the break starts.
		pageEnd := pageStart
		if prev := node.PreviousSibling(); prev != nil {
			if _, stop, ok := nodeSpan(prev); ok && stop > pageStart {
				pageEnd = stop
			}
		}
		pages = append(pages, cutPage(source, pageStart, pageEnd))

		pageStart = len(source)
		if next := node.NextSibling(); next != nil {
			if start, _, ok := nodeSpan(next); ok {
				pageStart = start
			}
		}
	}
	pages = append(pages, cutPage(source, pageStart, len(source)))
	return pages
}

// nodeSpan returns the byte range of a node in the source, derived from its
// block line segments and text segments.
func nodeSpan(node ast.Node) (start, stop int, found bool) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			if lines := n.Lines(); lines != nil && lines.Len() > 0 {
				extend(&start, &stop, &found, lines.At(0).Start, lines.At(lines.Len()-1).Stop)
			}
		}
		if textNode, ok := n.(*ast.Text); ok {
			extend(&start, &stop, &found, textNode.Segment.Start, textNode.Segment.Stop)
		}
		return ast.WalkContinue, nil
	})
	return start, stop, found
}

// extend widens the [start, stop) range to include [s, e).
func extend(start, stop *int, found *bool, s, e int) {
	if !*found {
		*start, *stop, *found = s, e, true
		return
	}
	if s < *start {
		*start = s
	}
	if e > *stop {
		*stop = e
	}
}

// cutPage slices the source and trims surrounding blank lines.
func cutPage(source []byte, start, stop int) string {
	if start >= stop {
		return ""
	}
	return strings.Trim(string(source[start:stop]), "\n")
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "MarkdownReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
