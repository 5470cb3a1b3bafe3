//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package text provides a plain text document reader.
package text

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"trpc.group/trpc-go/trpc-docpipe-go/document"
	idocument "trpc.group/trpc-go/trpc-docpipe-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

var (
	// supportedExtensions defines the file extensions supported by this reader.
	supportedExtensions = []string{".txt", ".text", ".log"}
)

// init registers the text reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads plain text documents. Form feeds (\f) mark page boundaries,
// which is how most text dumps of paginated sources encode them; text
// without form feeds becomes a single page.
type Reader struct {
	transformers []transform.Transformer
}

// New creates a new text reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{
		transformers: config.Transformers,
	}
}

// ReadFromReader reads text content from an io.Reader and returns one document per page.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read text content: %w", err)
	}
	return r.buildPages(string(content), name)
}

// ReadFromFile reads text content from a file path and returns one document per page.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open text file: %w", err)
	}
	defer file.Close()

	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(fileName, file)
}

// ReadFromURL reads text content from a URL and returns one document per page.
func (r *Reader) ReadFromURL(url string) ([]*document.Document, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}
	return r.ReadFromReader(url, resp.Body)
}

// buildPages splits content on form feeds and wraps each page in a document.
func (r *Reader) buildPages(content, name string) ([]*document.Document, error) {
	pages := strings.Split(content, "\f")
	docs := make([]*document.Document, 0, len(pages))
	for i, page := range pages {
		page = strings.Trim(page, "\n")
		doc := idocument.CreatePage(page, name, i+1, len(pages))
		doc.Metadata[document.MetaSource] = r.Name()
		docs = append(docs, doc)
	}
	return reader.ApplyTransformers(docs, r.transformers)
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "TextReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
