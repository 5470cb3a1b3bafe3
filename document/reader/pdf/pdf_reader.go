//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides a PDF document reader that emits one document per
// page, so page-positional transformers such as header/footer stripping can
// run before chunking.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
	idocument "trpc.group/trpc-go/trpc-docpipe-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

var (
	// supportedExtensions defines the file extensions supported by this reader.
	supportedExtensions = []string{".pdf"}
)

// init registers the PDF reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads PDF documents page by page.
type Reader struct {
	parserMode   reader.ParserMode
	transformers []transform.Transformer
}

// New creates a new PDF reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{
		ParserMode: reader.ParserModeLinear,
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Reader{
		parserMode:   config.ParserMode,
		transformers: config.Transformers,
	}
}

// ReadFromReader reads PDF content from an io.Reader and returns one document per page.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF content: %w", err)
	}
	return r.readPages(bytes.NewReader(content), int64(len(content)), name)
}

// ReadFromFile reads PDF content from a file path and returns one document per page.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	return r.ReadFromFileWithContext(context.Background(), filePath)
}

// ReadFromFileWithContext reads PDF content from a file path with context support.
func (r *Reader) ReadFromFileWithContext(ctx context.Context, filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	// Get file name without extension.
	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.readPages(file, fileInfo.Size(), fileName)
}

// ReadFromURL reads PDF content from a URL and returns one document per page.
func (r *Reader) ReadFromURL(urlStr string) ([]*document.Document, error) {
	return r.ReadFromURLWithContext(context.Background(), urlStr)
}

// ReadFromURLWithContext reads PDF content from a URL with context support.
func (r *Reader) ReadFromURLWithContext(ctx context.Context, urlStr string) ([]*document.Document, error) {
	// Validate URL before making HTTP request.
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %s", parsedURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	return r.ReadFromReader(extractFileNameFromURL(urlStr), resp.Body)
}

// readPages extracts per-page text and wraps each page in a document.
func (r *Reader) readPages(ra io.ReaderAt, size int64, name string) ([]*document.Document, error) {
	pdfReader, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	totalPages := pdfReader.NumPage()
	docs := make([]*document.Document, 0, totalPages)
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := pdfReader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text := r.extractPageText(page)
		doc := idocument.CreatePage(text, name, pageIndex, totalPages)
		doc.Metadata[document.MetaSource] = r.Name()
		docs = append(docs, doc)
	}

	return reader.ApplyTransformers(docs, r.transformers)
}

// extractPageText extracts the text of a single page according to the
// configured parser mode, trimmed of surrounding blank lines so padding
// never enters the candidate windows. Extraction errors degrade to an empty
// page, the pipeline treats those as windows of length zero.
func (r *Reader) extractPageText(page pdf.Page) string {
	if r.parserMode == reader.ParserModeLayout {
		rows, err := page.GetTextByRow()
		if err != nil {
			return ""
		}
		var sb strings.Builder
		for i, row := range rows {
			if i > 0 {
				sb.WriteString("\n")
			}
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
		}
		return strings.Trim(sb.String(), "\n")
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.Trim(text, "\n")
}

// extractFileNameFromURL extracts a file name from a URL.
func extractFileNameFromURL(url string) string {
	// Extract the last part of the URL as the file name.
	parts := strings.Split(url, "/")
	if len(parts) == 0 {
		return "pdf_document"
	}
	fileName := parts[len(parts)-1]
	// Remove query parameters and fragments.
	if idx := strings.Index(fileName, "?"); idx != -1 {
		fileName = fileName[:idx]
	}
	if idx := strings.Index(fileName, "#"); idx != -1 {
		fileName = fileName[:idx]
	}
	fileName = strings.TrimSuffix(fileName, ".pdf")
	if fileName == "" {
		return "pdf_document"
	}
	return fileName
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "PDFReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
