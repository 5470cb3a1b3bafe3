//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers.
// This interface allows reading from any io.Reader source, such as files or HTTP responses.
package reader

import (
	"fmt"
	"io"

	"trpc.group/trpc-go/trpc-docpipe-go/document"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

// ParserMode selects how raw page content is turned into lines.
type ParserMode int

const (
	// ParserModeLinear extracts text in stream order. Fast, and adequate
	// for single-column documents.
	ParserModeLinear ParserMode = iota
	// ParserModeLayout groups text by visual rows before emitting lines,
	// preserving reading order in multi-column layouts.
	ParserModeLayout
)

// String returns a human-readable name for the mode.
func (m ParserMode) String() string {
	switch m {
	case ParserModeLinear:
		return "linear"
	case ParserModeLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// Config holds configuration for readers.
type Config struct {
	ParserMode   ParserMode
	Transformers []transform.Transformer
}

// Option is a functional option for configuring readers.
type Option func(*Config)

// WithParserMode sets how page text is extracted. Only readers of paginated
// formats honor it.
func WithParserMode(mode ParserMode) Option {
	return func(c *Config) {
		c.ParserMode = mode
	}
}

// WithTransformers sets transformers applied to the page set before the
// reader returns it.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(c *Config) {
		c.Transformers = append(c.Transformers, transformers...)
	}
}

// ApplyTransformers runs each transformer's Preprocess over the documents
// in order. Shared by reader implementations.
func ApplyTransformers(docs []*document.Document, transformers []transform.Transformer) ([]*document.Document, error) {
	var err error
	for _, tr := range transformers {
		docs, err = tr.Preprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("failed to apply preprocess transformer %s: %w", tr.Name(), err)
		}
	}
	return docs, nil
}

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns a list of documents.
	// The name parameter is used to identify the source (e.g., filename, URL).
	ReadFromReader(name string, r io.Reader) ([]*document.Document, error)

	// ReadFromFile reads content from a file path and returns a list of documents.
	ReadFromFile(filePath string) ([]*document.Document, error)

	// ReadFromURL reads content from a URL and returns a list of documents.
	ReadFromURL(url string) ([]*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader supports.
	// Extensions should include the dot prefix (e.g., ".pdf", ".txt").
	SupportedExtensions() []string
}
