//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package chunking provides document chunking strategies and utilities.
package chunking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-docpipe-go/document"
)

// Chunking errors.
var (
	// ErrNilDocument indicates a nil document was passed to a strategy.
	ErrNilDocument = errors.New("document is nil")
	// ErrEmptyDocument indicates a document without content.
	ErrEmptyDocument = errors.New("document is empty")
)

// Default chunking parameters.
const (
	defaultChunkSize = 1024
	defaultOverlap   = 128
)

// Strategy splits a document into retrieval-sized chunks.
type Strategy interface {
	// Chunk splits the document and returns the resulting chunks.
	Chunk(doc *document.Document) ([]*document.Document, error)
}

// FixedSizeChunking splits content into rune-bounded chunks with optional
// overlap between consecutive chunks.
type FixedSizeChunking struct {
	chunkSize int
	overlap   int
}

// Option is a functional option for configuring FixedSizeChunking.
type Option func(*FixedSizeChunking)

// WithChunkSize sets the maximum size of each chunk in runes.
func WithChunkSize(size int) Option {
	return func(fc *FixedSizeChunking) {
		fc.chunkSize = size
	}
}

// WithOverlap sets the number of runes repeated between consecutive chunks.
func WithOverlap(overlap int) Option {
	return func(fc *FixedSizeChunking) {
		fc.overlap = overlap
	}
}

// NewFixedSizeChunking creates a fixed-size chunking strategy with options.
func NewFixedSizeChunking(opts ...Option) *FixedSizeChunking {
	fc := &FixedSizeChunking{
		chunkSize: defaultChunkSize,
		overlap:   defaultOverlap,
	}
	for _, opt := range opts {
		opt(fc)
	}
	// Validate parameters.
	if fc.chunkSize <= 0 {
		fc.chunkSize = defaultChunkSize
	}
	if fc.overlap < 0 {
		fc.overlap = 0
	}
	if fc.overlap >= fc.chunkSize {
		fc.overlap = min(defaultOverlap, fc.chunkSize-1)
	}
	return fc
}

// Chunk splits the document into fixed-size chunks.
func (fc *FixedSizeChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, ErrEmptyDocument
	}

	runes := []rune(doc.Content)
	if len(runes) <= fc.chunkSize {
		return []*document.Document{fc.createChunk(doc, doc.Content, 1)}, nil
	}

	var chunks []*document.Document
	step := fc.chunkSize - fc.overlap
	for start, index := 0, 1; start < len(runes); start, index = start+step, index+1 {
		end := min(start+fc.chunkSize, len(runes))
		chunks = append(chunks, fc.createChunk(doc, string(runes[start:end]), index))
		if end == len(runes) {
			break
		}
	}
	return chunks, nil
}

// createChunk creates a chunk document carrying over the parent metadata.
func (fc *FixedSizeChunking) createChunk(parent *document.Document, content string, index int) *document.Document {
	metadata := make(map[string]any, len(parent.Metadata)+1)
	for k, v := range parent.Metadata {
		metadata[k] = v
	}
	metadata[document.MetaChunkIndex] = index

	return &document.Document{
		ID:        fmt.Sprintf("%s_chunk_%d", parent.ID, index),
		Name:      fmt.Sprintf("%s (chunk %d)", parent.Name, index),
		Content:   strings.TrimSpace(content),
		Metadata:  metadata,
		CreatedAt: parent.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
}
