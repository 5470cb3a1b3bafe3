//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package chunking_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-docpipe-go/chunking"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
)

func TestFixedSizeChunking_Errors(t *testing.T) {
	fc := chunking.NewFixedSizeChunking()

	_, err := fc.Chunk(nil)
	assert.ErrorIs(t, err, chunking.ErrNilDocument)

	_, err = fc.Chunk(&document.Document{Content: "  \n "})
	assert.ErrorIs(t, err, chunking.ErrEmptyDocument)
}

func TestFixedSizeChunking_SmallDocumentSingleChunk(t *testing.T) {
	fc := chunking.NewFixedSizeChunking(chunking.WithChunkSize(100))
	doc := &document.Document{ID: "doc", Name: "doc", Content: "short content"}

	chunks, err := fc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short content", chunks[0].Content)
	assert.Equal(t, 1, chunks[0].Metadata[document.MetaChunkIndex])
}

func TestFixedSizeChunking_SplitsWithOverlap(t *testing.T) {
	fc := chunking.NewFixedSizeChunking(
		chunking.WithChunkSize(10),
		chunking.WithOverlap(2),
	)
	doc := &document.Document{
		ID:       "doc",
		Name:     "doc",
		Content:  strings.Repeat("abcdefgh", 4), // 32 runes
		Metadata: map[string]any{document.MetaPageNumber: 2},
	}

	chunks, err := fc.Chunk(doc)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk.Content)), 10, "chunk %d too large", i)
		// Parent metadata carries over, chunk index is added.
		assert.Equal(t, 2, chunk.Metadata[document.MetaPageNumber])
		assert.Equal(t, i+1, chunk.Metadata[document.MetaChunkIndex])
	}

	// Consecutive chunks share the overlap region.
	first := []rune(chunks[0].Content)
	second := []rune(chunks[1].Content)
	assert.Equal(t, string(first[len(first)-2:]), string(second[:2]))
}

func TestFixedSizeChunking_MultibyteContent(t *testing.T) {
	fc := chunking.NewFixedSizeChunking(chunking.WithChunkSize(4), chunking.WithOverlap(0))
	doc := &document.Document{ID: "doc", Name: "doc", Content: "日本語のテキスト"}

	chunks, err := fc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "日本語の", chunks[0].Content)
	assert.Equal(t, "テキスト", chunks[1].Content)
}

func TestNewFixedSizeChunking_ClampsInvalidOptions(t *testing.T) {
	// Overlap >= chunk size would never advance; the constructor clamps it.
	fc := chunking.NewFixedSizeChunking(
		chunking.WithChunkSize(8),
		chunking.WithOverlap(20),
	)
	doc := &document.Document{ID: "doc", Name: "doc", Content: strings.Repeat("x", 50)}

	chunks, err := fc.Chunk(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, chunks)
}
