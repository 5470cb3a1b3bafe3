//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
)

func TestDocument_Lines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "empty content",
			content:  "",
			expected: nil,
		},
		{
			name:     "single line",
			content:  "hello",
			expected: []string{"hello"},
		},
		{
			name:     "multiple lines",
			content:  "a\nb\nc",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "trailing newline dropped",
			content:  "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "interior blank line preserved",
			content:  "a\n\nb",
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &document.Document{Content: tt.content}
			assert.Equal(t, tt.expected, doc.Lines())
		})
	}
}

func TestDocument_IsEmpty(t *testing.T) {
	assert.True(t, (&document.Document{Content: ""}).IsEmpty())
	assert.True(t, (&document.Document{Content: " \n\t"}).IsEmpty())
	assert.False(t, (&document.Document{Content: "x"}).IsEmpty())
}

func TestDocument_PageNumber(t *testing.T) {
	doc := &document.Document{Metadata: map[string]any{document.MetaPageNumber: 3}}
	assert.Equal(t, 3, doc.PageNumber())

	doc = &document.Document{Metadata: map[string]any{document.MetaPageNumber: float64(7)}}
	assert.Equal(t, 7, doc.PageNumber())

	doc = &document.Document{}
	assert.Equal(t, 0, doc.PageNumber())
}

func TestDocument_Clone(t *testing.T) {
	doc := &document.Document{
		ID:       "id",
		Name:     "name",
		Content:  "content",
		Metadata: map[string]any{document.MetaPageNumber: 1},
	}
	clone := doc.Clone()

	assert.Equal(t, doc.ID, clone.ID)
	assert.Equal(t, doc.Content, clone.Content)

	clone.Metadata[document.MetaPageNumber] = 2
	assert.Equal(t, 1, doc.Metadata[document.MetaPageNumber], "clone metadata must not alias original")
}
