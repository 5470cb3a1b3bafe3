//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

func TestMarkdownReader_NoBreaksSinglePage(t *testing.T) {
	rdr := New()
	docs, err := rdr.ReadFromReader("notes", strings.NewReader("just one page\n\nwith two paragraphs"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0].Content, "just one page")
	assert.Equal(t, 1, docs[0].PageNumber())
}

func TestMarkdownReader_ThematicBreaksSplitPages(t *testing.T) {
	content := strings.Join([]string{
		"Acme Corp",
		"",
		"first page body",
		"",
		"---",
		"",
		"Acme Corp",
		"",
		"second page body",
		"",
		"---",
		"",
		"Acme Corp",
		"",
		"third page body",
	}, "\n")

	rdr := New()
	docs, err := rdr.ReadFromReader("report", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, docs, 3)

	for i, doc := range docs {
		assert.Equal(t, i+1, doc.PageNumber())
		assert.True(t, strings.HasPrefix(doc.Content, "Acme Corp"),
			"page %d should start with the repeated line: %q", i+1, doc.Content)
		assert.NotContains(t, doc.Content, "---")
	}
	assert.Contains(t, docs[1].Content, "second page body")
}

func TestMarkdownReader_WithHeaderFooterTrim(t *testing.T) {
	content := strings.Join([]string{
		"Acme Corp",
		"",
		"first page body",
		"",
		"***",
		"",
		"Acme Corp",
		"",
		"second page body",
		"",
		"***",
		"",
		"Acme Corp",
		"",
		"third page body",
	}, "\n")

	rdr := New(reader.WithTransformers(transform.NewHeaderFooterTrim(
		transform.WithMaxLines(1),
		transform.WithRepeatThreshold(1.0),
		transform.WithMaxDifferences(0),
	)))

	docs, err := rdr.ReadFromReader("report", strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, doc := range docs {
		assert.NotContains(t, doc.Content, "Acme Corp", "page %d", i+1)
	}
}

func TestMarkdownReader_ConsecutiveBreaks(t *testing.T) {
	content := "page one\n\n---\n\n---\n\npage two"

	rdr := New()
	docs, err := rdr.ReadFromReader("doc", strings.NewReader(content))
	require.NoError(t, err)
	// The empty slice between the two breaks is still a page.
	require.Len(t, docs, 3)
	assert.Equal(t, "page one", docs[0].Content)
	assert.Equal(t, "", docs[1].Content)
	assert.Equal(t, "page two", docs[2].Content)
}

func TestMarkdownReader_SupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".md", ".markdown"}, New().SupportedExtensions())
}
