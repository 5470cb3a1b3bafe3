//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package document defines the document model used throughout the ingestion
// pipeline. A paginated source is represented as an ordered slice of
// documents, one per page, with the page ordinal carried in metadata.
package document

import (
	"strings"
	"time"
)

const metaPrefix = "trpc_docpipe_go"

// Metadata keys
const (
	// MetaSource identifies the reader that produced the document.
	MetaSource = metaPrefix + "source"
	// MetaURI is the file path or URL the document was read from.
	MetaURI = metaPrefix + "uri"
	// MetaFileName is the base name of the source file without extension.
	MetaFileName = metaPrefix + "file_name"
	// MetaFileExt is the extension of the source file, dot included.
	MetaFileExt = metaPrefix + "file_ext"
	// MetaPageNumber is the 1-based ordinal of the page within its source.
	MetaPageNumber = metaPrefix + "page_number"
	// MetaPageCount is the total number of pages in the source.
	MetaPageCount = metaPrefix + "page_count"
	// MetaChunkIndex is the 1-based index of a chunk within its document.
	MetaChunkIndex = metaPrefix + "chunk_index"
)

// Document represents one unit of ingested content. For paginated sources
// (PDF and friends) each page becomes its own Document so that page-level
// cleanup such as header/footer stripping can operate positionally.
type Document struct {
	// ID is the unique identifier of the document.
	ID string

	// Name is a human-readable name, usually derived from the source file.
	Name string

	// Content is the text content of the document.
	Content string

	// Metadata holds additional information about the document.
	Metadata map[string]any

	// CreatedAt is the creation time of the document.
	CreatedAt time.Time

	// UpdatedAt is the last update time of the document.
	UpdatedAt time.Time
}

// IsEmpty reports whether the document has no non-whitespace content.
func (d *Document) IsEmpty() bool {
	return strings.TrimSpace(d.Content) == ""
}

// Lines splits the document content into lines. The trailing newline, if
// any, does not produce an empty final line.
func (d *Document) Lines() []string {
	if d.Content == "" {
		return nil
	}
	content := strings.TrimSuffix(d.Content, "\n")
	return strings.Split(content, "\n")
}

// PageNumber returns the 1-based page ordinal from metadata, or 0 if the
// document does not represent a page.
func (d *Document) PageNumber() int {
	if d.Metadata == nil {
		return 0
	}
	switch v := d.Metadata[MetaPageNumber].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Clone returns a deep copy of the document with its own metadata map.
func (d *Document) Clone() *Document {
	metadata := make(map[string]any, len(d.Metadata))
	for k, v := range d.Metadata {
		metadata[k] = v
	}
	return &Document{
		ID:        d.ID,
		Name:      d.Name,
		Content:   d.Content,
		Metadata:  metadata,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
