//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package dump writes human-readable snapshots of document sets for
// debugging the ingestion pipeline.
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
)

const separator = "---------------------------------------------------------"

// Dumper writes document snapshots into a per-run directory.
type Dumper struct {
	dir string
}

// New creates a dumper rooted at baseDir. Each dumper gets its own run
// directory so consecutive pipeline runs do not overwrite each other.
func New(baseDir string) (*Dumper, error) {
	runDir := filepath.Join(baseDir, "run-"+uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dump directory: %w", err)
	}
	return &Dumper{dir: runDir}, nil
}

// Dir returns the run directory the dumper writes into.
func (d *Dumper) Dir() string {
	return d.dir
}

// WriteDocuments writes the document list to the named file in a readable
// format: a count banner, then each document's attributes separated by a
// rule.
func (d *Dumper) WriteDocuments(fileName string, docs []*document.Document) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "List of %d documents\n%s\n\n", len(docs), separator)

	for i, doc := range docs {
		fmt.Fprintf(&sb, "Document %d:\n\n", i)
		if doc == nil {
			sb.WriteString("<nil>\n")
			fmt.Fprintf(&sb, "%s\n\n", separator)
			continue
		}
		fmt.Fprintf(&sb, "ID: %s\n", doc.ID)
		fmt.Fprintf(&sb, "Name: %s\n", doc.Name)
		fmt.Fprintf(&sb, "Content:\n%s\n", doc.Content)
		writeMetadata(&sb, doc.Metadata)
		fmt.Fprintf(&sb, "%s\n\n", separator)
	}

	path := filepath.Join(d.dir, fileName)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write dump file %s: %w", path, err)
	}
	return nil
}

// writeMetadata writes metadata entries in sorted key order so dumps are
// diffable between runs.
func writeMetadata(sb *strings.Builder, metadata map[string]any) {
	if len(metadata) == 0 {
		return
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString("Metadata:\n")
	for _, k := range keys {
		fmt.Fprintf(sb, "  %s: %v\n", k, metadata[k])
	}
}
