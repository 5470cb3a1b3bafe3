//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package transform provides document transformers applied around the
// chunking stage of the ingestion pipeline.
package transform

import (
	"trpc.group/trpc-go/trpc-docpipe-go/document"
)

// Transformer processes documents around the chunking stage.
type Transformer interface {
	// Preprocess is applied to documents before chunking.
	Preprocess(docs []*document.Document) ([]*document.Document, error)

	// Postprocess is applied to chunks after chunking.
	Postprocess(docs []*document.Document) ([]*document.Document, error)

	// Name returns the name of this transformer.
	Name() string
}
