//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

// Package docpipe cleans and chunks paginated documents for retrieval
// ingestion. It wires a format-specific reader, a repeated header/footer
// trimmer, and a chunking strategy into one pipeline.
package docpipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-docpipe-go/chunking"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/internal/dump"
	"trpc.group/trpc-go/trpc-docpipe-go/log"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"

	// Register the built-in readers.
	_ "trpc.group/trpc-go/trpc-docpipe-go/document/reader/markdown"
	_ "trpc.group/trpc-go/trpc-docpipe-go/document/reader/pdf"
	_ "trpc.group/trpc-go/trpc-docpipe-go/document/reader/text"
)

// ErrUnsupportedFileType indicates no reader is registered for the input's
// file extension.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// chunkParallelThreshold is the page count below which pages are chunked
// inline rather than through a worker pool.
const chunkParallelThreshold = 16

// Pipeline turns a paginated source into cleaned, chunked documents:
// read pages, strip repeated headers/footers, then chunk what remains.
type Pipeline struct {
	settings     Settings
	chunk        chunking.Strategy
	transformers []transform.Transformer
	parallelism  int
}

// PipelineOption is a functional option for configuring a Pipeline.
type PipelineOption func(*Pipeline)

// WithSettings sets the detection and parsing settings.
func WithSettings(s Settings) PipelineOption {
	return func(p *Pipeline) {
		p.settings = s
	}
}

// WithChunking sets the chunking strategy applied to cleaned pages.
func WithChunking(strategy chunking.Strategy) PipelineOption {
	return func(p *Pipeline) {
		p.chunk = strategy
	}
}

// WithTransformers appends transformers applied after header/footer
// trimming and before chunking.
func WithTransformers(transformers ...transform.Transformer) PipelineOption {
	return func(p *Pipeline) {
		p.transformers = append(p.transformers, transformers...)
	}
}

// WithParallelism sets the worker pool size used for per-page work on
// large documents. Values below 2 disable the pool.
func WithParallelism(n int) PipelineOption {
	return func(p *Pipeline) {
		p.parallelism = n
	}
}

// New creates a pipeline with the given options. Configuration is
// validated here so a misconfigured pipeline never touches a document.
func New(opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{
		settings: DefaultSettings(),
		chunk:    chunking.NewFixedSizeChunking(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.settings.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Process reads the file at path, cleans its pages, and returns the
// resulting chunks.
func (p *Pipeline) Process(ctx context.Context, path string) ([]*document.Document, error) {
	ext := filepath.Ext(path)
	rdr, ok := reader.GetReader(ext, reader.WithParserMode(p.settings.ParserMode))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	pages, err := rdr.ReadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.process(ctx, pages)
}

// ProcessURL downloads the document at url, cleans its pages, and returns
// the resulting chunks. The reader is selected by the URL path's extension.
func (p *Pipeline) ProcessURL(ctx context.Context, url string) ([]*document.Document, error) {
	ext := filepath.Ext(strings.SplitN(url, "?", 2)[0])
	rdr, ok := reader.GetReader(ext, reader.WithParserMode(p.settings.ParserMode))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	pages, err := rdr.ReadFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return p.process(ctx, pages)
}

// ProcessReader reads document content from r, cleans its pages, and
// returns the resulting chunks. The reader is selected by name's extension
// (e.g. "report.pdf").
func (p *Pipeline) ProcessReader(ctx context.Context, name string, r io.Reader) ([]*document.Document, error) {
	ext := filepath.Ext(name)
	rdr, ok := reader.GetReader(ext, reader.WithParserMode(p.settings.ParserMode))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	pages, err := rdr.ReadFromReader(strings.TrimSuffix(name, ext), r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return p.process(ctx, pages)
}

// process runs the cleaning and chunking stages over the page set.
func (p *Pipeline) process(ctx context.Context, pages []*document.Document) ([]*document.Document, error) {
	var dumper *dump.Dumper
	if p.settings.DebugMode {
		var err error
		if dumper, err = dump.New(p.settings.DebugDir); err != nil {
			// Debugging must never break ingestion.
			log.Warnf("debug dumps disabled: %v", err)
			dumper = nil
		} else {
			log.Infof("debug artifacts will be written to %s", dumper.Dir())
		}
	}
	p.dump(dumper, "pages.txt", pages)

	cleaned, err := p.clean(pages)
	if err != nil {
		return nil, err
	}
	p.dump(dumper, "pages_cleaned.txt", cleaned)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunks, err := p.chunkPages(cleaned)
	if err != nil {
		return nil, err
	}

	for _, tr := range p.transformers {
		if chunks, err = tr.Postprocess(chunks); err != nil {
			return nil, fmt.Errorf("failed to apply postprocess transformer %s: %w", tr.Name(), err)
		}
	}
	p.dump(dumper, "chunks.txt", chunks)

	log.Infof("processed %d page(s) into %d chunk(s)", len(pages), len(chunks))
	return chunks, nil
}

// clean applies header/footer trimming and any extra transformers.
func (p *Pipeline) clean(pages []*document.Document) ([]*document.Document, error) {
	trim := transform.NewHeaderFooterTrim(
		transform.WithMaxLines(p.settings.MaxLines),
		transform.WithRepeatThreshold(p.settings.RepeatThreshold),
		transform.WithMaxDifferences(p.settings.MaxDifferences),
		transform.WithParallelism(p.parallelism),
	)
	transformers := append([]transform.Transformer{trim}, p.transformers...)
	return reader.ApplyTransformers(pages, transformers)
}

// chunkPages splits each cleaned page into chunks, preserving page order in
// the output. Pages emptied by trimming are skipped. Pages are independent,
// so large documents are chunked through a worker pool.
func (p *Pipeline) chunkPages(pages []*document.Document) ([]*document.Document, error) {
	perPage := make([][]*document.Document, len(pages))
	errs := make([]error, len(pages))

	chunkOne := func(i int) {
		page := pages[i]
		if page == nil || page.IsEmpty() {
			return
		}
		perPage[i], errs[i] = p.chunk.Chunk(page)
	}

	if p.parallelism > 1 && len(pages) >= chunkParallelThreshold {
		pool, err := ants.NewPool(p.parallelism)
		if err == nil {
			defer pool.Release()
			var wg sync.WaitGroup
			for i := range pages {
				wg.Add(1)
				idx := i
				if err := pool.Submit(func() {
					defer wg.Done()
					chunkOne(idx)
				}); err != nil {
					chunkOne(idx)
					wg.Done()
				}
			}
			wg.Wait()
		} else {
			log.Warnf("failed to create chunking worker pool, falling back to sequential: %v", err)
			for i := range pages {
				chunkOne(i)
			}
		}
	} else {
		for i := range pages {
			chunkOne(i)
		}
	}

	var chunks []*document.Document
	for i := range pages {
		if errs[i] != nil {
			return nil, fmt.Errorf("failed to chunk page %d: %w", i+1, errs[i])
		}
		chunks = append(chunks, perPage[i]...)
	}
	return chunks, nil
}

// dump writes a document snapshot when debugging is active.
func (p *Pipeline) dump(dumper *dump.Dumper, fileName string, docs []*document.Document) {
	if dumper == nil {
		return
	}
	if err := dumper.WriteDocuments(fileName, docs); err != nil {
		log.Warnf("failed to write debug dump %s: %v", fileName, err)
	}
}
