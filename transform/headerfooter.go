//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-docpipe-go/document"
	"trpc.group/trpc-go/trpc-docpipe-go/log"
)

// Configuration errors surfaced before any detection runs.
var (
	// ErrInvalidMaxLines indicates a non-positive candidate window size.
	ErrInvalidMaxLines = errors.New("max lines must be greater than zero")
	// ErrInvalidRepeatThreshold indicates a repeat threshold outside [0, 1].
	ErrInvalidRepeatThreshold = errors.New("repeat threshold must be in [0, 1]")
	// ErrInvalidMaxDifferences indicates a negative difference bound.
	ErrInvalidMaxDifferences = errors.New("max differences must not be negative")
)

// Default detection parameters.
const (
	defaultMaxLines        = 10
	defaultRepeatThreshold = 0.5
	defaultMaxDifferences  = 3
)

// parallelThreshold is the page count below which pages are rewritten
// inline rather than through a worker pool.
const parallelThreshold = 16

// HeaderFooterTrim detects line sequences that repeat near the top and
// bottom of a proportion of pages and strips them. Each input document is
// treated as one page; pages keep their order and count, only their line
// content shrinks. Detection tolerates small per-line variations such as
// page numbers via bounded edit distance.
type HeaderFooterTrim struct {
	maxLines        int
	repeatThreshold float64
	maxDifferences  int
	strategy        ReferenceStrategy
	parallelism     int
}

// HeaderFooterOption is a functional option for configuring HeaderFooterTrim.
type HeaderFooterOption func(*HeaderFooterTrim)

// WithMaxLines sets how many lines from each page edge are considered as
// header/footer candidates.
func WithMaxLines(n int) HeaderFooterOption {
	return func(hf *HeaderFooterTrim) {
		hf.maxLines = n
	}
}

// WithRepeatThreshold sets the minimum proportion of pages a line sequence
// must repeat on to be confirmed.
func WithRepeatThreshold(threshold float64) HeaderFooterOption {
	return func(hf *HeaderFooterTrim) {
		hf.repeatThreshold = threshold
	}
}

// WithMaxDifferences sets the per-line edit distance tolerated when
// comparing lines across pages.
func WithMaxDifferences(n int) HeaderFooterOption {
	return func(hf *HeaderFooterTrim) {
		hf.maxDifferences = n
	}
}

// WithReferenceStrategy sets how the reference window is chosen during
// detection. Defaults to FirstPageReference.
func WithReferenceStrategy(strategy ReferenceStrategy) HeaderFooterOption {
	return func(hf *HeaderFooterTrim) {
		hf.strategy = strategy
	}
}

// WithParallelism sets the worker pool size used to rewrite pages of large
// documents. Values below 2 disable the pool.
func WithParallelism(n int) HeaderFooterOption {
	return func(hf *HeaderFooterTrim) {
		hf.parallelism = n
	}
}

// NewHeaderFooterTrim creates a HeaderFooterTrim with the given options.
// Invalid parameter combinations surface as errors on the first Preprocess
// call, not here.
func NewHeaderFooterTrim(opts ...HeaderFooterOption) *HeaderFooterTrim {
	hf := &HeaderFooterTrim{
		maxLines:        defaultMaxLines,
		repeatThreshold: defaultRepeatThreshold,
		maxDifferences:  defaultMaxDifferences,
		strategy:        FirstPageReference{},
	}
	for _, opt := range opts {
		opt(hf)
	}
	return hf
}

// Validate checks the detection parameters, failing fast before any
// detection work.
func (hf *HeaderFooterTrim) Validate() error {
	if hf.maxLines <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxLines, hf.maxLines)
	}
	if hf.repeatThreshold < 0 || hf.repeatThreshold > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidRepeatThreshold, hf.repeatThreshold)
	}
	if hf.maxDifferences < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxDifferences, hf.maxDifferences)
	}
	return nil
}

// Preprocess detects repeated header and footer patterns across the pages
// and returns a new page list with matching edge lines removed. Page count
// and order are preserved; a page loses zero lines, the header block, the
// footer block, or both. Documents with fewer than two pages pass through
// untouched.
func (hf *HeaderFooterTrim) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	if err := hf.Validate(); err != nil {
		return nil, err
	}

	pages := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		pages = append(pages, doc)
	}
	if len(pages) < 2 {
		return pages, nil
	}

	header, footer := hf.DetectPatterns(pages)
	if header.Len() == 0 && footer.Len() == 0 {
		log.Debugf("no repeated header or footer found across %d page(s)", len(pages))
		return pages, nil
	}

	result, headersRemoved, footersRemoved := hf.rewrite(pages, header, footer)

	if headersRemoved > 0 {
		log.Infof("removed %d-line header %q from %d/%d page(s)",
			header.Len(), strings.Join(header.Lines, " / "), headersRemoved, len(pages))
	}
	if footersRemoved > 0 {
		log.Infof("removed %d-line footer %q from %d/%d page(s)",
			footer.Len(), strings.Join(footer.Lines, " / "), footersRemoved, len(pages))
	}
	return result, nil
}

// Postprocess returns chunks unchanged (no-op for HeaderFooterTrim).
func (hf *HeaderFooterTrim) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// Name returns the name of this transformer.
func (hf *HeaderFooterTrim) Name() string {
	return "HeaderFooterTrim"
}

// DetectPatterns runs detection only and returns the confirmed header and
// footer patterns, either of which may be nil. Exposed so callers can
// inspect what would be stripped without rewriting.
func (hf *HeaderFooterTrim) DetectPatterns(pages []*document.Document) (header, footer *LinePattern) {
	headerWindows := make([][]string, len(pages))
	footerWindows := make([][]string, len(pages))
	for i, page := range pages {
		lines := page.Lines()
		headerWindows[i] = extractWindow(lines, EdgeHeader, hf.maxLines)
		footerWindows[i] = extractWindow(lines, EdgeFooter, hf.maxLines)
	}

	header = detectPattern(headerWindows, EdgeHeader, hf.repeatThreshold, hf.maxDifferences, hf.strategy)
	footer = detectPattern(footerWindows, EdgeFooter, hf.repeatThreshold, hf.maxDifferences, hf.strategy)
	return header, footer
}

// rewrite produces the trimmed page list. Pages are independent, so large
// documents are rewritten through a worker pool; results land in their
// original slots to keep page order stable.
func (hf *HeaderFooterTrim) rewrite(
	pages []*document.Document,
	header, footer *LinePattern,
) (result []*document.Document, headersRemoved, footersRemoved int64) {
	result = make([]*document.Document, len(pages))

	var headerCount, footerCount int64
	trimOne := func(i int) {
		trimmed, droppedHeader, droppedFooter := hf.trimPage(pages[i], header, footer)
		result[i] = trimmed
		if droppedHeader {
			atomic.AddInt64(&headerCount, 1)
		}
		if droppedFooter {
			atomic.AddInt64(&footerCount, 1)
		}
	}

	if hf.parallelism > 1 && len(pages) >= parallelThreshold {
		pool, err := ants.NewPool(hf.parallelism)
		if err == nil {
			defer pool.Release()
			var wg sync.WaitGroup
			for i := range pages {
				wg.Add(1)
				idx := i
				if err := pool.Submit(func() {
					defer wg.Done()
					trimOne(idx)
				}); err != nil {
					// Pool saturation or release; do the work inline.
					trimOne(idx)
					wg.Done()
				}
			}
			wg.Wait()
			return result, headerCount, footerCount
		}
		log.Warnf("failed to create rewrite worker pool, falling back to sequential: %v", err)
	}

	for i := range pages {
		trimOne(i)
	}
	return result, headerCount, footerCount
}

// trimPage applies the confirmed patterns to one page. Matching is
// all-or-nothing per edge: a partial match leaves that edge untouched so
// real content is never cut. The footer is checked against the remainder
// after header removal, which keeps the two blocks from overlapping on
// short pages.
func (hf *HeaderFooterTrim) trimPage(
	page *document.Document,
	header, footer *LinePattern,
) (out *document.Document, droppedHeader, droppedFooter bool) {
	lines := page.Lines()

	if header.Len() > 0 && edgeMatches(lines, header.Lines, EdgeHeader, hf.maxDifferences) {
		lines = lines[header.Len():]
		droppedHeader = true
	}
	if footer.Len() > 0 && edgeMatches(lines, footer.Lines, EdgeFooter, hf.maxDifferences) {
		lines = lines[:len(lines)-footer.Len()]
		droppedFooter = true
	}
	if !droppedHeader && !droppedFooter {
		return page, false, false
	}
	return hf.createProcessedDoc(page, strings.Join(lines, "\n")), droppedHeader, droppedFooter
}

// createProcessedDoc creates a new document with processed content.
func (hf *HeaderFooterTrim) createProcessedDoc(original *document.Document, content string) *document.Document {
	metadata := make(map[string]any, len(original.Metadata))
	for k, v := range original.Metadata {
		metadata[k] = v
	}

	return &document.Document{
		ID:        original.ID,
		Name:      original.Name,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: original.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
}
