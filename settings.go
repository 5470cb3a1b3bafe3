//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package docpipe

import (
	"trpc.group/trpc-go/trpc-docpipe-go/document/reader"
	"trpc.group/trpc-go/trpc-docpipe-go/transform"
)

// Settings is the host-supplied configuration for the ingestion pipeline.
// It is passed explicitly into the pipeline entry points rather than read
// from ambient state, so embedding applications stay in control of its
// lifecycle.
type Settings struct {
	// MaxLines is how many lines from each page edge are considered as
	// header/footer candidates.
	MaxLines int

	// RepeatThreshold is the minimum proportion of pages a header/footer
	// sequence must appear on to be stripped. Must be in [0, 1].
	RepeatThreshold float64

	// MaxDifferences is the per-line edit distance tolerated when comparing
	// lines across pages, covering variations such as page numbers.
	MaxDifferences int

	// ParserMode selects how paginated sources are turned into lines.
	ParserMode reader.ParserMode

	// DebugMode enables dumping of intermediate page sets and chunks.
	DebugMode bool

	// DebugDir is where debug artifacts are written when DebugMode is set.
	DebugDir string
}

// DefaultSettings returns the settings the pipeline uses out of the box.
func DefaultSettings() Settings {
	return Settings{
		MaxLines:        10,
		RepeatThreshold: 0.5,
		MaxDifferences:  3,
		ParserMode:      reader.ParserModeLinear,
		DebugMode:       false,
		DebugDir:        "debug",
	}
}

// Validate checks the settings, surfacing configuration errors before any
// document is touched.
func (s Settings) Validate() error {
	hf := transform.NewHeaderFooterTrim(
		transform.WithMaxLines(s.MaxLines),
		transform.WithRepeatThreshold(s.RepeatThreshold),
		transform.WithMaxDifferences(s.MaxDifferences),
	)
	return hf.Validate()
}
