//
// Tencent is pleased to support the open source community by making trpc-docpipe-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docpipe-go is licensed under the Apache License Version 2.0.
//
//

package transform

// Edge identifies which end of a page a candidate window is taken from.
type Edge int

// Page edges.
const (
	EdgeHeader Edge = iota
	EdgeFooter
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeHeader:
		return "header"
	case EdgeFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// extractWindow returns up to maxLines candidate lines from the given edge
// of a page, always in original top-to-bottom order. Pages shorter than
// maxLines yield all of their lines; empty pages yield an empty window.
func extractWindow(lines []string, edge Edge, maxLines int) []string {
	if maxLines <= 0 || len(lines) == 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	if edge == EdgeHeader {
		return lines[:maxLines]
	}
	return lines[len(lines)-maxLines:]
}

// lineAt returns the window line at the given edge-anchored position:
// for headers position 0 is the first line, for footers position 0 is the
// last line and positions count inward from the page bottom.
func lineAt(window []string, edge Edge, pos int) string {
	if edge == EdgeHeader {
		return window[pos]
	}
	return window[len(window)-1-pos]
}
