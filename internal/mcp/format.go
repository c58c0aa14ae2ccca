package mcp

import (
	"fmt"
	"strings"
	"time"

	memoria "github.com/kailas-cloud/memoria/pkg/sdk"
)

// FormatBytes renders a size as B, KB or MB with one decimal.
func FormatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func formatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04 UTC")
}

func formatSearchResults(results []memoria.SearchResult) string {
	if len(results) == 0 {
		return "No documents matched your search."
	}
	var b strings.Builder
	b.WriteString("Search results:")
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s (handle: %s, updated: %s, approx size: %s)",
			i+1, r.Title, r.DocHandle, formatTime(r.Updated), FormatBytes(r.ApproxSize))
	}
	return b.String()
}

// formatDocument renders a header line, a truncation warning when the body
// was cut, and the document with its frontmatter block restored.
func formatDocument(handle string, d memoria.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Document %q (updated: %s, full size: %s)",
		handle, formatTime(d.Updated), FormatBytes(d.FullSize))
	if d.IsTruncated {
		fmt.Fprintf(&b, "\nWARNING: Response truncated to %s. Pass a larger max_bytes to read more.",
			FormatBytes(int64(len(d.Body))))
	}
	b.WriteString("\n\n")
	if d.Frontmatter != "" {
		b.WriteString("---\n")
		b.WriteString(d.Frontmatter)
		b.WriteString("\n---\n")
	}
	b.WriteString(d.Body)
	return b.String()
}
