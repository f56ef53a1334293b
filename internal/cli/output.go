package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"buildfetch/internal/catalog"
	"buildfetch/internal/manifest"
)

// RenderContentBuilds writes the content builds as a plain table.
func RenderContentBuilds(w io.Writer, builds *catalog.ContentBuilds) {
	label := builds.Label
	if label == "" {
		label = "(default)"
	}

	if len(builds.Builds) == 0 {
		fmt.Fprintf(w, "No content builds for label %s\n", label)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"PLATFORM", "BUILD VERSION", "MANIFEST"})
	for _, build := range builds.Builds {
		manifestCell := build.ManifestURL
		if manifestCell == "" {
			manifestCell = "-"
		}
		t.AppendRow(table.Row{build.Platform, build.BuildVersion, manifestCell})
	}
	t.Render()
}

// RenderManifestSummary writes a short summary of a resolved
// manifest.
func RenderManifestSummary(w io.Writer, m *manifest.Manifest, cachePath string, fromCache bool) {
	fmt.Fprintf(w, "%s %s\n", text.FgGreen.Sprint("Resolved"), m)
	if cachePath != "" {
		source := "downloaded"
		if fromCache {
			source = "cache hit"
		}
		fmt.Fprintf(w, "  Cache:  %s (%s)\n", cachePath, source)
	}
	fmt.Fprintf(w, "  Chunks: %d (%s)\n", len(m.Chunks), formatByteSize(m.TotalSize()))
	fmt.Fprintf(w, "  CDN:    %s\n", m.Options.ChunkBaseURL)
}

// RenderTokenStatus writes the stored token status. The token value
// itself is never printed.
func RenderTokenStatus(w io.Writer, hasToken bool, tokenType string, expiry, updatedAt time.Time) {
	if !hasToken {
		fmt.Fprintln(w, text.FgYellow.Sprint("No bearer token stored"))
		return
	}

	fmt.Fprintln(w, text.FgGreen.Sprint("Bearer token present"))
	if tokenType != "" {
		fmt.Fprintf(w, "  Type:     %s\n", tokenType)
	}
	if !updatedAt.IsZero() {
		fmt.Fprintf(w, "  Updated:  %s\n", updatedAt.Format(time.RFC3339))
	}
	if !expiry.IsZero() {
		remaining := time.Until(expiry).Round(time.Minute)
		fmt.Fprintf(w, "  Expiry:   %s (%s)\n", expiry.Format(time.RFC3339), formatRemaining(remaining))
	}
}

func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return text.FgYellow.Sprint("expired, will refresh on next use")
	}
	return "in " + d.String()
}

// formatByteSize renders a byte count in a human-readable unit.
func formatByteSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	value := float64(n) / float64(div)
	return strings.TrimSuffix(fmt.Sprintf("%.1f", value), ".0") + " " + string("KMGTPE"[exp]) + "iB"
}
