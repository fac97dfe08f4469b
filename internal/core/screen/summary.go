package screen

import (
	"fmt"
	"strings"
)

const (
	// NoContentSummary is returned when nothing in the screen survives filtering.
	NoContentSummary = "No meaningful text content found in screen."

	summaryPrefix = "Screen content includes: "
	summaryItems  = 10
)

// Summarize renders the top ranked fragments of raw into a compact digest for the
// classifier prompt.
func (p *Processor) Summarize(raw string) string {
	ranked := FilterAndRank(p.Extract(raw))
	if len(ranked) == 0 {
		return NoContentSummary
	}
	if len(ranked) > summaryItems {
		ranked = ranked[:summaryItems]
	}

	parts := make([]string, 0, len(ranked))
	for _, r := range ranked {
		parts = append(parts, describe(r.Fragment))
	}
	return summaryPrefix + strings.Join(parts, " | ")
}

func describe(f Fragment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Text: '%s'", f.Text)
	if f.ClassName != "" {
		fmt.Fprintf(&b, " (Type: %s)", shortClassName(f.ClassName))
	}
	if f.Clickable {
		b.WriteString(" [Clickable]")
	}
	return b.String()
}

// shortClassName keeps the last dotted segment, e.g. android.widget.Button -> Button.
func shortClassName(className string) string {
	if i := strings.LastIndex(className, "."); i >= 0 {
		return className[i+1:]
	}
	return className
}
