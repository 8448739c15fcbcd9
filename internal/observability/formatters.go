// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/linkedin-profile/internal/profile"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelection outputs a human-readable summary of a lookup.
func (p *Printer) PrintSelection(sel *profile.Selection) {
	if sel == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query:  %s\n", sel.Query))
	sb.WriteString(fmt.Sprintf("Type:   %s\n", sel.Type))
	if sel.All() {
		sb.WriteString("Index:  all\n")
	} else {
		sb.WriteString(fmt.Sprintf("Index:  %d\n", sel.Index))
	}
	sb.WriteString("\n")

	lines := sel.Lines()
	count := min(len(lines), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", lines[i]))
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-maxItemsToShow))
	}

	p.printBox("LINKEDIN PROFILE", strings.TrimRight(sb.String(), "\n"))
}
