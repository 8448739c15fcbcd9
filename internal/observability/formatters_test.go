package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/linkedin-profile/internal/profile"
)

func TestPrintSelection_Single(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSelection(&profile.Selection{
		Query:   "Jane Doe",
		Type:    profile.Individual,
		Index:   1,
		Matches: []string{"linkedin.com/in/janedoe"},
		Found:   true,
	})
	output := buf.String()

	assert.Contains(t, output, "LINKEDIN PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "individual")
	assert.Contains(t, output, "linkedin.com/in/janedoe")
}

func TestPrintSelection_NotFound(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(&profile.Selection{Query: "X", Index: 5})

	assert.Contains(t, buf.String(), profile.NotFound)
}

func TestPrintSelection_Truncates(t *testing.T) {
	var matches []string
	for i := 1; i <= 12; i++ {
		matches = append(matches, fmt.Sprintf("%d. linkedin.com/company/c%d", i, i))
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(&profile.Selection{
		Query:   "Acme",
		Type:    profile.Company,
		Index:   0,
		Matches: matches,
		Found:   true,
	})
	output := buf.String()

	assert.Contains(t, output, "Index:  all")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "c12")
}

func TestPrintSelection_LongLine(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(&profile.Selection{
		Query:   "Long",
		Index:   1,
		Matches: []string{"linkedin.com/in/" + strings.Repeat("a", 200)},
		Found:   true,
	})

	assert.Contains(t, buf.String(), "...")
}

func TestPrintSelection_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(nil)
	assert.Empty(t, buf.String())
}
