// Package render prints a generated review to the terminal with per-section
// color emphasis.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color definitions
var (
	titleColor    = color.New(color.FgMagenta, color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
	warnColor     = color.New(color.FgYellow, color.Bold)
	suggestColor  = color.New(color.FgBlue, color.Bold)
	positiveColor = color.New(color.FgGreen, color.Bold)
	headingColor  = color.New(color.Bold)
)

// lineRules maps section-heading prefixes to their style. Rules are checked
// top to bottom and the first matching prefix wins, so the specific sections
// must stay ahead of the bare "##" fallback. Matching is a case-sensitive
// prefix test, not full-line equality.
var lineRules = []struct {
	prefix string
	style  *color.Color
}{
	{"## Critical", criticalColor},
	{"## Warning", warnColor},
	{"## Suggestion", suggestColor},
	{"## Positive", positiveColor},
	{"##", headingColor},
}

const ruleWidth = 80

// Renderer writes reviews to a single output stream, one line at a time.
type Renderer struct {
	out io.Writer
}

// NewRenderer returns a Renderer writing to out, or to stdout when out is
// nil.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// Render prints the banner, every line of the review with its section style,
// and a closing rule. Lines matching no rule are printed verbatim; empty
// lines and ordering are preserved. No validation is done on the review's
// structure: missing or reworded headings simply fall through unstyled.
func (r *Renderer) Render(reviewText string) {
	separator := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(r.out, "\n"+separator)
	titleColor.Fprintln(r.out, "🤖 AI CODE REVIEW")
	fmt.Fprintln(r.out, separator+"\n")

	for _, line := range strings.Split(reviewText, "\n") {
		r.renderLine(line)
	}

	fmt.Fprintln(r.out, "\n"+separator+"\n")
}

func (r *Renderer) renderLine(line string) {
	for _, rule := range lineRules {
		if strings.HasPrefix(line, rule.prefix) {
			rule.style.Fprintln(r.out, line)
			return
		}
	}
	fmt.Fprintln(r.out, line)
}
