// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wdamron/prelude/laws"
)

var (
	colorPass  = lipgloss.Color("#2CD7C7")
	colorFail  = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#7F8C8D")
)

type styles struct {
	title   lipgloss.Style
	subject lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
	summary lipgloss.Style
}

// newStyles binds the report styles to w, so colour is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		subject: r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(colorPass),
		fail:    r.NewStyle().Foreground(colorFail).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		summary: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// writeReports renders one block per report followed by a summary box.
func writeReports(w io.Writer, cfg laws.Config, reports []laws.Report) error {
	st := newStyles(w)
	var sb strings.Builder

	sb.WriteString(st.title.Render("law check"))
	sb.WriteString(st.muted.Render(fmt.Sprintf("  samples=%d seed=%d", cfg.Samples, cfg.Seed)))
	sb.WriteString("\n\n")

	total, violated := 0, 0
	for _, r := range reports {
		sb.WriteString(st.subject.Render(r.Subject))
		sb.WriteByte('\n')
		for _, res := range r.Results {
			total++
			if res.Passed {
				fmt.Fprintf(&sb, "  %s %s %s\n", st.pass.Render("✓"), res.Law,
					st.muted.Render(fmt.Sprintf("(%d trials)", res.Trials)))
				continue
			}
			violated++
			fmt.Fprintf(&sb, "  %s %s: %s\n", st.fail.Render("✗"), res.Law, res.Reason)
			if len(res.Samples) > 0 {
				fmt.Fprintf(&sb, "    %s\n", st.muted.Render(fmt.Sprintf("samples %v, trial %d", res.Samples, res.Trials)))
			}
		}
	}

	var summary string
	if violated == 0 {
		summary = st.pass.Render(fmt.Sprintf("%d subjects, %d laws held", len(reports), total))
	} else {
		summary = st.fail.Render(fmt.Sprintf("%d of %d laws violated", violated, total))
	}
	sb.WriteByte('\n')
	sb.WriteString(st.summary.Render(summary))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
