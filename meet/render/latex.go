// Package render turns a computed meet schedule into a typeset document.
// It consumes only read-only ScheduledEvents plus document metadata and
// makes no scheduling or seeding decisions of its own.
package render

import (
	"fmt"
	"strings"

	"github.com/heatsheet-gen/heatsheet-gen/meet"
)

// Meta is the document header metadata.
type Meta struct {
	Name     string
	Date     string
	Location string
	Host     string
}

const preamble = `\documentclass[11pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{booktabs}
\usepackage{multicol}
\usepackage{titlesec}
\usepackage{enumitem}

\titleformat{\section}{\large\bfseries}{}{0em}{}
\titleformat{\subsection}{\normalsize\bfseries}{}{0em}{}

\setlist[itemize]{noitemsep, topsep=0pt}
\setlength{\parindent}{0pt}
`

// Document renders the complete LaTeX heat sheet: title block, the event
// list in running order with clock times, and one heat table per event.
// teams maps team keys to the display names shown next to each athlete.
func Document(m Meta, teams map[meet.Team]string, events []meet.ScheduledEvent) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\\begin{document}\n\n")

	fmt.Fprintf(&b, `\begin{center}
    \LARGE \textbf{%s} \\
    \large
    \vspace{0.5em}
    \textbf{Date:} %s \hspace{2cm} \textbf{Location:} %s \\
    \textbf{Host:} %s
\end{center}

\vspace{1em}

`, m.Name, m.Date, m.Location, m.Host)

	writeEventList(&b, events)

	b.WriteString("\n\\vspace{2em}\n\n\\section*{Track Event Heat Sheet}\n")
	for _, event := range events {
		writeEventHeats(&b, event, teams)
	}

	b.WriteString("\n\\end{document}\n")
	return b.String()
}

func writeEventList(b *strings.Builder, events []meet.ScheduledEvent) {
	b.WriteString("\\section*{Event List}\n\n")
	b.WriteString("\\begin{tabular}{@{}lll@{}}\n\\toprule\n")
	b.WriteString("\\textbf{Event \\#} & \\textbf{Event Name} & \\textbf{Time} \\\\\n\\midrule\n")
	for i, event := range events {
		fmt.Fprintf(b, "%d & %s & %s \\\\\n", i+1, event.Name, event.Clock)
	}
	b.WriteString("\\bottomrule\n\\end{tabular}\n")
}

func writeEventHeats(b *strings.Builder, event meet.ScheduledEvent, teams map[meet.Team]string) {
	fmt.Fprintf(b, "\n\\textbf{Event:} %s \\quad \\textbf{Time:} %s\n\n\\vspace{1em}\n", event.Name, event.Clock)

	// The Heat column appears only when an event runs more than one heat.
	numbered := len(event.Heats) > 1
	if numbered {
		b.WriteString("\\begin{tabular}{@{}lllll@{}}\n\\toprule\n\\textbf{Heat} & ")
	} else {
		b.WriteString("\\begin{tabular}{@{}llll@{}}\n\\toprule\n")
	}
	fmt.Fprintf(b, "\\textbf{%s} & \\textbf{Athlete Name} & \\textbf{School/Team} & \\textbf{%s} \\\\\n\\midrule\n",
		event.Kind.PositionLabel(), event.Kind.MarkHeader())

	for h, heat := range event.Heats {
		for i, entrant := range heat {
			if numbered {
				heatCell := ""
				if i == 0 {
					heatCell = fmt.Sprintf("%d", h+1)
				}
				fmt.Fprintf(b, "%s & %d & %s & %s & %s \\\\\n",
					heatCell, i+1, entrant.Athlete.Name, teams[entrant.Athlete.Team], entrant.Display)
			} else {
				fmt.Fprintf(b, "%d & %s & %s & %s \\\\\n",
					i+1, entrant.Athlete.Name, teams[entrant.Athlete.Team], entrant.Display)
			}
		}
	}
	b.WriteString("\\bottomrule\n\\end{tabular}\n\\vspace{2.5em}\n")
}
