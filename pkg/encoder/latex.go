package encoder

import (
	"fmt"
	"strings"

	"resume-exporter/internal/model"
)

// latexPreamble sets page geometry, section heading rules, link coloring and
// a tight bullet-list environment. Kept as a raw block so the emitted source
// compiles standalone with a plain LaTeX toolchain.
const latexPreamble = `\documentclass[11pt]{article}
\usepackage[a4paper,margin=0.75in]{geometry}
\usepackage[utf8]{inputenc}
\usepackage{titlesec}
\usepackage{enumitem}
\usepackage[colorlinks=true,urlcolor=blue]{hyperref}
\titleformat{\section}{\large\bfseries}{}{0em}{}[\titlerule]
\titlespacing{\section}{0pt}{10pt}{6pt}
\newenvironment{tightlist}
  {\begin{itemize}[leftmargin=*,itemsep=1pt,topsep=2pt,parsep=0pt]}
  {\end{itemize}}
\setlength{\parindent}{0pt}
\pagestyle{empty}
`

// EncodeLaTeX emits a complete LaTeX source document for the resume.
// Every user-supplied token passes through EscapeLaTeX.
func EncodeLaTeX(c model.Content) string {
	var b strings.Builder
	b.WriteString(latexPreamble)
	b.WriteString("\\begin{document}\n")

	writeLaTeXHeader(&b, c.PersonalInfo)

	if model.Present(c.PersonalInfo.Summary) {
		b.WriteString("\\section{Summary}\n")
		b.WriteString(EscapeLaTeX(strings.TrimSpace(c.PersonalInfo.Summary)))
		b.WriteString("\n")
	}

	if len(c.Experience) > 0 {
		b.WriteString("\\section{Experience}\n")
		for _, exp := range c.Experience {
			writeLaTeXExperience(&b, exp)
		}
	}

	if len(c.Education) > 0 {
		b.WriteString("\\section{Education}\n")
		for _, edu := range c.Education {
			writeLaTeXEducation(&b, edu)
		}
	}

	writeLaTeXSkills(&b, c.Skills)

	if len(c.Certifications) > 0 {
		b.WriteString("\\section{Certifications}\n")
		for _, cert := range c.Certifications {
			writeLaTeXCertification(&b, cert)
		}
	}

	if len(c.Links) > 0 {
		b.WriteString("\\section{Links}\n")
		for _, l := range c.Links {
			label := strings.TrimSpace(l.Label)
			if label == "" {
				label = linkLabel(l.URL)
			}
			fmt.Fprintf(&b, "\\href{%s}{%s}\\\\\n", EscapeLaTeXURL(strings.TrimSpace(l.URL)), EscapeLaTeX(label))
		}
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func writeLaTeXHeader(b *strings.Builder, p model.PersonalInfo) {
	b.WriteString("\\begin{center}\n")
	if name := p.FullName(); name != "" {
		fmt.Fprintf(b, "{\\LARGE\\bfseries %s}\\\\[4pt]\n", EscapeLaTeX(name))
	}
	contact := joinNonEmpty(" $|$ ", EscapeLaTeX(p.Email), EscapeLaTeX(p.Phone), EscapeLaTeX(p.Location))
	if contact != "" {
		b.WriteString(contact)
		b.WriteString("\n")
	}
	b.WriteString("\\end{center}\n")
}

func writeLaTeXExperience(b *strings.Builder, exp model.Experience) {
	dates := model.DateRange(exp.StartDate, exp.EndDate, exp.Current)
	fmt.Fprintf(b, "\\textbf{%s} \\hfill %s\\\\\n", EscapeLaTeX(exp.Position), EscapeLaTeX(dates))
	if model.Present(exp.Company) {
		fmt.Fprintf(b, "\\textit{%s}\\\\\n", EscapeLaTeX(strings.TrimSpace(exp.Company)))
	}
	if exp.WantsDescription() && model.Present(exp.Description) {
		b.WriteString(EscapeLaTeX(strings.TrimSpace(exp.Description)))
		b.WriteString("\n")
	}
	if exp.WantsHighlights() && len(exp.Highlights) > 0 {
		b.WriteString("\\begin{tightlist}\n")
		for _, h := range exp.Highlights {
			if model.Present(h) {
				fmt.Fprintf(b, "\\item %s\n", EscapeLaTeX(strings.TrimSpace(h)))
			}
		}
		b.WriteString("\\end{tightlist}\n")
	}
	b.WriteString("\\medskip\n")
}

func writeLaTeXEducation(b *strings.Builder, edu model.Education) {
	dates := model.DateRange(edu.StartDate, edu.EndDate, edu.Current)
	degree := joinNonEmpty(", ", edu.Degree, edu.Field)
	fmt.Fprintf(b, "\\textbf{%s} \\hfill %s\\\\\n", EscapeLaTeX(degree), EscapeLaTeX(dates))
	if model.Present(edu.Institution) {
		fmt.Fprintf(b, "\\textit{%s}\\\\\n", EscapeLaTeX(strings.TrimSpace(edu.Institution)))
	}
	if model.Present(edu.GPA) {
		fmt.Fprintf(b, "GPA: %s\\\\\n", EscapeLaTeX(strings.TrimSpace(edu.GPA)))
	}
	honors := nonEmpty(edu.Honors)
	if len(honors) > 0 {
		b.WriteString("\\begin{tightlist}\n")
		for _, h := range honors {
			fmt.Fprintf(b, "\\item %s\n", EscapeLaTeX(h))
		}
		b.WriteString("\\end{tightlist}\n")
	}
	b.WriteString("\\medskip\n")
}

func writeLaTeXSkills(b *strings.Builder, skills model.Skills) {
	var lines []string
	for _, cat := range skills.Categories() {
		if names := cat.Names(); names != "" {
			lines = append(lines, fmt.Sprintf("\\textbf{%s}: %s\\\\", EscapeLaTeX(cat.Label), EscapeLaTeX(names)))
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\\section{Skills}\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func writeLaTeXCertification(b *strings.Builder, cert model.Certification) {
	head := joinNonEmpty(" --- ", EscapeLaTeX(cert.Name), EscapeLaTeX(cert.Issuer))
	dates := model.DateRange(cert.IssueDate, cert.ExpiryDate, false)
	fmt.Fprintf(b, "%s \\hfill %s\\\\\n", head, EscapeLaTeX(dates))
	if model.Present(cert.CredentialID) {
		fmt.Fprintf(b, "Credential: %s\\\\\n", EscapeLaTeX(strings.TrimSpace(cert.CredentialID)))
	}
}

// nonEmpty filters a string list down to its trimmed, non-empty entries.
func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
