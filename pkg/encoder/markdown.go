package encoder

import (
	"fmt"
	"strings"

	"resume-exporter/internal/model"
)

// EncodeMarkdown renders the resume as Markdown. Section ordering and
// omission rules match the other text encoders; only the heading syntax and
// bullet glyph differ.
func EncodeMarkdown(c model.Content) string {
	var b strings.Builder

	if name := c.PersonalInfo.FullName(); name != "" {
		fmt.Fprintf(&b, "# %s\n\n", name)
	}
	if contact := joinNonEmpty(" | ", c.PersonalInfo.Email, c.PersonalInfo.Phone, c.PersonalInfo.Location); contact != "" {
		b.WriteString(contact)
		b.WriteString("\n\n")
	}

	if model.Present(c.PersonalInfo.Summary) {
		b.WriteString("## Summary\n\n")
		b.WriteString(strings.TrimSpace(c.PersonalInfo.Summary))
		b.WriteString("\n\n")
	}

	if len(c.Experience) > 0 {
		b.WriteString("## Experience\n\n")
		for _, exp := range c.Experience {
			writeMarkdownExperience(&b, exp)
		}
	}

	if len(c.Education) > 0 {
		b.WriteString("## Education\n\n")
		for _, edu := range c.Education {
			writeMarkdownEducation(&b, edu)
		}
	}

	var skillLines []string
	for _, cat := range c.Skills.Categories() {
		if names := cat.Names(); names != "" {
			skillLines = append(skillLines, fmt.Sprintf("%s: %s", cat.Label, names))
		}
	}
	if len(skillLines) > 0 {
		b.WriteString("## Skills\n\n")
		for _, l := range skillLines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(c.Certifications) > 0 {
		b.WriteString("## Certifications\n\n")
		for _, cert := range c.Certifications {
			head := joinNonEmpty(" — ", cert.Name, cert.Issuer)
			if dates := model.DateRange(cert.IssueDate, cert.ExpiryDate, false); dates != "" {
				head = joinNonEmpty(" ", head, "("+dates+")")
			}
			fmt.Fprintf(&b, "- %s\n", head)
		}
		b.WriteString("\n")
	}

	if len(c.Links) > 0 {
		b.WriteString("## Links\n\n")
		for _, l := range c.Links {
			label := strings.TrimSpace(l.Label)
			if label == "" {
				label = linkLabel(l.URL)
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", label, strings.TrimSpace(l.URL))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeMarkdownExperience(b *strings.Builder, exp model.Experience) {
	head := joinNonEmpty(" — ", exp.Position, exp.Company)
	fmt.Fprintf(b, "### %s\n\n", head)
	if dates := model.DateRange(exp.StartDate, exp.EndDate, exp.Current); dates != "" {
		fmt.Fprintf(b, "*%s*\n\n", dates)
	}
	if exp.WantsDescription() && model.Present(exp.Description) {
		b.WriteString(strings.TrimSpace(exp.Description))
		b.WriteString("\n\n")
	}
	if exp.WantsHighlights() {
		if highlights := nonEmpty(exp.Highlights); len(highlights) > 0 {
			for _, h := range highlights {
				fmt.Fprintf(b, "- %s\n", h)
			}
			b.WriteString("\n")
		}
	}
}

func writeMarkdownEducation(b *strings.Builder, edu model.Education) {
	head := joinNonEmpty(" — ", joinNonEmpty(", ", edu.Degree, edu.Field), edu.Institution)
	fmt.Fprintf(b, "### %s\n\n", head)
	if dates := model.DateRange(edu.StartDate, edu.EndDate, edu.Current); dates != "" {
		fmt.Fprintf(b, "*%s*\n\n", dates)
	}
	if model.Present(edu.GPA) {
		fmt.Fprintf(b, "GPA: %s\n\n", strings.TrimSpace(edu.GPA))
	}
	if honors := nonEmpty(edu.Honors); len(honors) > 0 {
		for _, h := range honors {
			fmt.Fprintf(b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
}
