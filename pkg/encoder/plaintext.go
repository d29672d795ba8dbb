package encoder

import (
	"fmt"
	"strings"

	"resume-exporter/internal/model"
)

// EncodePlainText renders the resume as plain text with underline-rule
// section headings.
func EncodePlainText(c model.Content) string {
	var b strings.Builder

	if name := c.PersonalInfo.FullName(); name != "" {
		b.WriteString(name)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", len([]rune(name))))
		b.WriteString("\n\n")
	}
	if contact := joinNonEmpty(" | ", c.PersonalInfo.Email, c.PersonalInfo.Phone, c.PersonalInfo.Location); contact != "" {
		b.WriteString(contact)
		b.WriteString("\n\n")
	}

	if model.Present(c.PersonalInfo.Summary) {
		writeTextHeading(&b, "Summary")
		b.WriteString(strings.TrimSpace(c.PersonalInfo.Summary))
		b.WriteString("\n\n")
	}

	if len(c.Experience) > 0 {
		writeTextHeading(&b, "Experience")
		for _, exp := range c.Experience {
			writeTextExperience(&b, exp)
		}
	}

	if len(c.Education) > 0 {
		writeTextHeading(&b, "Education")
		for _, edu := range c.Education {
			writeTextEducation(&b, edu)
		}
	}

	var skillLines []string
	for _, cat := range c.Skills.Categories() {
		if names := cat.Names(); names != "" {
			skillLines = append(skillLines, fmt.Sprintf("%s: %s", cat.Label, names))
		}
	}
	if len(skillLines) > 0 {
		writeTextHeading(&b, "Skills")
		for _, l := range skillLines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(c.Certifications) > 0 {
		writeTextHeading(&b, "Certifications")
		for _, cert := range c.Certifications {
			head := joinNonEmpty(" - ", cert.Name, cert.Issuer)
			if dates := model.DateRange(cert.IssueDate, cert.ExpiryDate, false); dates != "" {
				head = head + " (" + dates + ")"
			}
			fmt.Fprintf(&b, "* %s\n", head)
			if model.Present(cert.CredentialID) {
				fmt.Fprintf(&b, "  Credential: %s\n", strings.TrimSpace(cert.CredentialID))
			}
		}
		b.WriteString("\n")
	}

	if len(c.Links) > 0 {
		writeTextHeading(&b, "Links")
		for _, l := range c.Links {
			label := strings.TrimSpace(l.Label)
			if label == "" {
				label = linkLabel(l.URL)
			}
			fmt.Fprintf(&b, "* %s: %s\n", label, strings.TrimSpace(l.URL))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeTextHeading(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteString("\n")
}

func writeTextExperience(b *strings.Builder, exp model.Experience) {
	dates := model.DateRange(exp.StartDate, exp.EndDate, exp.Current)
	b.WriteString(joinNonEmpty("  ", joinNonEmpty(" - ", exp.Position, exp.Company), dates))
	b.WriteString("\n")
	if exp.WantsDescription() && model.Present(exp.Description) {
		b.WriteString(strings.TrimSpace(exp.Description))
		b.WriteString("\n")
	}
	if exp.WantsHighlights() {
		for _, h := range nonEmpty(exp.Highlights) {
			fmt.Fprintf(b, "* %s\n", h)
		}
	}
	b.WriteString("\n")
}

func writeTextEducation(b *strings.Builder, edu model.Education) {
	dates := model.DateRange(edu.StartDate, edu.EndDate, edu.Current)
	head := joinNonEmpty(" - ", joinNonEmpty(", ", edu.Degree, edu.Field), edu.Institution)
	b.WriteString(joinNonEmpty("  ", head, dates))
	b.WriteString("\n")
	if model.Present(edu.GPA) {
		fmt.Fprintf(b, "GPA: %s\n", strings.TrimSpace(edu.GPA))
	}
	for _, h := range nonEmpty(edu.Honors) {
		fmt.Fprintf(b, "* %s\n", h)
	}
	b.WriteString("\n")
}
