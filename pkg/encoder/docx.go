package encoder

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"resume-exporter/internal/model"
)

// Run sizes are half-points, per OOXML.
const (
	docxNameSize    = "36"
	docxSectionSize = "26"
	docxBodySize    = "22"
	docxAccentColor = "1F4E79"
	docxMutedColor  = "595959"
)

// EncodeDocx builds the rich-text document package. Formatting is expressed
// as structured run/paragraph attributes; section ordering and omission rules
// match the text encoders.
func EncodeDocx(c model.Content) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	if name := c.PersonalInfo.FullName(); name != "" {
		p := w.AddParagraph().Justification("center")
		p.AddText(name).Size(docxNameSize).Bold()
	}
	if contact := joinNonEmpty("  |  ", c.PersonalInfo.Email, c.PersonalInfo.Phone, c.PersonalInfo.Location); contact != "" {
		p := w.AddParagraph().Justification("center")
		p.AddText(contact).Size(docxBodySize).Color(docxMutedColor)
	}

	if model.Present(c.PersonalInfo.Summary) {
		addDocxSection(w, "Summary")
		w.AddParagraph().AddText(strings.TrimSpace(c.PersonalInfo.Summary)).Size(docxBodySize)
	}

	if len(c.Experience) > 0 {
		addDocxSection(w, "Experience")
		for _, exp := range c.Experience {
			addDocxExperience(w, exp)
		}
	}

	if len(c.Education) > 0 {
		addDocxSection(w, "Education")
		for _, edu := range c.Education {
			addDocxEducation(w, edu)
		}
	}

	var skillLines [][2]string
	for _, cat := range c.Skills.Categories() {
		if names := cat.Names(); names != "" {
			skillLines = append(skillLines, [2]string{cat.Label, names})
		}
	}
	if len(skillLines) > 0 {
		addDocxSection(w, "Skills")
		for _, line := range skillLines {
			p := w.AddParagraph()
			p.AddText(line[0] + ": ").Size(docxBodySize).Bold()
			p.AddText(line[1]).Size(docxBodySize)
		}
	}

	if len(c.Certifications) > 0 {
		addDocxSection(w, "Certifications")
		for _, cert := range c.Certifications {
			p := w.AddParagraph()
			p.AddText(joinNonEmpty(" — ", cert.Name, cert.Issuer)).Size(docxBodySize).Bold()
			if dates := model.DateRange(cert.IssueDate, cert.ExpiryDate, false); dates != "" {
				p.AddText("  " + dates).Size(docxBodySize).Color(docxMutedColor).Italic()
			}
			if model.Present(cert.CredentialID) {
				w.AddParagraph().AddText("Credential: " + strings.TrimSpace(cert.CredentialID)).Size(docxBodySize).Color(docxMutedColor)
			}
		}
	}

	if len(c.Links) > 0 {
		addDocxSection(w, "Links")
		for _, l := range c.Links {
			label := strings.TrimSpace(l.Label)
			if label == "" {
				label = linkLabel(l.URL)
			}
			p := w.AddParagraph()
			p.AddText(label + ": ").Size(docxBodySize).Bold()
			p.AddLink(strings.TrimSpace(l.URL), strings.TrimSpace(l.URL))
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("assemble docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func addDocxSection(w *docx.Docx, title string) {
	p := w.AddParagraph()
	p.AddText(title).Size(docxSectionSize).Bold().Color(docxAccentColor)
}

func addDocxExperience(w *docx.Docx, exp model.Experience) {
	p := w.AddParagraph()
	p.AddText(exp.Position).Size(docxBodySize).Bold()
	if dates := model.DateRange(exp.StartDate, exp.EndDate, exp.Current); dates != "" {
		p.AddText("  " + dates).Size(docxBodySize).Color(docxMutedColor).Italic()
	}
	if model.Present(exp.Company) {
		w.AddParagraph().AddText(strings.TrimSpace(exp.Company)).Size(docxBodySize).Italic()
	}
	if exp.WantsDescription() && model.Present(exp.Description) {
		w.AddParagraph().AddText(strings.TrimSpace(exp.Description)).Size(docxBodySize)
	}
	if exp.WantsHighlights() {
		for _, h := range nonEmpty(exp.Highlights) {
			w.AddParagraph().AddText("• " + h).Size(docxBodySize)
		}
	}
}

func addDocxEducation(w *docx.Docx, edu model.Education) {
	p := w.AddParagraph()
	p.AddText(joinNonEmpty(", ", edu.Degree, edu.Field)).Size(docxBodySize).Bold()
	if dates := model.DateRange(edu.StartDate, edu.EndDate, edu.Current); dates != "" {
		p.AddText("  " + dates).Size(docxBodySize).Color(docxMutedColor).Italic()
	}
	if model.Present(edu.Institution) {
		w.AddParagraph().AddText(strings.TrimSpace(edu.Institution)).Size(docxBodySize).Italic()
	}
	if model.Present(edu.GPA) {
		w.AddParagraph().AddText("GPA: " + strings.TrimSpace(edu.GPA)).Size(docxBodySize)
	}
	for _, h := range nonEmpty(edu.Honors) {
		w.AddParagraph().AddText("• " + h).Size(docxBodySize)
	}
}
